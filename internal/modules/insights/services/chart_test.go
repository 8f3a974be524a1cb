package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectChartType(t *testing.T) {
	cases := map[string]string{
		"Show me the distribution of amounts": "amountdist",
		"Which hour has peak activity?":       "hourly",
		"Compare Maharashtra and Karnataka":   "state",
		"Spending by merchant category":       "category",
		"iOS vs Android usage":                "device_compare",
		"Is 5G faster than WiFi here?":        "network",
		"How does HDFC compare to SBI?":       "bank",
		"Weekend vs weekday volume":           "daily",
		"Are young users spending more?":      "age",
		"P2P versus P2M transactions":         "txtype",
		"How much fraud happened?":            "fraud_overview",
		"Give me a summary":                   "category",
		"Hello there":                         "",
	}
	for question, want := range cases {
		assert.Equal(t, want, DetectChartType(question), "question: %s", question)
	}
}

func TestDetectChartTypeFirstRuleWins(t *testing.T) {
	// "state" outranks "fraud_overview" in the rule order.
	assert.Equal(t, "state", DetectChartType("Which state has the most fraud?"))
}
