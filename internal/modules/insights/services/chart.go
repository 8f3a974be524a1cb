package services

import "strings"

// chartRule maps question keywords to the chart the frontend should render
// alongside the reply. First matching rule wins, so order matters.
type chartRule struct {
	chartType string
	keywords  []string
}

var chartRules = []chartRule{
	{"amountdist", []string{"highest", "largest", "maximum", "biggest", "top 10", "distribution", "bucket", "range"}},
	{"hourly", []string{"hour", "peak", "time of day"}},
	{"state", []string{"state", "region", "maharashtra", "karnataka"}},
	{"category", []string{"categor", "merchant", "grocery", "food", "shopping"}},
	{"device_compare", []string{"device", "ios", "android", "web browser", "compare device"}},
	{"network", []string{"network", "4g", "5g", "wifi", "3g"}},
	{"bank", []string{"bank", "sbi", "hdfc", "icici", "kotak"}},
	{"daily", []string{"day", "week", "monday", "weekend"}},
	{"age", []string{"age", "young", "senior", "26-35"}},
	{"txtype", []string{"type", "p2p", "p2m", "recharge", "bill"}},
	{"fraud_overview", []string{"fraud"}},
	{"category", []string{"volume", "summary", "overview"}},
}

// DetectChartType returns the chart hint for a question, or "" when no
// chart fits. Mirrors the frontend's keyword table so both sides agree.
func DetectChartType(question string) string {
	q := strings.ToLower(question)
	for _, rule := range chartRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.chartType
			}
		}
	}
	return ""
}
