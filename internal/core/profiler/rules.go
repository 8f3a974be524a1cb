package profiler

import (
	"fmt"
	"math"
	"sort"
)

// Rule is one independent anomaly check evaluated against an already
// computed Summary. Check returns the observation text and whether the
// rule fired; rules never look at raw rows and never affect each other.
type Rule struct {
	Name     string
	Severity string
	Icon     string
	Check    func(s *Summary) (string, bool)
}

// anomalyRules is the fixed rule list. Output order is this definition
// order, never input-dependent.
var anomalyRules = []Rule{
	{
		Name:     "High missing values",
		Severity: "warning",
		Icon:     "alert-triangle",
		Check:    checkMissingValues,
	},
	{
		Name:     "Skewed distribution",
		Severity: "info",
		Icon:     "bar-chart",
		Check:    checkSkew,
	},
	{
		Name:     "High variance",
		Severity: "info",
		Icon:     "activity",
		Check:    checkSpread,
	},
	{
		Name:     "Dominant category",
		Severity: "info",
		Icon:     "pie-chart",
		Check:    checkDominantCategory,
	},
	{
		Name:     "Strong correlation",
		Severity: "info",
		Icon:     "link",
		Check:    checkStrongCorrelation,
	},
	{
		Name:     "Constant column",
		Severity: "warning",
		Icon:     "minus",
		Check:    checkConstantPrimary,
	},
}

// Rule thresholds.
const (
	missingRatioThreshold = 0.20
	skewRatioThreshold    = 2.0
	dominantShare         = 0.60
	strongCorrelationR    = 0.8
)

// evaluateRules runs every rule against the summary in definition order.
func evaluateRules(s *Summary) []Anomaly {
	var out []Anomaly
	for _, rule := range anomalyRules {
		if desc, ok := rule.Check(s); ok {
			out = append(out, Anomaly{
				Title:       rule.Name,
				Description: desc,
				Severity:    rule.Severity,
				Icon:        rule.Icon,
			})
		}
	}
	return out
}

// checkMissingValues fires when any column is missing more than 20% of its
// cells. Reports the worst offender; column name breaks ties for stability.
func checkMissingValues(s *Summary) (string, bool) {
	type miss struct {
		column string
		ratio  float64
	}
	var worst *miss
	columns := make([]string, 0, len(s.MissingCounts))
	for col := range s.MissingCounts {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	for _, col := range columns {
		ratio := float64(s.MissingCounts[col]) / float64(s.RowCount)
		if ratio > missingRatioThreshold && (worst == nil || ratio > worst.ratio) {
			worst = &miss{column: col, ratio: ratio}
		}
	}
	if worst == nil {
		return "", false
	}
	return fmt.Sprintf("Column %q is missing %.1f%% of its values; aggregates over it cover only the parseable rows.",
		worst.column, worst.ratio*100), true
}

// checkSkew fires when the primary column's mean is more than twice its
// median, the usual signature of a long right tail.
func checkSkew(s *Summary) (string, bool) {
	primary, ok := s.PrimarySummary()
	if !ok || !primary.Valid || primary.Median <= 0 {
		return "", false
	}
	if primary.Mean <= skewRatioThreshold*primary.Median {
		return "", false
	}
	return fmt.Sprintf("%s is right-skewed: mean %s vs median %s — a few large values pull the average up.",
		primary.Column, FormatValue(primary.Mean), FormatValue(primary.Median)), true
}

// checkSpread fires when the primary column's standard deviation exceeds
// its mean.
func checkSpread(s *Summary) (string, bool) {
	primary, ok := s.PrimarySummary()
	if !ok || !primary.Valid || primary.Mean <= 0 {
		return "", false
	}
	if primary.Std <= primary.Mean {
		return "", false
	}
	return fmt.Sprintf("%s varies widely: std %s exceeds the mean %s.",
		primary.Column, FormatValue(primary.Std), FormatValue(primary.Mean)), true
}

// checkDominantCategory fires when the top value of any breakdown covers
// more than 60% of the rows.
func checkDominantCategory(s *Summary) (string, bool) {
	for _, bd := range s.CategoricalBreakdowns {
		if len(bd.Values) == 0 {
			continue
		}
		top := bd.Values[0]
		share := float64(top.Count) / float64(s.RowCount)
		if share > dominantShare {
			return fmt.Sprintf("%.1f%% of rows share %s=%q — the %s column is dominated by a single value.",
				share*100, bd.Column, top.Value, bd.Column), true
		}
	}
	return "", false
}

// checkStrongCorrelation fires on the strongest pair with |r| >= 0.8.
func checkStrongCorrelation(s *Summary) (string, bool) {
	for _, c := range s.Correlations { // already sorted by |r| desc
		if math.Abs(c.R) >= strongCorrelationR {
			return fmt.Sprintf("%s and %s move together (r=%.2f); one of them may be derived from the other.",
				c.ColumnA, c.ColumnB, c.R), true
		}
	}
	return "", false
}

// checkConstantPrimary fires when the primary column has a single distinct
// value, which makes the histogram and correlations degenerate.
func checkConstantPrimary(s *Summary) (string, bool) {
	primary, ok := s.PrimarySummary()
	if !ok || !primary.Valid {
		return "", false
	}
	if primary.Min != primary.Max {
		return "", false
	}
	return fmt.Sprintf("%s is constant at %s across all parseable rows.",
		primary.Column, FormatValue(primary.Min)), true
}
