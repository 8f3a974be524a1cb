package llm

import (
	"fmt"
	"strings"

	"github.com/insightx-ai/insightx-be/internal/core/profiler"
)

// MaxProfileChars caps the grounding context embedded in the system prompt
// so a wide dataset can never blow the model's context window.
const MaxProfileChars = 24_000

const truncationMarker = "\n... [profile truncated to stay within token limit]"

// BuildSystemPrompt renders the grounding context for a profiled dataset.
// Every figure in the text is formatted from the Summary fields verbatim;
// nothing is recomputed here, so the model can only quote numbers the
// dashboard also shows.
func BuildSystemPrompt(filename string, s *profiler.Summary) string {
	var sb strings.Builder

	sb.WriteString("You are InsightX AI — an elite AI Chief Data Officer for C-suite leadership.\n\n")
	sb.WriteString("Your mission:\n")
	sb.WriteString("1. Answer data questions with precision, citing exact numbers from the dataset.\n")
	sb.WriteString("2. Surface hidden risks, opportunities, and anomalies proactively.\n")
	sb.WriteString("3. Provide strategic, executive-level recommendations — not just observations.\n\n")

	sb.WriteString(fmt.Sprintf("DATASET: %s\n", filename))
	sb.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	sb.WriteString(renderProfile(s))
	sb.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	sb.WriteString("RESPONSE FORMAT:\n")
	sb.WriteString("1. **Direct Answer** — precise number or finding\n")
	sb.WriteString("2. **Key Numbers** — supporting stats\n")
	sb.WriteString("3. **Pattern** — interpretation\n")
	sb.WriteString("4. **Business Recommendation** — 1 actionable insight\n")
	sb.WriteString("Never fabricate numbers. Only use data from the profile or live stats provided.")

	return sb.String()
}

// renderProfile is the condensed textual form of a Summary, hard-capped at
// MaxProfileChars.
func renderProfile(s *profiler.Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Shape: %s rows × %d columns\n", profiler.FormatValue(float64(s.RowCount)), s.ColumnCount))
	if s.PrimaryNumericColumn != "" {
		sb.WriteString(fmt.Sprintf("Primary numeric column: %s\n", s.PrimaryNumericColumn))
	}

	if len(s.NumericSummaries) > 0 {
		sb.WriteString("\nNUMERIC COLUMNS:\n")
		for _, ns := range s.NumericSummaries {
			if !ns.Valid {
				sb.WriteString(fmt.Sprintf("  %s: no parseable values (nulls=%d)\n", ns.Column, ns.Missing))
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s: mean=%.2f, min=%.2f, max=%.2f, std=%.2f, p25=%.2f, median=%.2f, p75=%.2f, nulls=%d\n",
				ns.Column, ns.Mean, ns.Min, ns.Max, ns.Std, ns.P25, ns.Median, ns.P75, ns.Missing))
		}
	}

	if len(s.CategoricalBreakdowns) > 0 {
		sb.WriteString("\nCATEGORICAL COLUMNS:\n")
		for _, bd := range s.CategoricalBreakdowns {
			tops := make([]string, 0, 5)
			for i, v := range bd.Values {
				if i == 5 {
					break
				}
				tops = append(tops, fmt.Sprintf("%s: %d", v.Value, v.Count))
			}
			sb.WriteString(fmt.Sprintf("  %s: nulls=%d, top=[%s]\n",
				bd.Column, s.MissingCounts[bd.Column], strings.Join(tops, ", ")))
		}
	}

	if len(s.TimeSeries) > 0 {
		sb.WriteString(fmt.Sprintf("\nTIME SERIES (%s per period):\n", s.PrimaryNumericColumn))
		for _, tp := range s.TimeSeries {
			sb.WriteString(fmt.Sprintf("  %s: %.2f\n", tp.Period, tp.Value))
		}
	}

	if len(s.Correlations) > 0 {
		sb.WriteString("\nTOP CORRELATIONS:\n")
		for _, c := range s.Correlations {
			sb.WriteString(fmt.Sprintf("  %s ↔ %s  r=%.3f\n", c.ColumnA, c.ColumnB, c.R))
		}
	}

	if len(s.Anomalies) > 0 {
		sb.WriteString("\nFLAGGED OBSERVATIONS:\n")
		for _, a := range s.Anomalies {
			sb.WriteString(fmt.Sprintf("  [%s] %s: %s\n", a.Severity, a.Title, a.Description))
		}
	}

	missing := false
	columns := append(append([]string{}, s.NumericColumns...), s.CategoricalColumns...)
	columns = append(columns, s.TemporalColumns...)
	for _, col := range columns {
		if s.MissingCounts[col] > 0 {
			if !missing {
				sb.WriteString("\nMISSING VALUES:\n")
				missing = true
			}
			sb.WriteString(fmt.Sprintf("  %s: %d\n", col, s.MissingCounts[col]))
		}
	}
	if !missing {
		sb.WriteString("\nMISSING VALUES: None\n")
	}

	full := sb.String()
	if len(full) > MaxProfileChars {
		full = full[:MaxProfileChars] + truncationMarker
	}
	return full
}
