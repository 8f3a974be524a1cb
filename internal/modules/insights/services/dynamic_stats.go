package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/insightx-ai/insightx-be/internal/core/dataset"
	"github.com/insightx-ai/insightx-be/internal/core/profiler"
)

// MaxDynamicChars caps the per-question stats block appended to a message.
const MaxDynamicChars = 4_000

var trendKeywords = []string{"trend", "over time", "monthly", "yearly", "growth"}
var riskTokens = []string{"fraud", "risk", "anomaly", "flag"}
var topKeywords = []string{"top", "highest", "most", "largest"}
var bottomKeywords = []string{"bottom", "lowest", "least", "smallest"}

// DynamicStats computes question-specific statistics from the live dataset:
// a group-by when the question names a categorical column, the recent trend
// when it asks about time, risk-column breakdowns, and top/bottom values.
// Returns "" when nothing in the question matches.
func DynamicStats(ds *dataset.Dataset, s *profiler.Summary, question string) string {
	if ds == nil || s == nil {
		return ""
	}
	q := strings.ToLower(question)
	var extras []string

	// Group-by for the first categorical column the question mentions.
	for _, col := range s.CategoricalColumns {
		name := strings.ToLower(col)
		if !strings.Contains(q, name) && !strings.Contains(q, strings.ReplaceAll(name, "_", " ")) {
			continue
		}
		for i, nc := range s.NumericColumns {
			if i == 2 { // at most 2 numeric columns per group-by
				break
			}
			if grp := groupBy(ds, col, nc, 8); grp != "" {
				extras = append(extras, fmt.Sprintf("GroupBy %s×%s (mean/sum/count):\n%s", col, nc, grp))
			}
		}
		extras = append(extras, fmt.Sprintf("Value counts %q:\n%s", col, valueCounts(ds, col, 8)))
		break
	}

	// Time trend from the already-computed series.
	if len(s.TimeSeries) > 0 && containsAny(q, trendKeywords) {
		series := s.TimeSeries
		if len(series) > 12 {
			series = series[len(series)-12:]
		}
		var b strings.Builder
		for _, tp := range series {
			fmt.Fprintf(&b, "  %s: %.2f\n", tp.Period, tp.Value)
		}
		extras = append(extras, fmt.Sprintf("Per-period %q:\n%s", s.PrimaryNumericColumn, b.String()))
	}

	// Risk/fraud column breakdown.
	for _, col := range ds.Columns {
		name := strings.ToLower(col)
		if !containsAny(name, riskTokens) {
			continue
		}
		if strings.Contains(q, name) || strings.Contains(q, "fraud") || strings.Contains(q, "risk") {
			extras = append(extras, fmt.Sprintf("%q counts:\n%s", col, valueCounts(ds, col, 8)))
			for i, cc := range s.CategoricalColumns {
				if i == 2 {
					break
				}
				if cc == col {
					continue
				}
				if rates := rateBy(ds, cc, col, 8); rates != "" {
					extras = append(extras, fmt.Sprintf("Mean %q by %q:\n%s", col, cc, rates))
				}
			}
		}
		break
	}

	// Top / bottom values of the primary column.
	if s.PrimaryNumericColumn != "" {
		values := sortedColumn(ds, s.PrimaryNumericColumn)
		if len(values) > 0 {
			if containsAny(q, topKeywords) {
				extras = append(extras, fmt.Sprintf("Top 5 %q: %s", s.PrimaryNumericColumn, tailValues(values, 5, true)))
			}
			if containsAny(q, bottomKeywords) {
				extras = append(extras, fmt.Sprintf("Bottom 5 %q: %s", s.PrimaryNumericColumn, tailValues(values, 5, false)))
			}
		}
	}

	result := strings.Join(extras, "\n\n")
	if len(result) > MaxDynamicChars {
		result = result[:MaxDynamicChars] + "\n... [truncated]"
	}
	return result
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func parseCell(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cell), ",", ""), 64)
	return v, err == nil
}

type groupRow struct {
	key   string
	sum   float64
	count int
}

func groupRows(ds *dataset.Dataset, keyCol, valueCol string, limit int) []groupRow {
	keyIdx := ds.ColumnIndex(keyCol)
	valueIdx := ds.ColumnIndex(valueCol)
	if keyIdx < 0 || valueIdx < 0 {
		return nil
	}

	groups := make(map[string]*groupRow)
	for _, row := range ds.Rows {
		key := strings.TrimSpace(row[keyIdx])
		if key == "" {
			continue
		}
		v, ok := parseCell(row[valueIdx])
		if !ok {
			continue
		}
		g, exists := groups[key]
		if !exists {
			g = &groupRow{key: key}
			groups[key] = g
		}
		g.sum += v
		g.count++
	}

	out := make([]groupRow, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func groupBy(ds *dataset.Dataset, keyCol, valueCol string, limit int) string {
	rows := groupRows(ds, keyCol, valueCol, limit)
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	for _, g := range rows {
		fmt.Fprintf(&b, "  %s: mean=%.2f sum=%.2f count=%d\n", g.key, g.sum/float64(g.count), g.sum, g.count)
	}
	return b.String()
}

func rateBy(ds *dataset.Dataset, keyCol, valueCol string, limit int) string {
	rows := groupRows(ds, keyCol, valueCol, limit)
	if len(rows) == 0 {
		return ""
	}
	sort.Slice(rows, func(i, j int) bool {
		ri := rows[i].sum / float64(rows[i].count)
		rj := rows[j].sum / float64(rows[j].count)
		if ri != rj {
			return ri > rj
		}
		return rows[i].key < rows[j].key
	})
	var b strings.Builder
	for _, g := range rows {
		fmt.Fprintf(&b, "  %s: %.4f\n", g.key, g.sum/float64(g.count))
	}
	return b.String()
}

func valueCounts(ds *dataset.Dataset, col string, limit int) string {
	idx := ds.ColumnIndex(col)
	if idx < 0 {
		return ""
	}
	counts := make(map[string]int)
	for _, row := range ds.Rows {
		v := strings.TrimSpace(row[idx])
		if v == "" {
			continue
		}
		counts[v]++
	}
	type kv struct {
		value string
		count int
	}
	out := make([]kv, 0, len(counts))
	for v, c := range counts {
		out = append(out, kv{v, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].value < out[j].value
	})
	if len(out) > limit {
		out = out[:limit]
	}
	var b strings.Builder
	for _, e := range out {
		fmt.Fprintf(&b, "  %s: %d\n", e.value, e.count)
	}
	return b.String()
}

func sortedColumn(ds *dataset.Dataset, col string) []float64 {
	idx := ds.ColumnIndex(col)
	if idx < 0 {
		return nil
	}
	var values []float64
	for _, row := range ds.Rows {
		if v, ok := parseCell(row[idx]); ok {
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	return values
}

func tailValues(sorted []float64, n int, top bool) string {
	if len(sorted) < n {
		n = len(sorted)
	}
	parts := make([]string, 0, n)
	if top {
		for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
			parts = append(parts, strconv.FormatFloat(sorted[i], 'f', -1, 64))
		}
	} else {
		for i := 0; i < n; i++ {
			parts = append(parts, strconv.FormatFloat(sorted[i], 'f', -1, 64))
		}
	}
	return strings.Join(parts, ", ")
}
