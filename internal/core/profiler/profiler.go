// Package profiler turns an uploaded tabular dataset into the statistical
// snapshot the dashboard and the chat grounding context are built from.
//
// Profiling is a one-shot, stateless, full-pass transform: column types are
// classified from every row, aggregates skip missing values, and the output
// is deterministic for a given input (explicit sort keys everywhere, no map
// iteration order leaks into slices). Only structurally invalid input fails;
// bad cells degrade into the missing-value counts.
package profiler

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/insightx-ai/insightx-be/internal/core/dataset"
)

// ErrEmptyDataset is returned for a dataset with zero rows or zero columns.
var ErrEmptyDataset = errors.New("dataset is empty")

// preferredPrimaryTokens pick the primary numeric column when none is
// configured: the first numeric column whose name contains one of these
// wins, else the first numeric column.
var preferredPrimaryTokens = []string{"amount", "amt", "value", "price", "total"}

// Profile computes the Summary of a dataset. It is safe to call from
// concurrent requests; neither input nor any package state is mutated.
func Profile(ds *dataset.Dataset, opts Options) (*Summary, error) {
	if ds == nil || ds.RowCount() == 0 || ds.ColumnCount() == 0 {
		return nil, ErrEmptyDataset
	}
	opts = opts.withDefaults()

	s := &Summary{
		RowCount:      ds.RowCount(),
		ColumnCount:   ds.ColumnCount(),
		ColumnTypes:   make(map[string]ColumnType, ds.ColumnCount()),
		MissingCounts: make(map[string]int, ds.ColumnCount()),
	}

	types := classifyColumns(ds)
	for i, col := range ds.Columns {
		s.ColumnTypes[col] = types[i]
		switch types[i] {
		case ColumnNumeric:
			s.NumericColumns = append(s.NumericColumns, col)
		case ColumnTemporal:
			s.TemporalColumns = append(s.TemporalColumns, col)
		default:
			s.CategoricalColumns = append(s.CategoricalColumns, col)
		}
		missing := 0
		for _, row := range ds.Rows {
			if !cellValid(row[i], types[i]) {
				missing++
			}
		}
		s.MissingCounts[col] = missing
	}

	for _, col := range s.NumericColumns {
		cells, _ := ds.Column(col)
		s.NumericSummaries = append(s.NumericSummaries, summarizeNumeric(col, cells))
	}

	s.PrimaryNumericColumn = pickPrimaryColumn(s.NumericColumns, opts.PrimaryNumericColumn)

	if primary, ok := s.PrimarySummary(); ok {
		primaryValues := numericColumn(ds, s.PrimaryNumericColumn)
		s.KPIs = buildKPIs(primary, s.RowCount)
		s.Histogram = buildHistogram(primaryValues, primary, opts.HistogramBucketCount)
		s.TimeSeries = buildTimeSeries(ds, s.TemporalColumns, s.PrimaryNumericColumn, opts.TimeGranularity)
	}

	s.CategoricalBreakdowns = buildBreakdowns(ds, s.CategoricalColumns, s.PrimaryNumericColumn, opts)
	s.Correlations = buildCorrelations(ds, s.NumericColumns, opts)
	s.Anomalies = evaluateRules(s)

	return s, nil
}

// classifyColumns assigns a type to every column from a full pass over the
// rows. A column is numeric (or temporal) when at least 90% of its
// non-missing cells parse; ties and empty columns default to categorical.
func classifyColumns(ds *dataset.Dataset) []ColumnType {
	types := make([]ColumnType, ds.ColumnCount())
	for i := range ds.Columns {
		var nonMissing, numeric, temporal int
		for _, row := range ds.Rows {
			cell := row[i]
			if isMissing(cell) {
				continue
			}
			nonMissing++
			if _, ok := parseNumber(cell); ok {
				numeric++
			}
			if _, ok := parseDate(cell); ok {
				temporal++
			}
		}

		types[i] = ColumnCategorical
		if nonMissing == 0 {
			continue
		}
		threshold := numericThreshold * float64(nonMissing)
		// Numeric wins over temporal so bare year columns stay numeric.
		if float64(numeric) >= threshold {
			types[i] = ColumnNumeric
		} else if float64(temporal) >= threshold {
			types[i] = ColumnTemporal
		}
	}
	return types
}

func cellValid(cell string, t ColumnType) bool {
	if isMissing(cell) {
		return false
	}
	switch t {
	case ColumnNumeric:
		_, ok := parseNumber(cell)
		return ok
	case ColumnTemporal:
		_, ok := parseDate(cell)
		return ok
	default:
		return true
	}
}

func pickPrimaryColumn(numericColumns []string, configured string) string {
	if len(numericColumns) == 0 {
		return ""
	}
	for _, col := range numericColumns {
		if col == configured {
			return col
		}
	}
	for _, token := range preferredPrimaryTokens {
		for _, col := range numericColumns {
			if strings.Contains(strings.ToLower(col), token) {
				return col
			}
		}
	}
	return numericColumns[0]
}

// numericColumn returns the parsed values of a column, skipping missing and
// unparseable cells.
func numericColumn(ds *dataset.Dataset, name string) []float64 {
	idx := ds.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]float64, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		if v, ok := parseNumber(row[idx]); ok {
			out = append(out, v)
		}
	}
	return out
}

func buildKPIs(primary NumericSummary, rowCount int) []KPI {
	col := primary.Column
	return []KPI{
		{Label: "Total " + col, Value: primary.Sum, Formatted: FormatValue(primary.Sum), Icon: "wallet", Color: "#6366F1"},
		{Label: "Average " + col, Value: primary.Mean, Formatted: FormatValue(primary.Mean), Icon: "activity", Color: "#10B981"},
		{Label: "Median " + col, Value: primary.Median, Formatted: FormatValue(primary.Median), Icon: "align-center", Color: "#F59E0B"},
		{Label: "Max " + col, Value: primary.Max, Formatted: FormatValue(primary.Max), Icon: "trending-up", Color: "#EF4444"},
		{Label: "Rows", Value: float64(rowCount), Formatted: FormatValue(float64(rowCount)), Icon: "rows", Color: "#3B82F6"},
	}
}

// buildHistogram bins values into equal-width buckets over [min, max].
// A degenerate range (min == max) collapses to a single bucket holding
// every non-missing value; the bucket counts always sum to len(values).
func buildHistogram(values []float64, primary NumericSummary, buckets int) []HistogramBucket {
	if len(values) == 0 {
		return nil
	}
	if primary.Min == primary.Max {
		return []HistogramBucket{{
			Label: FormatValue(primary.Min),
			Count: len(values),
		}}
	}

	width := (primary.Max - primary.Min) / float64(buckets)
	out := make([]HistogramBucket, buckets)
	for i := range out {
		lo := primary.Min + float64(i)*width
		hi := lo + width
		out[i].Label = fmt.Sprintf("%s – %s", FormatValue(lo), FormatValue(hi))
	}
	for _, v := range values {
		idx := int((v - primary.Min) / width)
		if idx >= buckets { // max value lands in the last bucket
			idx = buckets - 1
		}
		out[idx].Count++
	}
	return out
}

// buildTimeSeries sums the primary column per period of the first detected
// temporal column. Rows where either side is missing are skipped. No
// temporal column means an empty series, not an error.
func buildTimeSeries(ds *dataset.Dataset, temporalColumns []string, primaryColumn, granularity string) []TimePoint {
	if len(temporalColumns) == 0 || primaryColumn == "" {
		return nil
	}
	timeIdx := ds.ColumnIndex(temporalColumns[0])
	valueIdx := ds.ColumnIndex(primaryColumn)

	sums := make(map[string]float64)
	for _, row := range ds.Rows {
		t, ok := parseDate(row[timeIdx])
		if !ok {
			continue
		}
		v, ok := parseNumber(row[valueIdx])
		if !ok {
			continue
		}
		sums[periodKey(t, granularity)] += v
	}

	periods := make([]string, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Strings(periods) // period keys sort chronologically

	out := make([]TimePoint, len(periods))
	for i, p := range periods {
		out[i] = TimePoint{Period: p, Value: sums[p]}
	}
	return out
}

func periodKey(t time.Time, granularity string) string {
	switch granularity {
	case GranularityDay:
		return t.Format("2006-01-02")
	case GranularityWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return t.Format("2006-01")
	}
}

// buildBreakdowns computes value counts (and per-value mean of the primary
// column) for the first MaxCategoricalColumns categorical columns.
func buildBreakdowns(ds *dataset.Dataset, categoricalColumns []string, primaryColumn string, opts Options) []CategoricalBreakdown {
	if len(categoricalColumns) > opts.MaxCategoricalColumns {
		categoricalColumns = categoricalColumns[:opts.MaxCategoricalColumns]
	}
	valueIdx := -1
	if primaryColumn != "" {
		valueIdx = ds.ColumnIndex(primaryColumn)
	}

	out := make([]CategoricalBreakdown, 0, len(categoricalColumns))
	for _, col := range categoricalColumns {
		idx := ds.ColumnIndex(col)

		counts := make(map[string]int)
		sums := make(map[string]float64)
		valid := make(map[string]int)
		for _, row := range ds.Rows {
			cell := row[idx]
			if isMissing(cell) {
				continue
			}
			counts[cell]++
			if valueIdx >= 0 {
				if v, ok := parseNumber(row[valueIdx]); ok {
					sums[cell] += v
					valid[cell]++
				}
			}
		}

		values := make([]CategoryCount, 0, len(counts))
		for value, count := range counts {
			cc := CategoryCount{Value: value, Count: count}
			if n := valid[value]; n > 0 {
				cc.Avg = sums[value] / float64(n)
				cc.AvgValid = true
			}
			values = append(values, cc)
		}
		sort.Slice(values, func(i, j int) bool {
			if values[i].Count != values[j].Count {
				return values[i].Count > values[j].Count
			}
			return values[i].Value < values[j].Value
		})
		if len(values) > opts.TopKCategories {
			values = values[:opts.TopKCategories]
		}

		out = append(out, CategoricalBreakdown{Column: col, Values: values})
	}
	return out
}

// buildCorrelations computes Pearson coefficients for every unordered pair
// of numeric columns over rows where both sides parse. Pairs with fewer
// than two paired observations or zero variance are excluded rather than
// reported as zero.
func buildCorrelations(ds *dataset.Dataset, numericColumns []string, opts Options) []Correlation {
	if len(numericColumns) < 2 {
		return nil
	}

	indices := make([]int, len(numericColumns))
	for i, col := range numericColumns {
		indices[i] = ds.ColumnIndex(col)
	}

	var out []Correlation
	for i := 0; i < len(numericColumns); i++ {
		for j := i + 1; j < len(numericColumns); j++ {
			var xs, ys []float64
			for _, row := range ds.Rows {
				x, okX := parseNumber(row[indices[i]])
				y, okY := parseNumber(row[indices[j]])
				if okX && okY {
					xs = append(xs, x)
					ys = append(ys, y)
				}
			}
			r, ok := pearson(xs, ys)
			if !ok || math.Abs(r) < opts.CorrelationThreshold {
				continue
			}
			out = append(out, Correlation{ColumnA: numericColumns[i], ColumnB: numericColumns[j], R: r})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ai, aj := math.Abs(out[i].R), math.Abs(out[j].R)
		if ai != aj {
			return ai > aj
		}
		return pairKey(out[i]) < pairKey(out[j])
	})
	if len(out) > opts.CorrelationTopK {
		out = out[:opts.CorrelationTopK]
	}
	return out
}

func pairKey(c Correlation) string {
	return c.ColumnA + "\x00" + c.ColumnB
}
