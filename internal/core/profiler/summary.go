package profiler

// ColumnType is the inferred kind of a column.
type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
	ColumnTemporal    ColumnType = "temporal"
)

// NumericSummary holds the descriptive statistics of one numeric column.
// Std is the sample standard deviation (n-1 divisor); percentiles use linear
// interpolation between closest ranks. Valid is false when every value in
// the column was missing, in which case the figures are zero, not NaN.
type NumericSummary struct {
	Column  string  `json:"column"`
	Count   int     `json:"count"`
	Missing int     `json:"missing"`
	Valid   bool    `json:"valid"`
	Sum     float64 `json:"sum"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	P25     float64 `json:"p25"`
	P75     float64 `json:"p75"`
	P90     float64 `json:"p90"`
	P95     float64 `json:"p95"`
	P99     float64 `json:"p99"`
}

// KPI is one headline figure for the dashboard cards.
type KPI struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
}

// HistogramBucket is one equal-width bin of the primary numeric column.
type HistogramBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TimePoint is one period of the primary column's time series.
type TimePoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// CategoryCount is one value of a categorical breakdown. Avg is the mean of
// the primary numeric column within the group; AvgValid is false when the
// group had no parseable numeric value (Avg is then 0, never NaN).
type CategoryCount struct {
	Value    string  `json:"value"`
	Count    int     `json:"count"`
	Avg      float64 `json:"avg"`
	AvgValid bool    `json:"avg_valid"`
}

// CategoricalBreakdown is the top-K value counts of one categorical column,
// sorted by count descending, ties broken by value ascending.
type CategoricalBreakdown struct {
	Column string          `json:"column"`
	Values []CategoryCount `json:"values"`
}

// Correlation is the Pearson coefficient of one unordered numeric pair.
type Correlation struct {
	ColumnA string  `json:"column_a"`
	ColumnB string  `json:"column_b"`
	R       float64 `json:"r"`
}

// Anomaly is one flagged observation produced by a threshold rule.
type Anomaly struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Icon        string `json:"icon"`
}

// Summary is the derived statistical snapshot of a dataset. It is immutable
// once built and safe to share across concurrent readers.
type Summary struct {
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`

	NumericColumns     []string              `json:"numeric_columns"`
	CategoricalColumns []string              `json:"categorical_columns"`
	TemporalColumns    []string              `json:"temporal_columns"`
	ColumnTypes        map[string]ColumnType `json:"column_types"`
	MissingCounts      map[string]int        `json:"missing_counts"`

	PrimaryNumericColumn string `json:"primary_numeric_column"`

	NumericSummaries      []NumericSummary       `json:"numeric_summaries"`
	KPIs                  []KPI                  `json:"kpis"`
	Histogram             []HistogramBucket      `json:"histogram"`
	TimeSeries            []TimePoint            `json:"time_series"`
	CategoricalBreakdowns []CategoricalBreakdown `json:"categorical_breakdowns"`
	Correlations          []Correlation          `json:"correlations"`
	Anomalies             []Anomaly              `json:"anomalies"`
}

// NumericSummaryFor returns the summary of the named column, if present.
func (s *Summary) NumericSummaryFor(column string) (NumericSummary, bool) {
	for _, ns := range s.NumericSummaries {
		if ns.Column == column {
			return ns, true
		}
	}
	return NumericSummary{}, false
}

// PrimarySummary returns the numeric summary of the primary column.
func (s *Summary) PrimarySummary() (NumericSummary, bool) {
	return s.NumericSummaryFor(s.PrimaryNumericColumn)
}
