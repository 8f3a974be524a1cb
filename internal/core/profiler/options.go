package profiler

// Defaults for profiling options. The dashboard layout drives most of these:
// ten histogram buckets, a 3x3 correlation grid, top-10 category bars.
const (
	DefaultHistogramBuckets     = 10
	DefaultTopKCategories       = 10
	DefaultMaxCategoricalCols   = 6
	DefaultCorrelationTopK      = 9
	DefaultCorrelationThreshold = 0.1
	DefaultTimeGranularity      = GranularityMonth

	// numericThreshold is the minimum fraction of non-missing cells that must
	// parse for a column to be classified numeric (temporal likewise).
	numericThreshold = 0.9
)

// Time granularities for the time-series period key.
const (
	GranularityMonth = "month"
	GranularityWeek  = "week"
	GranularityDay   = "day"
)

// Options configure a single Profile call. The zero value is usable; unset
// fields fall back to the defaults above.
type Options struct {
	// PrimaryNumericColumn forces the column that drives KPIs, the histogram
	// and the time series. If empty or not numeric, the profiler picks one:
	// the first numeric column with an "amount"-like name, else the first
	// numeric column.
	PrimaryNumericColumn string

	// TimeGranularity is one of "month", "week", "day".
	TimeGranularity string

	HistogramBucketCount  int
	TopKCategories        int
	MaxCategoricalColumns int
	CorrelationTopK       int
	CorrelationThreshold  float64
}

func (o Options) withDefaults() Options {
	if o.TimeGranularity == "" {
		o.TimeGranularity = DefaultTimeGranularity
	}
	if o.HistogramBucketCount <= 0 {
		o.HistogramBucketCount = DefaultHistogramBuckets
	}
	if o.TopKCategories <= 0 {
		o.TopKCategories = DefaultTopKCategories
	}
	if o.MaxCategoricalColumns <= 0 {
		o.MaxCategoricalColumns = DefaultMaxCategoricalCols
	}
	if o.CorrelationTopK <= 0 {
		o.CorrelationTopK = DefaultCorrelationTopK
	}
	if o.CorrelationThreshold <= 0 {
		o.CorrelationThreshold = DefaultCorrelationThreshold
	}
	return o
}
