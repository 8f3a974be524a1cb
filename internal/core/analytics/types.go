package analytics

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"`   // "line", "bar", "pie", "donut"
	Title  string        `json:"title"`
	Labels []string      `json:"labels"` // X-axis labels or pie segments
	Data   []ChartSeries `json:"data"`   // Y-axis data series
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// PieChartData represents pie chart specific data
type PieChartData struct {
	Type   string    `json:"type"` // "pie" or "donut"
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// StatCard represents a summary statistic card
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// Dashboard is the full chart payload the frontend renders from one profile.
type Dashboard struct {
	Cards      []StatCard     `json:"cards"`
	Histogram  *ChartData     `json:"histogram,omitempty"`
	TimeSeries *ChartData     `json:"time_series,omitempty"`
	Breakdowns []PieChartData `json:"breakdowns"`
}
