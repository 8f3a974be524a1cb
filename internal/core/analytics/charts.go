package analytics

import (
	"github.com/insightx-ai/insightx-be/internal/core/profiler"
)

// maxPieSlices caps how many segments a breakdown pie carries; anything past
// it is folded into an "Other" slice.
const maxPieSlices = 8

// BuildDashboard converts a profile summary into ready-to-render chart
// payloads. The output order follows the summary, so it is deterministic.
func BuildDashboard(summary *profiler.Summary) *Dashboard {
	dash := &Dashboard{
		Cards:      buildStatCards(summary),
		Breakdowns: buildPies(summary),
	}

	if len(summary.Histogram) > 0 {
		dash.Histogram = histogramChart(summary)
	}
	if len(summary.TimeSeries) > 0 {
		dash.TimeSeries = timeSeriesChart(summary)
	}
	return dash
}

func buildStatCards(summary *profiler.Summary) []StatCard {
	cards := make([]StatCard, 0, len(summary.KPIs))
	for _, kpi := range summary.KPIs {
		cards = append(cards, StatCard{
			Title: kpi.Label,
			Value: kpi.Formatted,
			Icon:  kpi.Icon,
			Color: kpi.Color,
		})
	}
	return cards
}

func histogramChart(summary *profiler.Summary) *ChartData {
	labels := make([]string, len(summary.Histogram))
	values := make([]float64, len(summary.Histogram))
	for i, bucket := range summary.Histogram {
		labels[i] = bucket.Label
		values[i] = float64(bucket.Count)
	}

	return &ChartData{
		Type:   "bar",
		Title:  summary.PrimaryNumericColumn + " distribution",
		Labels: labels,
		Data: []ChartSeries{
			{Name: summary.PrimaryNumericColumn, Values: values},
		},
	}
}

func timeSeriesChart(summary *profiler.Summary) *ChartData {
	labels := make([]string, len(summary.TimeSeries))
	values := make([]float64, len(summary.TimeSeries))
	for i, point := range summary.TimeSeries {
		labels[i] = point.Period
		values[i] = point.Value
	}

	return &ChartData{
		Type:   "line",
		Title:  summary.PrimaryNumericColumn + " over time",
		Labels: labels,
		Data: []ChartSeries{
			{Name: summary.PrimaryNumericColumn, Values: values},
		},
	}
}

func buildPies(summary *profiler.Summary) []PieChartData {
	pies := make([]PieChartData, 0, len(summary.CategoricalBreakdowns))
	for _, breakdown := range summary.CategoricalBreakdowns {
		pie := PieChartData{
			Type:  "pie",
			Title: breakdown.Column,
		}

		var other float64
		for i, vc := range breakdown.Values {
			if i >= maxPieSlices {
				other += float64(vc.Count)
				continue
			}
			pie.Labels = append(pie.Labels, vc.Value)
			pie.Values = append(pie.Values, float64(vc.Count))
		}
		if other > 0 {
			pie.Labels = append(pie.Labels, "Other")
			pie.Values = append(pie.Values, other)
		}

		pies = append(pies, pie)
	}
	return pies
}
