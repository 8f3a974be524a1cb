package export

import (
	"fmt"
	"time"

	"github.com/insightx-ai/insightx-be/internal/core/profiler"
)

// BuildReport turns a profile summary into the sectioned report the
// exporters render. Figures are carried over verbatim from the summary.
func BuildReport(filename string, s *profiler.Summary) *Report {
	r := &Report{
		Title:     "Dataset Profile Report",
		Filename:  filename,
		CreatedAt: time.Now().UTC(),
	}

	kpis := Section{
		Title:   "Key Figures",
		Headers: []string{"Metric", "Value"},
	}
	kpis.Rows = append(kpis.Rows,
		[]string{"Rows", profiler.FormatValue(float64(s.RowCount))},
		[]string{"Columns", profiler.FormatValue(float64(s.ColumnCount))},
		[]string{"Primary numeric column", s.PrimaryNumericColumn},
	)
	for _, kpi := range s.KPIs {
		kpis.Rows = append(kpis.Rows, []string{kpi.Label, kpi.Formatted})
	}
	r.Sections = append(r.Sections, kpis)

	if len(s.NumericSummaries) > 0 {
		sec := Section{
			Title:   "Numeric Columns",
			Note:    "Sample standard deviation; percentiles by linear interpolation.",
			Headers: []string{"Column", "Count", "Missing", "Mean", "Median", "Std", "Min", "Max"},
		}
		for _, ns := range s.NumericSummaries {
			if !ns.Valid {
				sec.Rows = append(sec.Rows, []string{ns.Column, "0", fmt.Sprintf("%d", ns.Missing), "-", "-", "-", "-", "-"})
				continue
			}
			sec.Rows = append(sec.Rows, []string{
				ns.Column,
				fmt.Sprintf("%d", ns.Count),
				fmt.Sprintf("%d", ns.Missing),
				profiler.FormatValue(ns.Mean),
				profiler.FormatValue(ns.Median),
				profiler.FormatValue(ns.Std),
				profiler.FormatValue(ns.Min),
				profiler.FormatValue(ns.Max),
			})
		}
		r.Sections = append(r.Sections, sec)
	}

	if len(s.Histogram) > 0 {
		sec := Section{
			Title:   fmt.Sprintf("Distribution of %s", s.PrimaryNumericColumn),
			Headers: []string{"Range", "Count"},
		}
		for _, b := range s.Histogram {
			sec.Rows = append(sec.Rows, []string{b.Label, fmt.Sprintf("%d", b.Count)})
		}
		r.Sections = append(r.Sections, sec)
	}

	if len(s.TimeSeries) > 0 {
		sec := Section{
			Title:   fmt.Sprintf("%s over time", s.PrimaryNumericColumn),
			Headers: []string{"Period", "Total"},
		}
		for _, tp := range s.TimeSeries {
			sec.Rows = append(sec.Rows, []string{tp.Period, profiler.FormatValue(tp.Value)})
		}
		r.Sections = append(r.Sections, sec)
	}

	for _, bd := range s.CategoricalBreakdowns {
		sec := Section{
			Title:   fmt.Sprintf("Breakdown by %s", bd.Column),
			Headers: []string{bd.Column, "Count", fmt.Sprintf("Avg %s", s.PrimaryNumericColumn)},
		}
		for _, v := range bd.Values {
			avg := "-"
			if v.AvgValid {
				avg = profiler.FormatValue(v.Avg)
			}
			sec.Rows = append(sec.Rows, []string{v.Value, fmt.Sprintf("%d", v.Count), avg})
		}
		r.Sections = append(r.Sections, sec)
	}

	if len(s.Correlations) > 0 {
		sec := Section{
			Title:   "Correlations",
			Headers: []string{"Column A", "Column B", "Pearson r"},
		}
		for _, c := range s.Correlations {
			sec.Rows = append(sec.Rows, []string{c.ColumnA, c.ColumnB, fmt.Sprintf("%.3f", c.R)})
		}
		r.Sections = append(r.Sections, sec)
	}

	if len(s.Anomalies) > 0 {
		sec := Section{
			Title:   "Flagged Observations",
			Headers: []string{"Severity", "Title", "Description"},
		}
		for _, a := range s.Anomalies {
			sec.Rows = append(sec.Rows, []string{a.Severity, a.Title, a.Description})
		}
		r.Sections = append(r.Sections, sec)
	}

	return r
}
