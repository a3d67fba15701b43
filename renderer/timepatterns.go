package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/verdantlabs/salescope"
)

// TimeMarkdown renders the ordering-patterns view: revenue by weekday, the
// hour-by-day heatmap as a pivot table, and the retail-week block comparison.
func TimeMarkdown(r *salescope.TimeReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ordering Patterns")

	if len(r.Heatmap) == 0 {
		doc.PlainText(noData)
		return doc.String()
	}

	doc.H2("Revenue by Day of Week")
	rows := make([][]string, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		rows = append(rows, []string{d.Day, count(d.Orders), money(d.Revenue), money(d.AverageOrderValue)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Day", "Orders", "Revenue", "Avg Order Value"},
		Rows:      rows,
	})

	doc.H2("Revenue Heatmap (Hour x Day)")
	doc.Table(heatmapPivot(r.Heatmap, r.Weekdays))

	doc.H2("Weekday Blocks")
	rows = rows[:0]
	for _, b := range r.Blocks {
		rows = append(rows, []string{b.Label, count(b.Orders), money(b.AverageOrderValue)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Block", "Orders", "Avg Order Value"},
		Rows:      rows,
	})

	return doc.String()
}

// heatmapPivot reshapes the cell list into an hour-per-row, day-per-column
// table. Empty cells stay blank so quiet hours read as gaps.
func heatmapPivot(cells []salescope.HeatmapCell, days []salescope.WeekdayRevenue) md.TableSet {
	byCell := make(map[int]map[string]float64)
	hours := make([]int, 0, 24)
	for _, c := range cells {
		row := byCell[c.Hour]
		if row == nil {
			row = make(map[string]float64)
			byCell[c.Hour] = row
			hours = append(hours, c.Hour)
		}
		row[c.Day] = c.Revenue
	}
	// cells arrive hour-major so hours is already ascending

	header := make([]string, 0, len(days)+1)
	header = append(header, "Hour")
	alignment := make([]md.TableAlignment, 0, len(days)+1)
	alignment = append(alignment, md.AlignLeft)
	for _, d := range days {
		header = append(header, d.Day[:3])
		alignment = append(alignment, md.AlignRight)
	}

	rows := make([][]string, 0, len(hours))
	for _, h := range hours {
		row := make([]string, 0, len(header))
		row = append(row, salescope.FormatHour(h))
		for _, d := range days {
			if rev, ok := byCell[h][d.Day]; ok {
				row = append(row, strconv.FormatFloat(rev, 'f', 0, 64))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return md.TableSet{Alignment: alignment, Header: header, Rows: rows}
}
