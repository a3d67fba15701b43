package salescope

import (
	"sort"
	"strconv"
	"time"
)

// weekdays in dashboard order, Monday first.
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayRevenue is one row of the revenue-by-day-of-week table.
type WeekdayRevenue struct {
	Weekday           time.Weekday `json:"-"`
	Day               string       `json:"day"`
	Orders            int          `json:"orders"`
	Revenue           float64      `json:"revenue"`
	AverageOrderValue float64      `json:"averageOrderValue"`
}

// RevenueByWeekday sums order totals per day of week, Monday through Sunday.
// All seven rows are present even when a day has no orders.
func (v *View) RevenueByWeekday() []WeekdayRevenue {
	type acc struct {
		revenue float64
		orders  map[string]bool
		count   int
	}
	byDay := make(map[time.Weekday]*acc)
	for _, o := range v.Orders {
		a := byDay[o.Weekday()]
		if a == nil {
			a = &acc{orders: make(map[string]bool)}
			byDay[o.Weekday()] = a
		}
		a.revenue += o.Total
		a.orders[o.ID] = true
		a.count++
	}

	out := make([]WeekdayRevenue, 0, len(weekdays))
	for _, wd := range weekdays {
		row := WeekdayRevenue{Weekday: wd, Day: wd.String()}
		if a := byDay[wd]; a != nil {
			row.Revenue = a.revenue
			row.Orders = len(a.orders)
			if a.count > 0 {
				row.AverageOrderValue = a.revenue / float64(a.count)
			}
		}
		out = append(out, row)
	}
	return out
}

// HeatmapCell is one cell of the hour-of-day by day-of-week revenue heatmap.
// Cells with no revenue are omitted so they render as gaps, not zeros.
type HeatmapCell struct {
	Weekday time.Weekday `json:"-"`
	Day     string       `json:"day"`
	Hour    int          `json:"hour"`
	Revenue float64      `json:"revenue"`
}

// RevenueHeatmap sums order totals per (weekday, hour) bucket. Rows are
// ordered hour-major then Monday-first weekday.
func (v *View) RevenueHeatmap() []HeatmapCell {
	type key struct {
		wd   time.Weekday
		hour int
	}
	sums := make(map[key]float64)
	for _, o := range v.Orders {
		sums[key{o.Weekday(), o.Hour()}] += o.Total
	}

	// weekdayIndex orders Monday first, matching the dashboard columns.
	weekdayIndex := make(map[time.Weekday]int, len(weekdays))
	for i, wd := range weekdays {
		weekdayIndex[wd] = i
	}

	out := make([]HeatmapCell, 0, len(sums))
	for k, r := range sums {
		if r == 0 {
			continue
		}
		out = append(out, HeatmapCell{Weekday: k.wd, Day: k.wd.String(), Hour: k.hour, Revenue: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hour != out[j].Hour {
			return out[i].Hour < out[j].Hour
		}
		return weekdayIndex[out[i].Weekday] < weekdayIndex[out[j].Weekday]
	})
	return out
}

// FormatHour renders an hour of day as a 12-hour clock label, e.g. "12 AM",
// "3 PM", matching the heatmap axis of the dashboard.
func FormatHour(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return strconv.Itoa(h) + " AM"
	case h == 12:
		return "12 PM"
	default:
		return strconv.Itoa(h-12) + " PM"
	}
}

// BlockSummary compares order volume across the retail week blocks.
type BlockSummary struct {
	Label             string  `json:"label"`
	Orders            int     `json:"orders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// WeekdayBlocks summarizes the filtered orders into the three retail blocks:
// Mon-Thu weekdays, Fri-Sat stock-up days, and Sunday.
func (v *View) WeekdayBlocks() []BlockSummary {
	blocks := []struct {
		label string
		days  map[time.Weekday]bool
	}{
		{"Mon-Thu (Weekdays)", set(time.Monday, time.Tuesday, time.Wednesday, time.Thursday)},
		{"Fri-Sat (Stock-Up Days)", set(time.Friday, time.Saturday)},
		{"Sunday", set(time.Sunday)},
	}

	out := make([]BlockSummary, 0, len(blocks))
	for _, b := range blocks {
		ids := make(map[string]bool)
		var revenue float64
		count := 0
		for _, o := range v.Orders {
			if !b.days[o.Weekday()] {
				continue
			}
			ids[o.ID] = true
			revenue += o.Total
			count++
		}
		s := BlockSummary{Label: b.label, Orders: len(ids)}
		if count > 0 {
			s.AverageOrderValue = revenue / float64(count)
		}
		out = append(out, s)
	}
	return out
}

func set(days ...time.Weekday) map[time.Weekday]bool {
	m := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		m[d] = true
	}
	return m
}
