// Package stats reduces a list of challans into dashboard summary figures.
// It is a pure computation: no store access, no clock, no mutation of input.
package stats

import (
	"time"

	"go-challan-book/internal/model"
)

// recentLimit is how many challans the dashboard shows as "recent".
const recentLimit = 5

// MonthlyStat is the rollup for one calendar month.
type MonthlyStat struct {
	Month        string  `json:"month"` // e.g. "January 2024"
	TotalAmount  float64 `json:"total_amount"`
	ChallanCount int     `json:"challan_count"`
}

// Stats is the dashboard summary over a challan list.
type Stats struct {
	TotalChallans   int             `json:"total_challans"`
	TotalAmount     float64         `json:"total_amount"`
	UniqueCustomers int             `json:"unique_customers"`
	AverageAmount   float64         `json:"average_amount"`
	RecentChallans  []model.Challan `json:"recent_challans"`
	MonthlyStats    []MonthlyStat   `json:"monthly_stats"`
}

// Compute reduces challans into summary statistics in a single pass.
//
// RecentChallans is a prefix of the input: the caller is responsible for
// supplying challans already sorted descending by date, the engine never
// re-sorts. Customer distinctness is case-sensitive and untrimmed; "Acme"
// and "acme" are two customers. Monthly rollups are keyed by the calendar
// (year, month) of the date and appear in first-seen order.
func Compute(challans []model.Challan) Stats {
	stats := Stats{
		RecentChallans: []model.Challan{},
		MonthlyStats:   []MonthlyStat{},
	}

	customers := make(map[string]struct{})
	monthIndex := make(map[string]int)

	for _, challan := range challans {
		stats.TotalChallans++
		stats.TotalAmount += challan.TotalAmount
		customers[challan.CustomerName] = struct{}{}

		key := challan.Date.Format("2006-01")
		idx, ok := monthIndex[key]
		if !ok {
			idx = len(stats.MonthlyStats)
			monthIndex[key] = idx
			stats.MonthlyStats = append(stats.MonthlyStats, MonthlyStat{
				Month: challan.Date.Format("January 2006"),
			})
		}
		stats.MonthlyStats[idx].TotalAmount += challan.TotalAmount
		stats.MonthlyStats[idx].ChallanCount++
	}

	stats.UniqueCustomers = len(customers)
	if stats.TotalChallans > 0 {
		stats.AverageAmount = stats.TotalAmount / float64(stats.TotalChallans)
	}

	recent := challans
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	stats.RecentChallans = append(stats.RecentChallans, recent...)

	return stats
}

// FilterByDateRange keeps challans dated within [start, end], inclusive at
// both endpoints. Dates are compared as plain calendar dates, ignoring any
// time-of-day or timezone component.
func FilterByDateRange(challans []model.Challan, start, end time.Time) []model.Challan {
	startDay := dateOnly(start)
	endDay := dateOnly(end)

	filtered := make([]model.Challan, 0, len(challans))
	for _, challan := range challans {
		day := dateOnly(challan.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		filtered = append(filtered, challan)
	}
	return filtered
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
