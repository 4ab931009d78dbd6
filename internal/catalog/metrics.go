// ABOUTME: Dashboard metrics computed from the product working set
// ABOUTME: Totals, status split, monthly creation series, and recent products

package catalog

import (
	"math"
	"sort"

	"github.com/juliomonteiiro/agenus-admin/internal/client"
)

// MonthCount is one point of the monthly creation series
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// Metrics is the aggregated dashboard view of the catalog
type Metrics struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`

	// ActivityRate is active/total as a rounded percentage
	ActivityRate int `json:"activityRate"`

	// ByMonth is the number of products created per month, ascending
	ByMonth []MonthCount `json:"byMonth"`

	// Recent holds the most recently created products, newest first
	Recent []client.ProductSummary `json:"recent"`
}

const recentLimit = 5

// ComputeMetrics aggregates the working set client-side
func ComputeMetrics(items []client.ProductSummary) Metrics {
	m := Metrics{Total: len(items)}

	byMonth := make(map[string]int)
	for _, p := range items {
		if p.Status {
			m.Active++
		} else {
			m.Inactive++
		}
		if t := parseInstant(p.CreatedAt); !t.IsZero() {
			byMonth[t.Format("2006-01")]++
		}
	}

	if m.Total > 0 {
		m.ActivityRate = int(math.Round(float64(m.Active) / float64(m.Total) * 100))
	}

	for month, count := range byMonth {
		m.ByMonth = append(m.ByMonth, MonthCount{Month: month, Count: count})
	}
	sort.Slice(m.ByMonth, func(i, j int) bool {
		return m.ByMonth[i].Month < m.ByMonth[j].Month
	})

	recent := make([]client.ProductSummary, len(items))
	copy(recent, items)
	sort.Slice(recent, func(i, j int) bool {
		return parseInstant(recent[j].CreatedAt).Before(parseInstant(recent[i].CreatedAt))
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	m.Recent = recent

	return m
}
