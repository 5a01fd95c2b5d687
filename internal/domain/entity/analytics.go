package entity

import "time"

// DateRangeSummary aggregates activity over whole days.
type DateRangeSummary struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Customers int64     `json:"customers"`
	Vendors   int64     `json:"vendors"`
	Devices   int64     `json:"devices"`
	Payments  float64   `json:"payments"`
}
