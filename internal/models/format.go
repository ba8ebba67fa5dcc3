package models

import (
	"fmt"
	"time"
)

// FormatPayRate renders an amount with the fixed currency prefix and
// two decimal digits, e.g. "RM 15.00 per_hour".
func FormatPayRate(amount float64, description string) string {
	return fmt.Sprintf("RM %.2f %s", amount, description)
}

// FormatCategory maps a category id to its display label, falling back
// to the raw id for unknown values.
func FormatCategory(category string) string {
	for _, c := range JobCategories {
		if c.ID == category {
			return c.Label
		}
	}
	return category
}

// FormatDateTime renders a timestamp for display, e.g.
// "15 February 2024, 08:30".
func FormatDateTime(t time.Time) string {
	return t.Format("2 January 2006, 15:04")
}
