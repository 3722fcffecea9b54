package entity

import "time"

// DiscountCode is a named promotional code in the discount ledger.
// Codes are case-sensitive and unique; they are deactivated, not deleted.
type DiscountCode struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Percentage  int    `json:"percentage"` // Always within [0,100].
	Description string `json:"description"`
	ValidUntil  string `json:"valid_until"` // Calendar date in YYYY-MM-DD form.
	MinAmount   int    `json:"min_amount"`  // Minimum order amount the code applies to; never negative.
	Active      bool   `json:"active"`
}

// ExpiresBefore reports whether the code's validity window has closed at
// the given instant. A missing or malformed ValidUntil never expires.
func (d *DiscountCode) ExpiresBefore(now time.Time) bool {
	until, err := time.Parse("2006-01-02", d.ValidUntil)
	if err != nil {
		return false
	}

	// The code stays valid through the whole of its last day.
	return now.After(until.AddDate(0, 0, 1))
}
