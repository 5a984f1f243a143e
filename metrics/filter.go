// Package metrics derives filtered collections and aggregates from events.
// Every function is pure: it never mutates its input and keeps no state
// between calls.
package metrics

import (
	"slices"

	"kucukaslan/eventlab/domain"
)

// Filter returns the events matching every predicate in c, in input order.
// The result is always a new slice.
func Filter(events []domain.Event, c domain.FilterCriteria) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	if c.IsEmpty() {
		return append(out, events...)
	}
	for _, e := range events {
		if Matches(e, c) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether e satisfies every predicate in c.
func Matches(e domain.Event, c domain.FilterCriteria) bool {
	if c.DateFrom != nil && e.Timestamp < *c.DateFrom {
		return false
	}
	if c.DateTo != nil && e.Timestamp > *c.DateTo {
		return false
	}
	if len(c.Countries) > 0 && !slices.Contains(c.Countries, e.Country) {
		return false
	}
	if len(c.Devices) > 0 && !slices.Contains(c.Devices, e.Device) {
		return false
	}
	if len(c.EventTypes) > 0 && !slices.Contains(c.EventTypes, e.EventType) {
		return false
	}
	if c.PurchasesOnly && e.EventType != domain.EventPurchase {
		return false
	}
	return true
}
