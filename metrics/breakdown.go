package metrics

import (
	"fmt"
	"slices"

	"kucukaslan/eventlab/domain"
)

// BreakdownBy counts events per distinct value of field, ranked by count.
// Ties keep first-seen order. Percentages are relative to len(events).
// topN > 0 truncates the ranking; otherwise every value is returned.
func BreakdownBy(events []domain.Event, field domain.Dimension, topN int) ([]domain.BreakdownEntry, error) {
	value, err := accessor(field)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return []domain.BreakdownEntry{}, nil
	}

	index := make(map[string]int)
	var entries []domain.BreakdownEntry
	for _, e := range events {
		v := value(e)
		i, ok := index[v]
		if !ok {
			i = len(entries)
			index[v] = i
			entries = append(entries, domain.BreakdownEntry{Value: v})
		}
		entries[i].Count++
	}

	slices.SortStableFunc(entries, func(a, b domain.BreakdownEntry) int {
		return b.Count - a.Count
	})
	if topN > 0 && topN < len(entries) {
		entries = entries[:topN]
	}

	total := float64(len(events))
	for i := range entries {
		entries[i].Percentage = float64(entries[i].Count) / total * 100
	}
	return entries, nil
}

// ValidDimension reports whether BreakdownBy accepts field.
func ValidDimension(field domain.Dimension) bool {
	_, err := accessor(field)
	return err == nil
}

func accessor(field domain.Dimension) (func(domain.Event) string, error) {
	switch field {
	case domain.DimensionDevice:
		return func(e domain.Event) string { return string(e.Device) }, nil
	case domain.DimensionCountry:
		return func(e domain.Event) string { return e.Country }, nil
	case domain.DimensionEventType:
		return func(e domain.Event) string { return string(e.EventType) }, nil
	case domain.DimensionURL:
		return func(e domain.Event) string { return e.URL }, nil
	}
	return nil, fmt.Errorf("%w: unknown breakdown field %q", domain.ErrInvalidArgument, field)
}
