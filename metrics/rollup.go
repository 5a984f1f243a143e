package metrics

import (
	"time"

	"kucukaslan/eventlab/domain"
)

const dayMs = int64(24 * time.Hour / time.Millisecond)

// DayLabelLayout renders bucket starts as e.g. "Nov 21", in UTC.
const DayLabelLayout = "Jan 2"

// RollupByDay splits the windowDays*24h before referenceTime into
// contiguous day buckets, oldest first, and counts the events falling in
// each. A bucket covers [Start, End); events outside every bucket are
// skipped. Empty buckets are kept so the series has no gaps.
func RollupByDay(events []domain.Event, windowDays int, referenceTime int64) []domain.DayBucket {
	if windowDays < 1 {
		return []domain.DayBucket{}
	}

	windowStart := referenceTime - int64(windowDays)*dayMs
	buckets := make([]domain.DayBucket, windowDays)
	for i := range buckets {
		start := windowStart + int64(i)*dayMs
		buckets[i] = domain.DayBucket{
			Date:  time.UnixMilli(start).UTC().Format(DayLabelLayout),
			Start: start,
			End:   start + dayMs,
		}
	}

	for _, e := range events {
		if e.Timestamp < windowStart || e.Timestamp >= referenceTime {
			continue
		}
		b := &buckets[(e.Timestamp-windowStart)/dayMs]
		b.Events++
		if e.EventType == domain.EventPurchase {
			b.Purchases++
			b.Revenue += e.RevenueValue()
		}
	}
	return buckets
}
