package metrics

import "kucukaslan/eventlab/domain"

// ComputeKPIs summarizes events. A user is converted when any of their
// events is a signup or a purchase. The result does not depend on the order
// of events.
func ComputeKPIs(events []domain.Event) domain.KPISummary {
	if len(events) == 0 {
		return domain.KPISummary{}
	}

	users := make(map[string]struct{})
	sessions := make(map[string]struct{})
	converted := make(map[string]struct{})
	revenue := 0.0
	from, to := events[0].Timestamp, events[0].Timestamp

	for _, e := range events {
		users[e.UserID] = struct{}{}
		sessions[e.SessionID] = struct{}{}
		if e.EventType.Converts() {
			converted[e.UserID] = struct{}{}
		}
		if e.EventType == domain.EventPurchase {
			revenue += e.RevenueValue()
		}
		from = min(from, e.Timestamp)
		to = max(to, e.Timestamp)
	}

	summary := domain.KPISummary{
		UniqueUsers:    len(users),
		UniqueSessions: len(sessions),
		TotalRevenue:   revenue,
		DateFrom:       &from,
		DateTo:         &to,
	}
	if len(users) > 0 {
		summary.ConversionRate = float64(len(converted)) / float64(len(users))
	}
	return summary
}
