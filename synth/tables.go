package synth

import "kucukaslan/eventlab/domain"

const (
	// UserPoolSize and SessionPoolSize are fixed so every request draws from
	// the same identities regardless of count.
	UserPoolSize    = 20_000
	SessionPoolSize = 60_000

	MinRevenue = 10
	MaxRevenue = 500

	// DrawsPerEvent is the number of draws every event consumes; purchases
	// consume one more for revenue.
	DrawsPerEvent = 7

	batchSize = 1000
	dayMs     = int64(24 * 60 * 60 * 1000)
)

// URLs are the page paths events are attributed to.
var URLs = []string{
	"/home",
	"/product",
	"/checkout",
	"/about",
	"/contact",
	"/blog",
	"/pricing",
	"/login",
	"/docs",
	"/signup",
}

// Countries is the country reference table, ordered as drawn.
var Countries = []string{
	"United States",
	"United Kingdom",
	"Canada",
	"Germany",
	"France",
	"Japan",
	"Australia",
	"Brazil",
	"India",
	"Mexico",
	"Spain",
	"Netherlands",
}

// EventWeight assigns a share of the event stream to one event type.
type EventWeight struct {
	Type   domain.EventType
	Weight float64
}

// DefaultEventWeights is the canonical event-type policy.
var DefaultEventWeights = []EventWeight{
	{Type: domain.EventPageView, Weight: 0.70},
	{Type: domain.EventClick, Weight: 0.20},
	{Type: domain.EventSignup, Weight: 0.07},
	{Type: domain.EventPurchase, Weight: 0.03},
}
