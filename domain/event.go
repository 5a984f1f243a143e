package domain

import "fmt"

// EventType is the kind of user action an Event records.
type EventType string

const (
	EventPageView EventType = "page_view"
	EventClick    EventType = "click"
	EventSignup   EventType = "signup"
	EventPurchase EventType = "purchase"

	// Extended types emitted by the GA4 source only.
	EventScroll EventType = "scroll"
	EventSearch EventType = "search"
)

// CoreEventTypes is the event set produced by the synthetic generator.
var CoreEventTypes = []EventType{EventPageView, EventClick, EventSignup, EventPurchase}

// ExtendedEventTypes is the event set produced by the GA4 source.
var ExtendedEventTypes = []EventType{EventPageView, EventClick, EventScroll, EventSearch, EventPurchase, EventSignup}

// Valid reports whether t belongs to the extended event set.
func (t EventType) Valid() bool {
	for _, known := range ExtendedEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Converts reports whether an event of this type marks its user as converted.
func (t EventType) Converts() bool {
	return t == EventSignup || t == EventPurchase
}

// Device is the device category an event was recorded on.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
)

var Devices = []Device{DeviceDesktop, DeviceMobile, DeviceTablet}

func (d Device) Valid() bool {
	return d == DeviceDesktop || d == DeviceMobile || d == DeviceTablet
}

// Event is one discrete user action. Events are immutable once produced;
// filtering and aggregation always build new values.
type Event struct {
	ID        string    `json:"id" example:"evt_0_1732233600000"`
	UserID    string    `json:"userId" example:"u_1234"`
	SessionID string    `json:"sessionId" example:"s_40211"`
	Timestamp int64     `json:"timestamp" example:"1732233600000"` // epoch ms
	EventType EventType `json:"eventType" example:"purchase"`
	URL       string    `json:"url" example:"/checkout"`
	Device    Device    `json:"device" example:"mobile"`
	Country   string    `json:"country" example:"Germany"`
	// Revenue is set, and positive, exactly when EventType is purchase.
	Revenue *float64 `json:"revenue,omitempty" example:"129"`
}

// RevenueValue returns the revenue, treating an absent value as zero.
func (e Event) RevenueValue() float64 {
	if e.Revenue == nil {
		return 0
	}
	return *e.Revenue
}

// Validate checks the required fields and the purchase/revenue invariant.
func (e Event) Validate() error {
	switch {
	case e.ID == "":
		return fmt.Errorf("%w: id is required", ErrInvalidArgument)
	case e.UserID == "":
		return fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	case e.SessionID == "":
		return fmt.Errorf("%w: sessionId is required", ErrInvalidArgument)
	case e.URL == "":
		return fmt.Errorf("%w: url is required", ErrInvalidArgument)
	case e.Country == "":
		return fmt.Errorf("%w: country is required", ErrInvalidArgument)
	case !e.EventType.Valid():
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidArgument, e.EventType)
	case !e.Device.Valid():
		return fmt.Errorf("%w: unknown device %q", ErrInvalidArgument, e.Device)
	}

	hasRevenue := e.Revenue != nil && *e.Revenue > 0
	if (e.EventType == EventPurchase) != hasRevenue {
		return fmt.Errorf("%w: event %s: revenue must be positive for purchases and absent otherwise", ErrInvalidArgument, e.ID)
	}
	return nil
}

// Float returns a pointer to v, for building optional revenue values.
func Float(v float64) *float64 {
	return &v
}
