// Package ga4 simulates a Google Analytics 4 property as an alternate event
// source. It never touches the network: a daily traffic series is shaped
// from the same seeded sequence the synthesizer uses and expanded into one
// event per session, so a (property, seed, range, day) tuple always yields
// the same events.
package ga4

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/rng"
)

// ErrAuthentication is returned when the service account is unusable.
var ErrAuthentication = errors.New("ga4: authentication failed")

const (
	DefaultDays = 30
	MaxDays     = 365

	baseSessionsMin         = 500
	baseSessionsRange       = 200
	userSessionRatioMin     = 0.7
	userSessionRatioRange   = 0.2
	pageViewsPerSessionMin  = 2
	pageViewsPerSessionSpan = 3
	bounceRateMin           = 0.3
	bounceRateRange         = 0.4
	sessionDurationMin      = 120
	sessionDurationRange    = 300
	conversionRateMin       = 0.02
	conversionRateRange     = 0.03
	revenuePerConversionMin = 50
	revenuePerConversionAdd = 200
	weekendTrafficFactor    = 0.6
	seasonalAmplitude       = 0.3
	randomVariationMin      = 0.8
	randomVariationRange    = 0.4

	realtimeWindow    = 30 * time.Minute
	minRealtimeEvents = 2
	maxRealtimeEvents = 12
	userPoolSize      = 10_000
)

var (
	countries = []string{"US", "GB", "CA", "DE", "FR", "AU", "JP", "IN", "BR", "MX"}
	pages     = []string{"/home", "/product", "/checkout", "/about", "/contact", "/blog", "/pricing", "/login", "/docs", "/signup"}

	// sessionTypes are the non-purchase types; purchases come from the
	// day's conversion count.
	sessionTypes  = []domain.EventType{domain.EventPageView, domain.EventClick, domain.EventScroll, domain.EventSearch, domain.EventSignup}
	realtimeTypes = []domain.EventType{domain.EventPageView, domain.EventClick, domain.EventScroll, domain.EventSearch, domain.EventPurchase}

	sessionNamespace = uuid.MustParse("1d3a4c8e-57b2-4f0e-8a61-0c9b7e2d4f35")
)

// Credentials is the subset of a service-account key the mock checks.
type Credentials struct {
	ClientEmail string `json:"client_email" mapstructure:"client_email"`
	PrivateKey  string `json:"private_key" mapstructure:"private_key"`
	ProjectID   string `json:"project_id" mapstructure:"project_id"`
}

// DateRange uses GA4 notation: "NdaysAgo", "today" or "YYYY-MM-DD".
type DateRange struct {
	Start string `json:"start" example:"30daysAgo"`
	End   string `json:"end" example:"today"`
}

// DailyStats is one day of the simulated traffic series.
type DailyStats = domain.TrafficDay

// Client is a mock GA4 Data API client.
type Client struct {
	credentials Credentials
	latency     time.Duration
	now         func() time.Time
}

type Option func(*Client)

// WithLatency delays every fetch, simulating network time.
func WithLatency(d time.Duration) Option {
	return func(c *Client) { c.latency = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(credentials Credentials, opts ...Option) *Client {
	c := &Client{credentials: credentials, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate returns a mock access token.
func (c *Client) Authenticate() (string, error) {
	if c.credentials.ClientEmail == "" {
		return "", fmt.Errorf("%w: service account has no client_email", ErrAuthentication)
	}
	return "mock_access_token_" + strconv.FormatInt(c.now().UnixMilli(), 10), nil
}

// FetchEvents returns the property's events for the date range, newest first.
func (c *Client) FetchEvents(ctx context.Context, propertyID string, seed int64, dateRange DateRange) ([]domain.Event, error) {
	days, now, err := c.report(ctx, propertyID, dateRange)
	if err != nil {
		return nil, err
	}
	_, events, err := simulate(ctx, propertyID, seed, days, now)
	return events, err
}

// DailySeries returns the traffic series behind FetchEvents for the same
// arguments, with each day's revenue summed from its purchase events.
func (c *Client) DailySeries(ctx context.Context, propertyID string, seed int64, dateRange DateRange) ([]DailyStats, error) {
	days, now, err := c.report(ctx, propertyID, dateRange)
	if err != nil {
		return nil, err
	}
	series, _, err := simulate(ctx, propertyID, seed, days, now)
	return series, err
}

// report runs the checks shared by every report and returns the day count.
func (c *Client) report(ctx context.Context, propertyID string, dateRange DateRange) (int, time.Time, error) {
	if propertyID == "" {
		return 0, time.Time{}, fmt.Errorf("%w: property id is required", domain.ErrInvalidArgument)
	}
	if _, err := c.Authenticate(); err != nil {
		return 0, time.Time{}, err
	}
	now := c.now().UTC()
	days, err := ParseDateRange(dateRange, now)
	if err != nil {
		return 0, time.Time{}, err
	}
	if err := c.wait(ctx); err != nil {
		return 0, time.Time{}, err
	}
	return days, now, nil
}

func simulate(ctx context.Context, propertyID string, seed int64, days int, now time.Time) ([]DailyStats, []domain.Event, error) {
	src := rng.New(seed)
	series := dailySeries(src, days, now)
	events, err := expand(ctx, src, propertyID, seed, series)
	if err != nil {
		return nil, nil, err
	}
	return series, events, nil
}

// FetchRealtime returns the events of the last 30 minutes. The sequence is
// seeded by seed and the current minute, so it changes once per minute.
func (c *Client) FetchRealtime(ctx context.Context, propertyID string, seed int64) ([]domain.Event, error) {
	if propertyID == "" {
		return nil, fmt.Errorf("%w: property id is required", domain.ErrInvalidArgument)
	}
	if _, err := c.Authenticate(); err != nil {
		return nil, err
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	now := c.now().UnixMilli()
	minute := now / time.Minute.Milliseconds()
	src := rng.New(seed ^ minute)
	n := minRealtimeEvents + src.Intn(maxRealtimeEvents-minRealtimeEvents+1)

	events := make([]domain.Event, 0, n)
	for i := 0; i < n; i++ {
		ts := now - int64(src.Intn(int(realtimeWindow.Milliseconds())))
		e := domain.Event{
			ID:        "ga4_rt_" + strconv.FormatInt(minute, 10) + "_" + strconv.Itoa(i),
			UserID:    "user_" + strconv.Itoa(src.Intn(userPoolSize)),
			SessionID: sessionID(propertyID, seed, -1, int(minute)*maxRealtimeEvents+i),
			Timestamp: ts,
			EventType: rng.Pick(src, realtimeTypes),
			URL:       rng.Pick(src, pages),
			Device:    rng.Pick(src, domain.Devices),
			Country:   rng.Pick(src, countries),
		}
		if e.EventType == domain.EventPurchase {
			e.Revenue = domain.Float(math.Floor(src.Range(revenuePerConversionMin, revenuePerConversionAdd)))
		}
		events = append(events, e)
	}
	sortNewestFirst(events)
	return events, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func dailySeries(src *rng.Source, days int, now time.Time) []DailyStats {
	if days < 1 {
		return nil
	}
	base := startOfDay(now).AddDate(0, 0, -days)
	series := make([]DailyStats, 0, days)
	for i := 0; i < days; i++ {
		date := base.AddDate(0, 0, i)

		traffic := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			traffic = weekendTrafficFactor
		}
		seasonal := math.Sin(float64(i)/float64(days)*math.Pi*2)*seasonalAmplitude + 1
		variation := src.Range(randomVariationMin, randomVariationRange)

		sessions := int(traffic * seasonal * variation * src.Range(baseSessionsMin, baseSessionsRange))
		conversions := int(float64(sessions) * src.Range(conversionRateMin, conversionRateRange))
		series = append(series, DailyStats{
			Date:               date.Format(time.DateOnly),
			Sessions:           sessions,
			Users:              int(float64(sessions) * src.Range(userSessionRatioMin, userSessionRatioRange)),
			PageViews:          int(float64(sessions) * src.Range(pageViewsPerSessionMin, pageViewsPerSessionSpan)),
			BounceRate:         math.Round(src.Range(bounceRateMin, bounceRateRange)*100) / 100,
			AvgSessionDuration: int(src.Range(sessionDurationMin, sessionDurationRange)),
			Conversions:        conversions,
		})
	}
	return series
}

// expand turns the series into one event per session. The first
// Conversions sessions of a day are purchases, and their revenue is added
// to the day's Revenue in place.
func expand(ctx context.Context, src *rng.Source, propertyID string, seed int64, series []DailyStats) ([]domain.Event, error) {
	total := 0
	for _, day := range series {
		total += day.Sessions
	}
	events := make([]domain.Event, 0, total)

	for d := range series {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		day := &series[d]
		dayStart, err := time.Parse(time.DateOnly, day.Date)
		if err != nil {
			return nil, fmt.Errorf("ga4: bad series date %q: %w", day.Date, err)
		}

		for j := 0; j < day.Sessions; j++ {
			offset := time.Duration(src.Intn(24))*time.Hour +
				time.Duration(src.Intn(60))*time.Minute +
				time.Duration(src.Intn(60))*time.Second
			e := domain.Event{
				ID:        "ga4_" + strconv.Itoa(d) + "_" + strconv.Itoa(j),
				UserID:    "user_" + strconv.Itoa(src.Intn(userPoolSize)),
				SessionID: sessionID(propertyID, seed, d, j),
				Timestamp: dayStart.Add(offset).UnixMilli(),
				URL:       rng.Pick(src, pages),
				Device:    rng.Pick(src, domain.Devices),
				Country:   rng.Pick(src, countries),
			}
			if j < day.Conversions {
				e.EventType = domain.EventPurchase
				revenue := math.Floor(src.Range(revenuePerConversionMin, revenuePerConversionAdd))
				e.Revenue = domain.Float(revenue)
				day.Revenue += revenue
			} else {
				e.EventType = rng.Pick(src, sessionTypes)
			}
			events = append(events, e)
		}
	}

	sortNewestFirst(events)
	return events, nil
}

func sessionID(propertyID string, seed int64, day, index int) string {
	name := propertyID + "/" + strconv.FormatInt(seed, 10) + "/" + strconv.Itoa(day) + "/" + strconv.Itoa(index)
	return "ga4_session_" + uuid.NewSHA1(sessionNamespace, []byte(name)).String()
}

func sortNewestFirst(events []domain.Event) {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
