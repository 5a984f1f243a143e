package ga4

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"kucukaslan/eventlab/domain"
)

const (
	todayKeyword  = "today"
	daysAgoSuffix = "daysAgo"
	dayDuration   = 24 * time.Hour
)

// ParseDateRange returns the number of days the range covers, relative to
// now. An empty start means DefaultDays. The result is capped at MaxDays.
func ParseDateRange(r DateRange, now time.Time) (int, error) {
	start := strings.TrimSpace(r.Start)
	if start == "" {
		return DefaultDays, nil
	}

	if n, ok := strings.CutSuffix(start, daysAgoSuffix); ok {
		days, err := strconv.Atoi(n)
		if err != nil || days < 1 {
			return 0, fmt.Errorf("%w: bad relative start %q", domain.ErrInvalidArgument, r.Start)
		}
		return min(days, MaxDays), nil
	}

	startDate, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return 0, fmt.Errorf("%w: bad start date %q", domain.ErrInvalidArgument, r.Start)
	}
	endDate := now
	if end := strings.TrimSpace(r.End); end != "" && end != todayKeyword {
		endDate, err = time.Parse(time.DateOnly, end)
		if err != nil {
			return 0, fmt.Errorf("%w: bad end date %q", domain.ErrInvalidArgument, r.End)
		}
	}

	days := int(math.Ceil(math.Abs(endDate.Sub(startDate).Hours()) / dayDuration.Hours()))
	if days < 1 {
		days = 1
	}
	return min(days, MaxDays), nil
}
