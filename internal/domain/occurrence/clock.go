package occurrence

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone database for minimal containers

	"github.com/diegoclair/session-planner-bot/internal/domain"
)

// Clock returns the current instant in the reference timezone
type Clock interface {
	Now() time.Time
}

type zoneClock struct {
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	return zoneClock{loc: loc}
}

func (c zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// ReferenceLocation loads the timezone all occurrences are computed in.
func ReferenceLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(domain.ReferenceTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", domain.ReferenceTimezone, err)
	}
	return loc, nil
}
