package assistant

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/timeutil"
)

// MaxHorizonDays bounds the birthday lookahead window.
const MaxHorizonDays = 365

// Upcoming pairs a contact with the days remaining until its next
// birthday.
type Upcoming struct {
	Contact core.Contact
	Next    time.Time // next occurrence, UTC midnight
	InDays  int
}

// UpcomingBirthdays returns contacts whose next birthday falls within
// horizon days of today, sorted ascending by days remaining. The sort is
// stable: ties keep insertion order. Horizon must be in [0, MaxHorizonDays].
func (s *Service) UpcomingBirthdays(ctx context.Context, horizon int) ([]Upcoming, error) {
	if horizon < 0 || horizon > MaxHorizonDays {
		return nil, &core.FieldError{
			Base:   core.ErrInvalidHorizon,
			Field:  "days",
			Value:  strconv.Itoa(horizon),
			Reason: "must be between 0 and " + strconv.Itoa(MaxHorizonDays),
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	today := timeutil.StartOfDay(s.clock.Now())

	var upcoming []Upcoming
	for _, c := range s.contacts {
		if !c.HasBirthday() {
			continue
		}
		next := nextOccurrence(c.Birthday, today)
		in := int(next.Sub(today).Hours() / 24)
		if in <= horizon {
			upcoming = append(upcoming, Upcoming{Contact: c, Next: next, InDays: in})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].InDays < upcoming[j].InDays
	})
	return upcoming, nil
}

// nextOccurrence computes the next occurrence of the birthday's month/day
// on or after today, rolling over to next year when already passed.
// A Feb 29 birthday counts as Mar 1 in non-leap years.
func nextOccurrence(birthday, today time.Time) time.Time {
	next := occurrenceIn(today.Year(), birthday.Month(), birthday.Day())
	if next.Before(today) {
		next = occurrenceIn(today.Year()+1, birthday.Month(), birthday.Day())
	}
	return next
}

func occurrenceIn(year int, month time.Month, day int) time.Time {
	if month == time.February && day == 29 && !isLeap(year) {
		month, day = time.March, 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
