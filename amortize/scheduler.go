package amortize

import (
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
)

// Scheduler memoizes schedules by their terms. A schedule for a 30-year loan
// is 360 rows of decimal arithmetic; callers quoting the same terms
// repeatedly get the cached rows back.
type Scheduler struct {
	logger l.Wrapper

	schedules *cache.Cache
}

func NewScheduler(logger l.Wrapper) *Scheduler {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Scheduler{
		logger:    logger.WithFields(l.StringField(l.ClsKey, "scheduler")),
		schedules: cache.New(cache.NoExpiration, 0),
	}
}

// Schedule returns the memoized schedule for the terms, computing it on the
// first request. The returned rows are shared; callers must not modify them.
func (impl *Scheduler) Schedule(principal, annualRate float64, months int) ([]Row, error) {
	key := fmt.Sprintf("%v:%v:%d", principal, annualRate, months)

	if v, ok := impl.schedules.Get(key); ok {
		// nolint:forcetypeassert
		return v.([]Row), nil
	}

	rows, err := Schedule(principal, annualRate, months)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Debug("schedule rejected")

		return nil, err
	}

	impl.schedules.Set(key, rows, cache.NoExpiration)

	return rows, nil
}
