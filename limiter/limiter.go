// This file is part of maikorhost.
//
// maikorhost is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// maikorhost is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with maikorhost.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces a loop to a fixed number of iterations per second.
//
//	lim, _ := limiter.NewLimiter(60)
//	for {
//		lim.Wait()
//		h.Execute()
//	}
//
// The limiter keeps to a fixed schedule. A late call to Wait() returns
// immediately and the following calls catch up, unless the limiter has fallen
// more than a second behind, in which case the schedule starts again from the
// current time.
package limiter

import (
	"time"

	"github.com/maikorhost/maikorhost/curated"
)

// InvalidRate is returned when the rate is not a positive number.
const InvalidRate = "limiter: invalid rate: %d"

// Limiter paces a loop. It is not safe for concurrent use.
type Limiter struct {
	period time.Duration
	next   time.Time

	// replaced for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(perSecond int) (*Limiter, error) {
	lim := &Limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if err := lim.SetLimit(perSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate. The schedule starts again from the current time.
func (lim *Limiter) SetLimit(perSecond int) error {
	if perSecond <= 0 {
		return curated.Errorf(InvalidRate, perSecond)
	}
	lim.period = time.Second / time.Duration(perSecond)
	lim.next = lim.now()
	return nil
}

// Wait blocks until the next scheduled time.
func (lim *Limiter) Wait() {
	now := lim.now()
	if d := lim.next.Sub(now); d > 0 {
		lim.sleep(d)
	} else if -d > time.Second {
		lim.next = now
	}
	lim.next = lim.next.Add(lim.period)
}
