// Package pnr derives reservation identifiers from the wall clock and the
// travel date.
package pnr

import (
	"fmt"
	"time"

	"github.com/railbook/railbook/pkg/railway"
)

// The time-of-day component is always expressed in IST (UTC+5:30),
// whatever the host clock is set to.
const (
	offsetHours   = 5
	offsetMinutes = 30
)

// Generator produces 14-character HHMMSSDDMMYYYY reservation numbers.
// Now is swappable for tests; the zero value is not usable, use New.
//
// No uniqueness check is made against existing reservations. Two bookings
// in the same second for the same travel date will collide, an accepted
// limitation inherited from the flat-file era of this system.
type Generator struct {
	Now func() time.Time
}

func New() *Generator {
	return &Generator{Now: time.Now}
}

// Generate builds a reservation number. When travelDate is a well-formed
// DD-MM-YYYY string its components replace the wall-clock date; the
// time-of-day part always comes from the clock.
func (g *Generator) Generate(travelDate string) string {
	now := g.Now().UTC()

	hour := now.Hour()
	minute := now.Minute() + offsetMinutes
	second := now.Second()

	if minute >= 60 {
		minute -= 60
		hour++
	}
	hour += offsetHours
	if hour >= 24 {
		hour -= 24
	}

	day := now.Day()
	month := int(now.Month())
	year := now.Year()

	if d, m, y, err := railway.ParseTravelDate(travelDate); err == nil {
		day, month, year = d, m, y
	}

	return fmt.Sprintf("%02d%02d%02d%02d%02d%04d", hour, minute, second, day, month, year)
}
