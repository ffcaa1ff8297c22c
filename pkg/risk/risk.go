// Package risk scores how likely a booking is to be cancelled before
// travel. It is a display heuristic over booking attributes, not a
// statistical model.
package risk

import (
	"math/rand"
	"time"

	"github.com/railbook/railbook/pkg/railway"
)

type Level string

const (
	LevelVeryLow  Level = "Very Low"
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelVeryHigh Level = "Very High"
)

// Estimator scores bookings. Both the clock and the jitter source are
// swappable so tests can pin them.
type Estimator struct {
	Now func() time.Time

	// Jitter must stay within [-0.10, +0.10].
	Jitter func() float64
}

func New(random *rand.Rand) *Estimator {
	return &Estimator{
		Now: time.Now,
		Jitter: func() float64 {
			return random.Float64()*0.2 - 0.1
		},
	}
}

type Score struct {
	Percent float64 `groups:"basic"`
	Level   Level   `groups:"basic"`

	// Inputs echoed back for the factors display.
	DaysUntilTravel  int     `groups:"basic"`
	GroupSize        int     `groups:"basic"`
	FarePerPassenger float64 `groups:"basic"`
	MealSet          bool    `groups:"basic"`
}

// Estimate produces a 0-100 cancellation risk percentage for a booking.
func (e *Estimator) Estimate(booking *railway.Booking) Score {
	days := e.daysUntilTravel(booking.Date)

	probability := 0.0

	switch {
	case days == 0:
		probability += 0.10
	case days <= 2:
		probability += 0.15
	case days <= 7:
		probability += 0.25
	case days <= 30:
		probability += 0.35
	default:
		probability += 0.45
	}

	groupSize := len(booking.Passengers)
	switch {
	case groupSize <= 1:
		probability += 0.10
	case groupSize == 2:
		probability += 0.15
	case groupSize <= 4:
		probability += 0.20
	default:
		probability += 0.25
	}

	perPassenger := booking.Fare
	if groupSize > 1 {
		perPassenger = booking.Fare / float64(groupSize)
	}
	switch {
	case perPassenger > 5000:
		probability += 0.20
	case perPassenger > 2000:
		probability += 0.15
	default:
		probability += 0.10
	}

	if booking.HasMealPreference() {
		probability -= 0.15
	}

	probability += e.Jitter()

	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}

	percent := probability * 100

	return Score{
		Percent:          percent,
		Level:            levelFor(percent),
		DaysUntilTravel:  days,
		GroupSize:        groupSize,
		FarePerPassenger: perPassenger,
		MealSet:          booking.HasMealPreference(),
	}
}

// daysUntilTravel is a simplified calendar delta: months count as 30 days
// and years as 365. A malformed date reads as 01-01-2024, and dates in the
// past clamp to 0.
func (e *Estimator) daysUntilTravel(date string) int {
	travelDay, travelMonth, travelYear := 1, 1, 2024
	if d, m, y, err := railway.ParseTravelDate(date); err == nil {
		travelDay, travelMonth, travelYear = d, m, y
	}

	now := e.Now()
	days := (travelMonth-int(now.Month()))*30 + (travelDay - now.Day())
	if travelYear != now.Year() {
		days += (travelYear - now.Year()) * 365
	}

	if days < 0 {
		days = 0
	}

	return days
}

func levelFor(percent float64) Level {
	switch {
	case percent < 20:
		return LevelVeryLow
	case percent < 40:
		return LevelLow
	case percent < 60:
		return LevelMedium
	case percent < 80:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}
