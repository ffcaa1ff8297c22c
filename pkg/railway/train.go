package railway

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	MinSeats = 1
	MaxSeats = 2000

	MaxFarePerKm = 10.0

	MaxStopDistance = 5000
)

var (
	ErrStationNotServed = errors.New("station is not served by this train")
	ErrWrongDirection   = errors.New("stations are not in travel order")
)

type Train struct {
	ID   string `groups:"basic"`
	Name string `groups:"basic"`

	Source      string `groups:"basic"`
	Destination string `groups:"basic"`

	// Intermediate stops in travel order, with cumulative distance from the
	// source in km. The two slices are always the same length.
	Stations  []string `groups:"detailed"`
	Distances []int    `groups:"detailed"`

	// Cumulative distance of the destination itself, so must be greater
	// than every intermediate distance.
	TotalDistanceKm int `groups:"basic"`

	TotalSeats int     `groups:"basic"`
	FarePerKm  float64 `groups:"basic"`

	DepartureTime string `groups:"basic"`
	ArrivalTime   string `groups:"basic"`
}

func NewTrain(id string, name string, source string, destination string, totalSeats int, farePerKm float64) (*Train, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("train id cannot be empty")
	}
	if strings.TrimSpace(source) == "" || strings.TrimSpace(destination) == "" {
		return nil, errors.New("source and destination cannot be empty")
	}
	if source == destination {
		return nil, errors.New("source and destination cannot be the same")
	}
	if totalSeats < MinSeats || totalSeats > MaxSeats {
		return nil, fmt.Errorf("total seats must be between %d and %d", MinSeats, MaxSeats)
	}
	if farePerKm <= 0 || farePerKm > MaxFarePerKm {
		return nil, fmt.Errorf("fare per km must be greater than 0 and at most %.1f", MaxFarePerKm)
	}

	return &Train{
		ID:          id,
		Name:        name,
		Source:      source,
		Destination: destination,
		TotalSeats:  totalSeats,
		FarePerKm:   farePerKm,
	}, nil
}

// CanAddStop checks a station name before any distance is known, so the
// console can reject a bad name without asking for more input.
func (t *Train) CanAddStop(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("station name cannot be empty")
	}
	if name == t.Source {
		return errors.New("station cannot be the same as the source station")
	}
	if name == t.Destination {
		return errors.New("station cannot be the same as the destination station")
	}
	if slices.Contains(t.Stations, name) {
		return fmt.Errorf("station %q already on the route", name)
	}

	return nil
}

// AddStop appends an intermediate station. Station names must be unique
// across the whole route and distances strictly increasing.
func (t *Train) AddStop(name string, distanceFromSource int) error {
	if err := t.CanAddStop(name); err != nil {
		return err
	}
	if distanceFromSource <= 0 || distanceFromSource > MaxStopDistance {
		return fmt.Errorf("distance must be between 1 and %d km", MaxStopDistance)
	}
	if len(t.Distances) > 0 && distanceFromSource <= t.Distances[len(t.Distances)-1] {
		return fmt.Errorf("distance must be greater than previous station (%dkm)", t.Distances[len(t.Distances)-1])
	}
	if t.TotalDistanceKm > 0 && distanceFromSource >= t.TotalDistanceKm {
		return fmt.Errorf("distance must be less than the total route distance (%dkm)", t.TotalDistanceKm)
	}

	t.Stations = append(t.Stations, name)
	t.Distances = append(t.Distances, distanceFromSource)

	return nil
}

// SetTotalDistance records the cumulative distance of the destination.
func (t *Train) SetTotalDistance(km int) error {
	if km <= 0 || km > MaxStopDistance {
		return fmt.Errorf("total distance must be between 1 and %d km", MaxStopDistance)
	}
	if len(t.Distances) > 0 && km <= t.Distances[len(t.Distances)-1] {
		return fmt.Errorf("total distance must be greater than the last stop (%dkm)", t.Distances[len(t.Distances)-1])
	}

	t.TotalDistanceKm = km

	return nil
}

// Validate checks the whole route, including records that arrived from
// persistence rather than through NewTrain/AddStop.
func (t *Train) Validate() error {
	if _, err := NewTrain(t.ID, t.Name, t.Source, t.Destination, t.TotalSeats, t.FarePerKm); err != nil {
		return err
	}

	if len(t.Stations) != len(t.Distances) {
		return fmt.Errorf("train %s has %d stations but %d distances", t.ID, len(t.Stations), len(t.Distances))
	}

	previous := 0
	for i, station := range t.Stations {
		if station == t.Source || station == t.Destination {
			return fmt.Errorf("station %q duplicates a route endpoint", station)
		}
		if slices.Index(t.Stations, station) != i {
			return fmt.Errorf("station %q appears twice on the route", station)
		}
		if t.Distances[i] <= previous {
			return fmt.Errorf("distances must be strictly increasing, got %dkm after %dkm", t.Distances[i], previous)
		}
		previous = t.Distances[i]
	}

	if t.TotalDistanceKm <= previous {
		return fmt.Errorf("total distance %dkm must be greater than the last stop (%dkm)", t.TotalDistanceKm, previous)
	}

	return nil
}

func (t *Train) ServesStation(name string) bool {
	return name == t.Source || name == t.Destination || slices.Contains(t.Stations, name)
}

// stopPosition resolves a station name to its position along the route.
// The source is 0, intermediate stop i is i+1, the destination is
// len(stations)+1. Station names are unique so there is exactly one answer.
func (t *Train) stopPosition(name string) (int, bool) {
	if name == t.Source {
		return 0, true
	}
	if name == t.Destination {
		return len(t.Stations) + 1, true
	}
	if i := slices.Index(t.Stations, name); i >= 0 {
		return i + 1, true
	}
	return 0, false
}

// RouteDistance returns the distance in km travelled between two stations
// along this train's route. Both must be served and in travel order.
func (t *Train) RouteDistance(from string, to string) (int, error) {
	fromPos, ok := t.stopPosition(from)
	if !ok {
		return 0, fmt.Errorf("%q: %w", from, ErrStationNotServed)
	}
	toPos, ok := t.stopPosition(to)
	if !ok {
		return 0, fmt.Errorf("%q: %w", to, ErrStationNotServed)
	}
	if toPos <= fromPos {
		return 0, fmt.Errorf("%q to %q: %w", from, to, ErrWrongDirection)
	}

	toDistance := t.TotalDistanceKm
	if toPos <= len(t.Stations) {
		toDistance = t.Distances[toPos-1]
	}

	if fromPos == 0 {
		return toDistance, nil
	}

	return toDistance - t.Distances[fromPos-1], nil
}

func (t *Train) RouteDescription() string {
	var builder strings.Builder

	builder.WriteString(t.Source)
	for i, station := range t.Stations {
		builder.WriteString(fmt.Sprintf(" -> %s (%dkm)", station, t.Distances[i]))
	}
	builder.WriteString(fmt.Sprintf(" -> %s (%dkm)", t.Destination, t.TotalDistanceKm))

	return builder.String()
}
