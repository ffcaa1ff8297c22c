package store

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/railbook/railbook/pkg/catering"
	"github.com/railbook/railbook/pkg/fare"
	"github.com/railbook/railbook/pkg/flatfile"
	"github.com/railbook/railbook/pkg/pnr"
	"github.com/railbook/railbook/pkg/railway"
)

const (
	MinPassengersPerBooking = 1
	MaxPassengersPerBooking = 6

	MaxPassengerAge = 119
)

type Store struct {
	trains   []*railway.Train
	bookings []*railway.Booking

	ledger *catering.Ledger
	pnr    *pnr.Generator

	archive *flatfile.Archive
}

func NewStore(archive *flatfile.Archive) *Store {
	return &Store{
		ledger:  catering.NewLedger(),
		pnr:     pnr.New(),
		archive: archive,
	}
}

// OpenFromEnvironment builds a store over the archive directory named by
// RAILBOOK_DATA_DIR (default the working directory) and loads it.
func OpenFromEnvironment() (*Store, error) {
	directory := os.Getenv("RAILBOOK_DATA_DIR")
	if directory == "" {
		directory = "."
	}

	dataStore := NewStore(flatfile.NewArchive(directory))
	if err := dataStore.Load(); err != nil {
		return nil, err
	}

	return dataStore, nil
}

// Load replaces the in-memory collections with the archive's contents.
// Trains that fail route validation are dropped the same way malformed
// records are, so the uniqueness invariants hold for everything in memory.
func (s *Store) Load() error {
	trains, err := s.archive.LoadTrains()
	if err != nil {
		return err
	}

	s.trains = nil
	for _, train := range trains {
		if err := train.Validate(); err != nil {
			log.Warn().Err(err).Str("train", train.ID).Msg("Skipping invalid train record")
			continue
		}
		s.trains = append(s.trains, train)
	}

	s.bookings, err = s.archive.LoadBookings()
	if err != nil {
		return err
	}

	return nil
}

func (s *Store) Trains() []*railway.Train {
	return s.trains
}

func (s *Store) Bookings() []*railway.Booking {
	return s.bookings
}

func (s *Store) Train(id string) (*railway.Train, error) {
	for _, train := range s.trains {
		if train.ID == id {
			return train, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", id, ErrTrainNotFound)
}

func (s *Store) Booking(pnrNumber string) (*railway.Booking, error) {
	for _, booking := range s.bookings {
		if booking.PNR == pnrNumber {
			return booking, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", pnrNumber, ErrBookingNotFound)
}

func (s *Store) Catering() *catering.Ledger {
	return s.ledger
}

// AddTrain validates and registers a new train, then rewrites the trains
// file.
func (s *Store) AddTrain(train *railway.Train) error {
	if err := train.Validate(); err != nil {
		return err
	}
	if _, err := s.Train(train.ID); err == nil {
		return fmt.Errorf("%q: %w", train.ID, ErrDuplicateTrain)
	}

	s.trains = append(s.trains, train)

	return s.archive.SaveTrains(s.trains)
}

// BookingRequest carries the validated field values the console collects
// for one reservation.
type BookingRequest struct {
	TrainID     string
	Source      string
	Destination string
	Date        string
	Passengers  []railway.Passenger

	// MealPreference is the already-decided preference; callers check
	// MealAvailability first and downgrade to "None" when the pantry is
	// short.
	MealPreference string
}

// CreateBooking resolves the route, prices the journey, generates the PNR
// and commits the booking in one step, flushing to the archive before
// returning.
func (s *Store) CreateBooking(request BookingRequest) (*railway.Booking, fare.Quote, error) {
	train, err := s.Train(request.TrainID)
	if err != nil {
		return nil, fare.Quote{}, err
	}

	if err := railway.ValidateTravelDate(request.Date); err != nil {
		return nil, fare.Quote{}, err
	}

	if len(request.Passengers) < MinPassengersPerBooking || len(request.Passengers) > MaxPassengersPerBooking {
		return nil, fare.Quote{}, fmt.Errorf("bookings must have between %d and %d passengers", MinPassengersPerBooking, MaxPassengersPerBooking)
	}
	for _, passenger := range request.Passengers {
		if passenger.Age < 1 || passenger.Age > MaxPassengerAge {
			return nil, fare.Quote{}, fmt.Errorf("passenger %q has invalid age %d", passenger.Name, passenger.Age)
		}
	}

	distance, err := train.RouteDistance(request.Source, request.Destination)
	if err != nil {
		return nil, fare.Quote{}, err
	}

	quote := fare.Calculate(distance, train.FarePerKm, request.Passengers)

	booking := railway.NewBooking(train.ID, request.Source, request.Destination, request.Date)
	booking.PNR = s.pnr.Generate(request.Date)
	booking.Passengers = request.Passengers
	booking.Fare = quote.Total
	if request.MealPreference != "" {
		booking.MealPreference = request.MealPreference
	}

	s.bookings = append(s.bookings, booking)

	if err := s.archive.SaveBookings(s.bookings); err != nil {
		return booking, quote, err
	}

	return booking, quote, nil
}

// MealAvailability reports how many meals of a category the pantry can
// still serve, for the pre-booking check.
func (s *Store) MealAvailability(category railway.CateringCategory) int {
	return s.ledger.AvailableInCategory(category)
}

// OrderCatering places a pantry order against an existing booking and
// appends the order descriptor to its meal preference.
func (s *Store) OrderCatering(pnrNumber string, itemID string, quantity int) (*catering.Order, error) {
	booking, err := s.Booking(pnrNumber)
	if err != nil {
		return nil, err
	}

	order, err := s.ledger.Order(itemID, quantity)
	if err != nil {
		return nil, err
	}

	booking.AppendMeal(order.Descriptor)

	if err := s.archive.SaveBookings(s.bookings); err != nil {
		return order, err
	}

	return order, nil
}

func (s *Store) AdjustInventory(itemID string, delta int) (newStock int, clamped bool, err error) {
	return s.ledger.Adjust(itemID, delta)
}

func (s *Store) ResetCatering() {
	s.ledger.Reset()
}

// Alternative is one train that can carry a passenger between two
// stations, with the fare a single adult would pay.
type Alternative struct {
	Train      *railway.Train `groups:"basic"`
	DistanceKm int            `groups:"basic"`
	Fare       float64        `groups:"basic"`
}

// AlternativeRoutes lists every train serving both stations in travel
// order, cheapest first.
func (s *Store) AlternativeRoutes(source string, destination string) []Alternative {
	var alternatives []Alternative

	for _, train := range s.trains {
		distance, err := train.RouteDistance(source, destination)
		if err != nil {
			continue
		}

		alternatives = append(alternatives, Alternative{
			Train:      train,
			DistanceKm: distance,
			Fare:       float64(distance) * train.FarePerKm,
		})
	}

	slices.SortFunc(alternatives, func(a, b Alternative) int {
		switch {
		case a.Fare < b.Fare:
			return -1
		case a.Fare > b.Fare:
			return 1
		default:
			return 0
		}
	})

	return alternatives
}

type Stats struct {
	Trains        int `groups:"basic"`
	Bookings      int `groups:"basic"`
	CateringItems int `groups:"basic"`
}

func (s *Store) Stats() Stats {
	return Stats{
		Trains:        len(s.trains),
		Bookings:      len(s.bookings),
		CateringItems: len(s.ledger.Items()),
	}
}
