// Package flatfile reads and writes the pipe-delimited record files that
// make trains and bookings durable across runs.
package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/railbook/railbook/pkg/railway"
)

const delimiter = "|"

// MarshalTrain renders one train record:
//
//	id|name|source|destination|totalSeats|farePerKm|departure|arrival|stationCount|(station|distance)*
//
// The destination and its cumulative distance are written as the final
// station/distance pair, so stationCount is the intermediate count plus one.
func MarshalTrain(train *railway.Train) string {
	fields := []string{
		train.ID,
		train.Name,
		train.Source,
		train.Destination,
		strconv.Itoa(train.TotalSeats),
		strconv.FormatFloat(train.FarePerKm, 'g', -1, 64),
		train.DepartureTime,
		train.ArrivalTime,
		strconv.Itoa(len(train.Stations) + 1),
	}

	for i, station := range train.Stations {
		fields = append(fields, station, strconv.Itoa(train.Distances[i]))
	}
	fields = append(fields, train.Destination, strconv.Itoa(train.TotalDistanceKm))

	return strings.Join(fields, delimiter)
}

// UnmarshalTrain parses one train record. Anything short or non-numeric
// fails the whole record; the caller skips it and moves on.
func UnmarshalTrain(line string) (*railway.Train, error) {
	tokens := strings.Split(line, delimiter)
	if len(tokens) < 9 {
		return nil, fmt.Errorf("train record has %d fields, want at least 9", len(tokens))
	}

	totalSeats, err := strconv.Atoi(tokens[4])
	if err != nil {
		return nil, fmt.Errorf("train record has non-numeric seat count %q", tokens[4])
	}
	farePerKm, err := strconv.ParseFloat(tokens[5], 64)
	if err != nil {
		return nil, fmt.Errorf("train record has non-numeric fare %q", tokens[5])
	}
	stationCount, err := strconv.Atoi(tokens[8])
	if err != nil {
		return nil, fmt.Errorf("train record has non-numeric station count %q", tokens[8])
	}

	train := &railway.Train{
		ID:            tokens[0],
		Name:          tokens[1],
		Source:        tokens[2],
		Destination:   tokens[3],
		TotalSeats:    totalSeats,
		FarePerKm:     farePerKm,
		DepartureTime: tokens[6],
		ArrivalTime:   tokens[7],
	}

	if len(tokens) < 9+stationCount*2 {
		return nil, fmt.Errorf("train record claims %d stations but is truncated", stationCount)
	}

	for i := 0; i < stationCount; i++ {
		station := tokens[9+i*2]
		distance, err := strconv.Atoi(tokens[10+i*2])
		if err != nil {
			return nil, fmt.Errorf("train record has non-numeric distance %q for station %q", tokens[10+i*2], station)
		}

		if i == stationCount-1 && station == train.Destination {
			train.TotalDistanceKm = distance
			break
		}

		train.Stations = append(train.Stations, station)
		train.Distances = append(train.Distances, distance)
	}

	if train.TotalDistanceKm == 0 {
		return nil, fmt.Errorf("train record for %q has no destination distance", train.ID)
	}

	return train, nil
}

// MarshalBooking renders one booking record:
//
//	pnr|trainId|source|destination|date|fare|mealPreference|passengerCount|(name|age|gender|contact)*
func MarshalBooking(booking *railway.Booking) string {
	fields := []string{
		booking.PNR,
		booking.TrainID,
		booking.Source,
		booking.Destination,
		booking.Date,
		strconv.FormatFloat(booking.Fare, 'g', -1, 64),
		booking.MealPreference,
		strconv.Itoa(len(booking.Passengers)),
	}

	for _, passenger := range booking.Passengers {
		fields = append(fields, passenger.Name, strconv.Itoa(passenger.Age), passenger.Gender, passenger.Contact)
	}

	return strings.Join(fields, delimiter)
}

func UnmarshalBooking(line string) (*railway.Booking, error) {
	tokens := strings.Split(line, delimiter)
	if len(tokens) < 8 {
		return nil, fmt.Errorf("booking record has %d fields, want at least 8", len(tokens))
	}

	fareValue, err := strconv.ParseFloat(tokens[5], 64)
	if err != nil {
		return nil, fmt.Errorf("booking record has non-numeric fare %q", tokens[5])
	}
	passengerCount, err := strconv.Atoi(tokens[7])
	if err != nil {
		return nil, fmt.Errorf("booking record has non-numeric passenger count %q", tokens[7])
	}

	booking := &railway.Booking{
		PNR:            tokens[0],
		TrainID:        tokens[1],
		Source:         tokens[2],
		Destination:    tokens[3],
		Date:           tokens[4],
		Fare:           fareValue,
		MealPreference: tokens[6],
		Status:         railway.StatusConfirmed,
	}

	if len(tokens) < 8+passengerCount*4 {
		return nil, fmt.Errorf("booking record claims %d passengers but is truncated", passengerCount)
	}

	for i := 0; i < passengerCount; i++ {
		base := 8 + i*4
		age, err := strconv.Atoi(tokens[base+1])
		if err != nil {
			return nil, fmt.Errorf("booking record has non-numeric age %q", tokens[base+1])
		}

		booking.Passengers = append(booking.Passengers, railway.Passenger{
			Name:    tokens[base],
			Age:     age,
			Gender:  tokens[base+2],
			Contact: tokens[base+3],
		})
	}

	return booking, nil
}
