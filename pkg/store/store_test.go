package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railbook/railbook/pkg/flatfile"
	"github.com/railbook/railbook/pkg/railway"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()

	directory := t.TempDir()
	dataStore := NewStore(flatfile.NewArchive(directory))
	require.NoError(t, dataStore.Load())

	return dataStore, directory
}

func addTestTrain(t *testing.T, dataStore *Store) *railway.Train {
	t.Helper()

	train, err := railway.NewTrain("EXP101", "Coastal Express", "A", "D", 500, 2.5)
	require.NoError(t, err)
	require.NoError(t, train.AddStop("B", 100))
	require.NoError(t, train.AddStop("C", 250))
	require.NoError(t, train.SetTotalDistance(400))
	train.DepartureTime = "06:15"
	train.ArrivalTime = "14:40"

	require.NoError(t, dataStore.AddTrain(train))

	return train
}

func adultPassengers() []railway.Passenger {
	return []railway.Passenger{
		{Name: "Asha", Age: 34, Gender: "F", Contact: "9876543210"},
		{Name: "Ram", Age: 36, Gender: "M", Contact: "9876543211"},
	}
}

func TestAddTrainFlushesToDisk(t *testing.T) {
	dataStore, directory := testStore(t)
	addTestTrain(t, dataStore)

	contents, err := os.ReadFile(filepath.Join(directory, flatfile.TrainsFile))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "EXP101|Coastal Express|A|D|500|2.5")

	reloaded := NewStore(flatfile.NewArchive(directory))
	require.NoError(t, reloaded.Load())

	train, err := reloaded.Train("EXP101")
	require.NoError(t, err)
	assert.Equal(t, 400, train.TotalDistanceKm)
}

func TestAddTrainRejectsDuplicates(t *testing.T) {
	dataStore, _ := testStore(t)
	addTestTrain(t, dataStore)

	duplicate, err := railway.NewTrain("EXP101", "Imposter", "X", "Y", 100, 2.0)
	require.NoError(t, err)
	require.NoError(t, duplicate.SetTotalDistance(200))

	assert.ErrorIs(t, dataStore.AddTrain(duplicate), ErrDuplicateTrain)
}

func TestAddTrainRejectsInvalidRoutes(t *testing.T) {
	dataStore, _ := testStore(t)

	train, err := railway.NewTrain("EXP102", "Broken", "A", "B", 100, 2.0)
	require.NoError(t, err)

	// No total distance recorded.
	assert.Error(t, dataStore.AddTrain(train))
}

func TestCreateBooking(t *testing.T) {
	dataStore, directory := testStore(t)
	addTestTrain(t, dataStore)

	booking, quote, err := dataStore.CreateBooking(BookingRequest{
		TrainID:     "EXP101",
		Source:      "B",
		Destination: "D",
		Date:        "15-12-2024",
		Passengers:  adultPassengers(),
	})
	require.NoError(t, err)

	assert.Len(t, booking.PNR, 14)
	assert.Equal(t, "15122024", booking.PNR[6:])
	assert.Equal(t, railway.StatusConfirmed, booking.Status)
	assert.Equal(t, railway.NoMealPreference, booking.MealPreference)

	// 300km at Rs.2.5/km for two adults.
	assert.Equal(t, 300, quote.DistanceKm)
	assert.Equal(t, 1500.0, booking.Fare)

	reloaded := NewStore(flatfile.NewArchive(directory))
	require.NoError(t, reloaded.Load())

	persisted, err := reloaded.Booking(booking.PNR)
	require.NoError(t, err)
	assert.Equal(t, booking.Passengers, persisted.Passengers)
}

func TestCreateBookingValidation(t *testing.T) {
	dataStore, _ := testStore(t)
	addTestTrain(t, dataStore)

	_, _, err := dataStore.CreateBooking(BookingRequest{
		TrainID: "GHOST", Source: "B", Destination: "D", Date: "15-12-2024",
		Passengers: adultPassengers(),
	})
	assert.ErrorIs(t, err, ErrTrainNotFound)

	_, _, err = dataStore.CreateBooking(BookingRequest{
		TrainID: "EXP101", Source: "B", Destination: "D", Date: "15-13-2024",
		Passengers: adultPassengers(),
	})
	assert.Error(t, err, "month out of range")

	_, _, err = dataStore.CreateBooking(BookingRequest{
		TrainID: "EXP101", Source: "D", Destination: "B", Date: "15-12-2024",
		Passengers: adultPassengers(),
	})
	assert.ErrorIs(t, err, railway.ErrWrongDirection)

	_, _, err = dataStore.CreateBooking(BookingRequest{
		TrainID: "EXP101", Source: "B", Destination: "Z", Date: "15-12-2024",
		Passengers: adultPassengers(),
	})
	assert.ErrorIs(t, err, railway.ErrStationNotServed)

	_, _, err = dataStore.CreateBooking(BookingRequest{
		TrainID: "EXP101", Source: "B", Destination: "D", Date: "15-12-2024",
	})
	assert.Error(t, err, "no passengers")

	tooMany := make([]railway.Passenger, 7)
	for i := range tooMany {
		tooMany[i] = railway.Passenger{Name: "P", Age: 30}
	}
	_, _, err = dataStore.CreateBooking(BookingRequest{
		TrainID: "EXP101", Source: "B", Destination: "D", Date: "15-12-2024",
		Passengers: tooMany,
	})
	assert.Error(t, err, "too many passengers")

	_, _, err = dataStore.CreateBooking(BookingRequest{
		TrainID: "EXP101", Source: "B", Destination: "D", Date: "15-12-2024",
		Passengers: []railway.Passenger{{Name: "Ghost", Age: 0}},
	})
	assert.Error(t, err, "invalid age")
}

func TestCreateBookingAppliesDiscounts(t *testing.T) {
	dataStore, _ := testStore(t)
	addTestTrain(t, dataStore)

	booking, quote, err := dataStore.CreateBooking(BookingRequest{
		TrainID:     "EXP101",
		Source:      "A",
		Destination: "D",
		Date:        "15-12-2024",
		Passengers: []railway.Passenger{
			{Name: "Dev", Age: 8, Gender: "M", Contact: "1"},
		},
	})
	require.NoError(t, err)

	// 400km x 2.5 halved for a child.
	assert.Equal(t, 1000.0, quote.Base)
	assert.Equal(t, 500.0, booking.Fare)
	assert.Equal(t, 1, quote.Children)
}

func TestOrderCateringUpdatesBooking(t *testing.T) {
	dataStore, directory := testStore(t)
	addTestTrain(t, dataStore)

	booking, _, err := dataStore.CreateBooking(BookingRequest{
		TrainID: "EXP101", Source: "A", Destination: "D", Date: "15-12-2024",
		Passengers: adultPassengers(),
	})
	require.NoError(t, err)

	order, err := dataStore.OrderCatering(booking.PNR, "VEG001", 2)
	require.NoError(t, err)
	assert.Equal(t, 240.0, order.Total)
	assert.Equal(t, "Veg (2x Vegetable Thali)", booking.MealPreference)

	_, err = dataStore.OrderCatering(booking.PNR, "BEV002", 1)
	require.NoError(t, err)
	assert.Equal(t, "Veg (2x Vegetable Thali), Beverage (1x Tea)", booking.MealPreference)

	reloaded := NewStore(flatfile.NewArchive(directory))
	require.NoError(t, reloaded.Load())
	persisted, err := reloaded.Booking(booking.PNR)
	require.NoError(t, err)
	assert.Equal(t, booking.MealPreference, persisted.MealPreference)

	_, err = dataStore.OrderCatering("00000000000000", "VEG001", 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMealAvailability(t *testing.T) {
	dataStore, _ := testStore(t)

	assert.Equal(t, 180, dataStore.MealAvailability(railway.CateringCategoryVeg))

	_, _, err := dataStore.AdjustInventory("VEG001", -50)
	require.NoError(t, err)
	assert.Equal(t, 130, dataStore.MealAvailability(railway.CateringCategoryVeg))

	dataStore.ResetCatering()
	assert.Equal(t, 180, dataStore.MealAvailability(railway.CateringCategoryVeg))
}

func TestAlternativeRoutesSortedByFare(t *testing.T) {
	dataStore, _ := testStore(t)
	addTestTrain(t, dataStore)

	// A pricier train over the same pair of stations.
	express, err := railway.NewTrain("EXP202", "Premium Mail", "A", "D", 300, 4.0)
	require.NoError(t, err)
	require.NoError(t, express.SetTotalDistance(380))
	require.NoError(t, dataStore.AddTrain(express))

	// A train that does not serve the pair at all.
	other, err := railway.NewTrain("EXP303", "Branch Line", "X", "Y", 200, 1.5)
	require.NoError(t, err)
	require.NoError(t, other.SetTotalDistance(120))
	require.NoError(t, dataStore.AddTrain(other))

	alternatives := dataStore.AlternativeRoutes("A", "D")
	require.Len(t, alternatives, 2)

	assert.Equal(t, "EXP101", alternatives[0].Train.ID)
	assert.Equal(t, 1000.0, alternatives[0].Fare)
	assert.Equal(t, "EXP202", alternatives[1].Train.ID)
	assert.Equal(t, 1520.0, alternatives[1].Fare)

	assert.Empty(t, dataStore.AlternativeRoutes("D", "A"), "reversed direction has no routes")
}

func TestLoadSkipsInvalidTrains(t *testing.T) {
	directory := t.TempDir()

	// The second record's distances are not increasing.
	contents := "EXP101|Good|A|D|500|2.5|06:15|14:40|3|B|100|C|250|D|400\n" +
		"EXP102|Bad|A|D|500|2.5|06:15|14:40|3|B|250|C|100|D|400\n"
	require.NoError(t, os.WriteFile(filepath.Join(directory, flatfile.TrainsFile), []byte(contents), 0644))

	dataStore := NewStore(flatfile.NewArchive(directory))
	require.NoError(t, dataStore.Load())

	assert.Len(t, dataStore.Trains(), 1)
	_, err := dataStore.Train("EXP102")
	assert.ErrorIs(t, err, ErrTrainNotFound)
}

func TestStats(t *testing.T) {
	dataStore, _ := testStore(t)
	addTestTrain(t, dataStore)

	stats := dataStore.Stats()
	assert.Equal(t, 1, stats.Trains)
	assert.Equal(t, 0, stats.Bookings)
	assert.Equal(t, 10, stats.CateringItems)
}
