package railway

const StatusConfirmed = "Confirmed"

// NoMealPreference is the zero value for a booking's catering field.
const NoMealPreference = "None"

type Booking struct {
	PNR string `groups:"basic"`

	TrainID     string `groups:"basic"`
	Source      string `groups:"basic"`
	Destination string `groups:"basic"`

	// Travel date in DD-MM-YYYY form.
	Date string `groups:"basic"`

	Passengers []Passenger `groups:"detailed"`

	Status string `groups:"basic"`

	Fare float64 `groups:"basic"`

	// Free-form catering summary. Starts as "None" and accumulates a
	// comma-joined descriptor per catering order.
	MealPreference string `groups:"basic"`
}

type Passenger struct {
	Name    string `groups:"detailed"`
	Age     int    `groups:"detailed"`
	Gender  string `groups:"detailed"`
	Contact string `groups:"detailed"`
}

func NewBooking(trainID string, source string, destination string, date string) *Booking {
	return &Booking{
		TrainID:        trainID,
		Source:         source,
		Destination:    destination,
		Date:           date,
		Status:         StatusConfirmed,
		MealPreference: NoMealPreference,
	}
}

func (b *Booking) HasMealPreference() bool {
	return b.MealPreference != NoMealPreference && b.MealPreference != ""
}

// AppendMeal records a catering order descriptor on the booking,
// replacing "None" or comma-joining onto an existing entry.
func (b *Booking) AppendMeal(descriptor string) {
	if !b.HasMealPreference() {
		b.MealPreference = descriptor
		return
	}

	b.MealPreference = b.MealPreference + ", " + descriptor
}
