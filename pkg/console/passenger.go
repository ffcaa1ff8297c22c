package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/railbook/railbook/pkg/railway"
	"github.com/railbook/railbook/pkg/store"
)

func (c *Console) passengerMenu() bool {
	for {
		c.printf("\n=== PASSENGER MENU ===\n")
		c.printf("1. Book Ticket\n")
		c.printf("2. View Reservation\n")
		c.printf("3. Suggest Cheaper Routes\n")
		c.printf("4. View Catering Menu\n")
		c.printf("5. Order Catering\n")
		c.printf("6. Check Cancellation Probability\n")
		c.printf("7. Back to Main Menu\n")

		choice, ok := c.promptInt("Choice: ", 1, 7)
		if !ok {
			return false
		}

		switch choice {
		case 1:
			if !c.bookTicket() {
				return false
			}
		case 2:
			if !c.viewReservation() {
				return false
			}
		case 3:
			if !c.cheaperRoutes() {
				return false
			}
		case 4:
			c.viewCateringMenu()
		case 5:
			if !c.orderCatering() {
				return false
			}
		case 6:
			if !c.cancellationPrediction() {
				return false
			}
		case 7:
			return true
		}
	}
}

func (c *Console) bookTicket() bool {
	c.printf("\n=== BOOK TICKET ===\n")

	if len(c.store.Trains()) == 0 {
		c.printf("No trains available! Please ask admin to add trains first.\n")
		return true
	}

	c.viewTrains()

	trainID, ok := c.promptNonEmpty("\nEnter Train ID: ")
	if !ok {
		return false
	}

	train, err := c.store.Train(trainID)
	if err != nil {
		c.printf("Train not found!\n")
		return true
	}

	c.printf("\nAvailable Stations: %s\n", train.RouteDescription())

	source, ok := c.promptNonEmpty("Enter Boarding Station: ")
	if !ok {
		return false
	}
	destination, ok := c.promptNonEmpty("Enter Destination Station: ")
	if !ok {
		return false
	}

	if !train.ServesStation(source) || !train.ServesStation(destination) {
		c.printf("Error: Invalid stations! Please check station names.\n")
		return true
	}
	if source == destination {
		c.printf("Error: Source and destination cannot be same!\n")
		return true
	}

	var travelDate string
	for {
		travelDate, ok = c.promptLine("Enter travel date (DD-MM-YYYY, e.g., 15-12-2024): ")
		if !ok {
			return false
		}
		if err := railway.ValidateTravelDate(travelDate); err != nil {
			c.printf("Invalid date: %s\n", err)
			continue
		}
		break
	}

	passengerCount, ok := c.promptInt("Number of passengers (1-6): ", store.MinPassengersPerBooking, store.MaxPassengersPerBooking)
	if !ok {
		return false
	}

	passengers := make([]railway.Passenger, 0, passengerCount)
	for i := 0; i < passengerCount; i++ {
		c.printf("\nPassenger %d:\n", i+1)

		name, ok := c.promptNonEmpty("Name: ")
		if !ok {
			return false
		}
		age, ok := c.promptInt("Age: ", 1, store.MaxPassengerAge)
		if !ok {
			return false
		}
		gender, ok := c.promptNonEmpty("Gender (M/F/O): ")
		if !ok {
			return false
		}
		contact, ok := c.promptNonEmpty("Contact: ")
		if !ok {
			return false
		}

		passengers = append(passengers, railway.Passenger{Name: name, Age: age, Gender: gender, Contact: contact})
	}

	c.printf("\nSelect meal preference for all passengers:\n")
	c.printf("1. Vegetarian\n2. Non-Vegetarian\n3. None\n")
	mealChoice, ok := c.promptInt("Choice: ", 1, 3)
	if !ok {
		return false
	}

	mealPreference := railway.NoMealPreference
	switch mealChoice {
	case 1:
		mealPreference = string(railway.CateringCategoryVeg)
	case 2:
		mealPreference = string(railway.CateringCategoryNonVeg)
	}

	// The pantry must be able to serve the whole group, otherwise the
	// passenger can drop the preference.
	if mealPreference != railway.NoMealPreference {
		available := c.store.MealAvailability(railway.CateringCategory(mealPreference))
		if available < passengerCount {
			c.printf("\nWarning: Only %d %s meals available in pantry!\n", available, mealPreference)
			proceed, ok := c.promptYes("Do you still want to proceed? (y/n): ")
			if !ok {
				return false
			}
			if !proceed {
				mealPreference = railway.NoMealPreference
			}
		}
	}

	booking, quote, err := c.store.CreateBooking(store.BookingRequest{
		TrainID:        trainID,
		Source:         source,
		Destination:    destination,
		Date:           travelDate,
		Passengers:     passengers,
		MealPreference: mealPreference,
	})
	if err != nil {
		c.printf("Error: %s\n", err)
		return true
	}

	c.printf("\n=== BOOKING CONFIRMED ===\n")
	c.printf("PNR: %s\n", booking.PNR)
	c.printf("Train: %s (%s)\n", train.Name, train.ID)
	c.printf("Route: %s to %s\n", booking.Source, booking.Destination)
	c.printf("Travel Date: %s\n", booking.Date)
	c.printf("Passengers: %d", len(booking.Passengers))
	if quote.Children > 0 {
		c.printf(" (%d children)", quote.Children)
	}
	if quote.Seniors > 0 {
		c.printf(" (%d seniors)", quote.Seniors)
	}
	c.printf("\n")
	c.printf("Distance: %d km\n", quote.DistanceKm)
	c.printf("Fare per km: Rs.%.2f\n", quote.RatePerKm)
	c.printf("Total Fare: Rs.%.2f\n", booking.Fare)
	if quote.Discount > 0 {
		c.printf("Discount applied: Rs.%.2f\n", quote.Discount)
	}
	c.printf("Meal Preference: %s\n", booking.MealPreference)
	c.printf("\nIMPORTANT: Your PNR %s is for travel on %s. Keep it safe!\n", booking.PNR, booking.Date)

	return true
}

func (c *Console) viewReservation() bool {
	c.printf("\n=== VIEW RESERVATIONS ===\n")

	if len(c.store.Bookings()) == 0 {
		c.printf("No reservations found.\n")
		return true
	}

	pnrNumber, ok := c.promptNonEmpty("Enter PNR Number: ")
	if !ok {
		return false
	}

	booking, err := c.store.Booking(pnrNumber)
	if err != nil {
		c.printf("No reservation found with PNR: %s\n", pnrNumber)
		return true
	}

	c.printf("\n=== RESERVATION DETAILS ===\n")
	c.printf("PNR: %s\n", booking.PNR)
	c.printf("Train ID: %s\n", booking.TrainID)
	c.printf("Route: %s to %s\n", booking.Source, booking.Destination)
	c.printf("Travel Date: %s\n", booking.Date)
	c.printf("Fare: Rs.%.2f\n", booking.Fare)
	c.printf("Status: %s\n", booking.Status)
	c.printf("Meal: %s\n", booking.MealPreference)

	c.printf("\nPassengers (%d):\n", len(booking.Passengers))
	for i, passenger := range booking.Passengers {
		c.printf("%d. %s (%d years, %s) - %s\n", i+1, passenger.Name, passenger.Age, passenger.Gender, passenger.Contact)
	}

	return true
}

func (c *Console) cheaperRoutes() bool {
	c.printf("\n=== CHEAPER ALTERNATIVE ROUTES ===\n")

	if len(c.store.Trains()) == 0 {
		c.printf("No trains available.\n")
		return true
	}

	source, ok := c.promptNonEmpty("Enter Source Station: ")
	if !ok {
		return false
	}
	destination, ok := c.promptNonEmpty("Enter Destination Station: ")
	if !ok {
		return false
	}
	if source == destination {
		c.printf("Source and destination cannot be same!\n")
		return true
	}

	alternatives := c.store.AlternativeRoutes(source, destination)
	if len(alternatives) == 0 {
		c.printf("\nNo direct routes found between %s and %s.\n", source, destination)
		c.printf("Try breaking the journey into segments!\n")
		return true
	}

	c.printf("\n=== AVAILABLE ROUTES (Sorted by Fare) ===\n")
	c.printf("%-10s %-20s %-15s %-15s %-10s %-12s\n", "Train ID", "Train Name", "Source", "Destination", "Distance", "Fare")
	c.printf("%s\n", strings.Repeat("-", 85))
	for _, alternative := range alternatives {
		c.printf("%-10s %-20s %-15s %-15s %-10s Rs.%-10.2f\n",
			alternative.Train.ID, alternative.Train.Name, alternative.Train.Source, alternative.Train.Destination,
			fmt.Sprintf("%dkm", alternative.DistanceKm), alternative.Fare)
	}

	if len(alternatives) > 1 {
		cheapest := alternatives[0].Fare
		dearest := alternatives[len(alternatives)-1].Fare
		savings := dearest - cheapest
		if savings > 0 {
			c.printf("\nYou can save up to Rs.%.2f (%.1f%%) by choosing %s!\n",
				savings, savings/dearest*100, alternatives[0].Train.Name)
		}
	}

	return true
}

func (c *Console) viewCateringMenu() {
	c.printf("\n=== CATERING MENU ===\n")

	items := c.store.Catering().Items()

	c.printf("%-10s %-25s %-12s %-10s %-10s\n", "Item ID", "Item Name", "Type", "Price", "Available")
	c.printf("%s\n", strings.Repeat("-", 70))
	for _, item := range items {
		c.printf("%-10s %-25s %-12s Rs.%-7.2f %-10d\n", item.ID, item.Name, item.Category, item.Price, item.Stock)
	}
}

func (c *Console) orderCatering() bool {
	c.printf("\n=== ORDER CATERING ===\n")

	if len(c.store.Bookings()) == 0 {
		c.printf("No bookings found. Please book a ticket first.\n")
		return true
	}

	pnrNumber, ok := c.promptNonEmpty("Enter PNR Number: ")
	if !ok {
		return false
	}

	booking, err := c.store.Booking(pnrNumber)
	if err != nil {
		c.printf("Booking not found!\n")
		return true
	}

	c.printf("Booking found: %s (%s to %s)\n", booking.TrainID, booking.Source, booking.Destination)
	c.viewCateringMenu()

	itemID, ok := c.promptNonEmpty("\nEnter Item ID to order: ")
	if !ok {
		return false
	}

	item, found := c.store.Catering().Item(itemID)
	if !found {
		c.printf("Invalid Item ID!\n")
		return true
	}
	if item.Stock == 0 {
		c.printf("Item %s is out of stock!\n", item.Name)
		return true
	}

	quantity, ok := c.promptInt("Enter Quantity (max "+strconv.Itoa(item.Stock)+"): ", 1, item.Stock)
	if !ok {
		return false
	}

	order, err := c.store.OrderCatering(pnrNumber, itemID, quantity)
	if err != nil {
		c.printf("Error: %s\n", err)
		return true
	}

	c.printf("\nORDER CONFIRMED\n")
	c.printf("================\n")
	c.printf("Item: %s (%s)\n", order.Item.Name, order.Item.Category)
	c.printf("Quantity: %d\n", order.Quantity)
	c.printf("Price per item: Rs.%.2f\n", order.Item.Price)
	c.printf("Total amount: Rs.%.2f\n", order.Total)
	c.printf("Delivery: Will be served during the journey\n")
	c.printf("\nNote: Your meal preference has been updated.\n")

	return true
}

func (c *Console) cancellationPrediction() bool {
	c.printf("\n=== CANCELLATION PREDICTION ===\n")

	if len(c.store.Bookings()) == 0 {
		c.printf("No bookings found.\n")
		return true
	}

	pnrNumber, ok := c.promptNonEmpty("Enter PNR Number: ")
	if !ok {
		return false
	}

	booking, err := c.store.Booking(pnrNumber)
	if err != nil {
		c.printf("Booking not found!\n")
		return true
	}

	score := c.risk.Estimate(booking)

	c.printf("\n=== PREDICTION RESULTS ===\n")
	c.printf("PNR: %s\n", booking.PNR)
	c.printf("Train: %s\n", booking.TrainID)
	c.printf("Passengers: %d\n", len(booking.Passengers))
	c.printf("Total Fare: Rs.%.2f\n", booking.Fare)
	c.printf("Meal Preference: %s\n", booking.MealPreference)
	c.printf("\nCancellation Probability: %.1f%%\n", score.Percent)
	c.printf("Risk Level: %s\n", score.Level)

	c.printf("\nKey Factors Considered:\n")
	c.printf("- Days until travel: %d\n", score.DaysUntilTravel)
	c.printf("- Group size: %d passengers\n", score.GroupSize)
	c.printf("- Fare per passenger: Rs.%.2f\n", score.FarePerPassenger)
	if score.MealSet {
		c.printf("- Meal preference: Set\n")
	} else {
		c.printf("- Meal preference: Not set\n")
	}

	return true
}
