package console

import (
	"strings"

	"github.com/railbook/railbook/pkg/railway"
)

// adminMenu loops over administrator actions. It reports false only when
// input is exhausted.
func (c *Console) adminMenu() bool {
	for {
		c.printf("\n=== ADMIN MENU ===\n")
		c.printf("1. Add New Train\n")
		c.printf("2. View All Trains\n")
		c.printf("3. Update Catering Inventory\n")
		c.printf("4. View All Bookings\n")
		c.printf("5. Reset Catering Menu\n")
		c.printf("6. View System Stats\n")
		c.printf("7. Back to Main Menu\n")

		choice, ok := c.promptInt("Choice: ", 1, 7)
		if !ok {
			return false
		}

		switch choice {
		case 1:
			if !c.addTrain() {
				return false
			}
		case 2:
			c.viewTrains()
		case 3:
			if !c.updateInventory() {
				return false
			}
		case 4:
			c.viewBookings()
		case 5:
			c.store.ResetCatering()
			c.printf("Catering menu reset to default.\n")
		case 6:
			stats := c.store.Stats()
			c.printf("\n=== SYSTEM STATISTICS ===\n")
			c.printf("Trains in system: %d\n", stats.Trains)
			c.printf("Total bookings: %d\n", stats.Bookings)
			c.printf("Catering items: %d\n", stats.CateringItems)
			c.printf("Data files: trains.dat, bookings.dat\n")
		case 7:
			return true
		}
	}
}

func (c *Console) addTrain() bool {
	c.printf("\n=== ADD NEW TRAIN ===\n")

	id, ok := c.promptNonEmpty("Enter Train ID: ")
	if !ok {
		return false
	}
	if _, err := c.store.Train(id); err == nil {
		c.printf("A train with ID %s already exists!\n", id)
		return true
	}

	name, ok := c.promptNonEmpty("Enter Train Name: ")
	if !ok {
		return false
	}
	source, ok := c.promptNonEmpty("Enter Source Station: ")
	if !ok {
		return false
	}
	destination, ok := c.promptNonEmpty("Enter Destination: ")
	if !ok {
		return false
	}

	seats, ok := c.promptInt("Enter Total Seats: ", railway.MinSeats, railway.MaxSeats)
	if !ok {
		return false
	}
	farePerKm, ok := c.promptFloat("Enter Fare per KM (typical: 1.5 to 4.0): Rs.", 0, railway.MaxFarePerKm)
	if !ok {
		return false
	}

	train, err := railway.NewTrain(id, name, source, destination, seats, farePerKm)
	if err != nil {
		c.printf("Error: %s\n", err)
		return true
	}

	c.printf("\nAdd intermediate stations (type 'done' to finish):\n")
	for {
		station, ok := c.promptLine("Station name (or 'done' to finish): ")
		if !ok {
			return false
		}
		if strings.EqualFold(station, "done") {
			c.printf("Finished adding stations. Total stations added: %d\n", len(train.Stations))
			break
		}
		if err := train.CanAddStop(station); err != nil {
			c.printf("Error: %s\n", err)
			continue
		}

		for {
			distance, ok := c.promptInt("Distance from "+source+" (km): ", 1, railway.MaxStopDistance)
			if !ok {
				return false
			}

			if err := train.AddStop(station, distance); err != nil {
				c.printf("Error: %s\n", err)
				continue
			}

			c.printf("Station %q added at %dkm from source.\n", station, distance)
			break
		}
	}

	for {
		total, ok := c.promptInt("Total route distance to "+destination+" (km): ", 1, railway.MaxStopDistance)
		if !ok {
			return false
		}
		if err := train.SetTotalDistance(total); err != nil {
			c.printf("Error: %s\n", err)
			continue
		}
		break
	}

	if train.DepartureTime, ok = c.promptNonEmpty("Enter Departure Time (HH:MM, 24-hour format): "); !ok {
		return false
	}
	if train.ArrivalTime, ok = c.promptNonEmpty("Enter Arrival Time (HH:MM, 24-hour format): "); !ok {
		return false
	}

	if err := c.store.AddTrain(train); err != nil {
		c.printf("Error: %s\n", err)
		return true
	}

	c.printf("\nTrain added successfully!\n")
	c.printf("Train ID: %s\n", train.ID)
	c.printf("Train Name: %s\n", train.Name)
	c.printf("Route: %s\n", train.RouteDescription())
	c.printf("Total distance: %d km\n", train.TotalDistanceKm)
	c.printf("Total Seats: %d\n", train.TotalSeats)
	c.printf("Departure: %s\n", train.DepartureTime)
	c.printf("Arrival: %s\n", train.ArrivalTime)
	c.printf("Fare per KM: Rs.%.2f\n", train.FarePerKm)
	c.printf("Approx full journey fare: Rs.%.2f\n", float64(train.TotalDistanceKm)*train.FarePerKm)

	return true
}

func (c *Console) viewTrains() {
	c.printf("\n=== ALL TRAINS ===\n")

	trains := c.store.Trains()
	if len(trains) == 0 {
		c.printf("No trains available.\n")
		return
	}

	c.printf("%-10s %-20s %-15s %-15s %-8s %-8s\n", "Train ID", "Name", "Source", "Destination", "Seats", "Fare/KM")
	c.printf("%s\n", strings.Repeat("-", 80))
	for _, train := range trains {
		c.printf("%-10s %-20s %-15s %-15s %-8d %-8.2f\n",
			train.ID, train.Name, train.Source, train.Destination, train.TotalSeats, train.FarePerKm)
	}
}

func (c *Console) viewBookings() {
	c.printf("\n=== ALL BOOKINGS ===\n")

	bookings := c.store.Bookings()
	if len(bookings) == 0 {
		c.printf("No bookings yet.\n")
		return
	}

	c.printf("%-16s %-10s %-25s %-10s %-12s\n", "PNR", "Train ID", "Route", "Passengers", "Fare")
	c.printf("%s\n", strings.Repeat("-", 78))
	for _, booking := range bookings {
		route := booking.Source + "-" + booking.Destination
		c.printf("%-16s %-10s %-25s %-10d Rs.%-10.2f\n",
			booking.PNR, booking.TrainID, route, len(booking.Passengers), booking.Fare)
	}
	c.printf("\nTotal bookings: %d\n", len(bookings))
}

func (c *Console) updateInventory() bool {
	c.printf("\n=== UPDATE CATERING INVENTORY ===\n")
	c.viewCateringMenu()

	itemID, ok := c.promptNonEmpty("\nEnter Item ID to update: ")
	if !ok {
		return false
	}

	item, found := c.store.Catering().Item(itemID)
	if !found {
		c.printf("Invalid Item ID!\n")
		return true
	}

	c.printf("Current quantity: %d\n", item.Stock)

	delta, ok := c.promptInt("Enter quantity to add (use negative to remove): ", -railway.MaxSeats, railway.MaxSeats)
	if !ok {
		return false
	}

	newStock, clamped, err := c.store.AdjustInventory(itemID, delta)
	if err != nil {
		c.printf("Error: %s\n", err)
		return true
	}
	if clamped {
		c.printf("Warning: Quantity cannot be negative! Setting to 0.\n")
	}

	c.printf("\nInventory updated successfully!\n")
	c.printf("Item: %s\n", item.Name)
	c.printf("New quantity: %d\n", newStock)

	return true
}
