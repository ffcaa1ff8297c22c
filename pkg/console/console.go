// Package console is the interactive text front end: menus that collect
// validated field values and hand them to the reservation store.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/railbook/railbook/pkg/risk"
	"github.com/railbook/railbook/pkg/store"
)

type Console struct {
	store *store.Store
	risk  *risk.Estimator

	input  *bufio.Scanner
	output io.Writer
}

func New(dataStore *store.Store, estimator *risk.Estimator, input io.Reader, output io.Writer) *Console {
	return &Console{
		store:  dataStore,
		risk:   estimator,
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// Run drives the main menu until the user exits or input ends.
func (c *Console) Run() error {
	c.printf("=======================================\n")
	c.printf("   RAILWAY TICKET MANAGEMENT SYSTEM\n")
	c.printf("=======================================\n")

	stats := c.store.Stats()
	c.printf("Trains loaded: %d\n", stats.Trains)
	c.printf("Bookings loaded: %d\n", stats.Bookings)
	c.printf("Catering items: %d\n", stats.CateringItems)

	for {
		c.printf("\n=== MAIN MENU ===\n")
		c.printf("1. Admin Menu\n")
		c.printf("2. Passenger Portal\n")
		c.printf("3. View System Info\n")
		c.printf("4. Exit\n")

		choice, ok := c.promptInt("Choice: ", 1, 4)
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			if !c.adminMenu() {
				return nil
			}
		case 2:
			if !c.passengerMenu() {
				return nil
			}
		case 3:
			c.systemInfo()
		case 4:
			c.printf("\nThank you for using Railway Ticket System!\n")
			return nil
		}
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.output, format, args...)
}

// readLine returns the next input line, or false once input is exhausted.
func (c *Console) readLine() (string, bool) {
	if !c.input.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.input.Text()), true
}

func (c *Console) promptLine(label string) (string, bool) {
	c.printf("%s", label)
	return c.readLine()
}

func (c *Console) promptNonEmpty(label string) (string, bool) {
	for {
		value, ok := c.promptLine(label)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		c.printf("Value cannot be empty!\n")
	}
}

// promptInt keeps asking until it gets an integer within [min, max].
func (c *Console) promptInt(label string, min int, max int) (int, bool) {
	for {
		value, ok := c.promptLine(label)
		if !ok {
			return 0, false
		}

		number, err := strconv.Atoi(value)
		if err != nil {
			c.printf("Invalid number! Please enter a valid integer.\n")
			continue
		}
		if number < min || number > max {
			c.printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}

		return number, true
	}
}

func (c *Console) promptFloat(label string, min float64, max float64) (float64, bool) {
	for {
		value, ok := c.promptLine(label)
		if !ok {
			return 0, false
		}

		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			c.printf("Invalid number! Please enter a valid decimal.\n")
			continue
		}
		if number <= min || number > max {
			c.printf("Please enter a value greater than %g and at most %g.\n", min, max)
			continue
		}

		return number, true
	}
}

func (c *Console) promptYes(label string) (bool, bool) {
	answer, ok := c.promptLine(label)
	if !ok {
		return false, false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", true
}

func (c *Console) systemInfo() {
	stats := c.store.Stats()

	c.printf("\n=== SYSTEM INFORMATION ===\n")
	c.printf("Railway Ticket Management System\n")
	c.printf("Features:\n")
	c.printf("1. Admin train management\n")
	c.printf("2. Passenger ticket booking with unique PNR\n")
	c.printf("3. Cheaper route suggestions\n")
	c.printf("4. Meal preferences & catering service\n")
	c.printf("5. Cancellation probability prediction\n")
	c.printf("6. Catering inventory management\n")
	c.printf("7. File-based data persistence\n")
	c.printf("\nCurrent stats:\n")
	c.printf("- Trains: %d\n", stats.Trains)
	c.printf("- Bookings: %d\n", stats.Bookings)
	c.printf("- Catering items: %d\n", stats.CateringItems)
}
