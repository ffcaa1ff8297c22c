package railway

import (
	"fmt"
	"strconv"
)

const (
	MinTravelYear = 2024
	MaxTravelYear = 2030
)

// ParseTravelDate splits a DD-MM-YYYY string into its components. Only the
// shape is checked here; range checking is ValidateTravelDate's job.
func ParseTravelDate(date string) (day int, month int, year int, err error) {
	if len(date) != 10 || date[2] != '-' || date[5] != '-' {
		return 0, 0, 0, fmt.Errorf("date %q is not in DD-MM-YYYY form", date)
	}

	day, err = strconv.Atoi(date[0:2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date %q has a non-numeric day", date)
	}
	month, err = strconv.Atoi(date[3:5])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date %q has a non-numeric month", date)
	}
	year, err = strconv.Atoi(date[6:10])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date %q has a non-numeric year", date)
	}

	return day, month, year, nil
}

// ValidateTravelDate checks a travel date is well formed and within the
// supported booking window.
func ValidateTravelDate(date string) error {
	day, month, year, err := ParseTravelDate(date)
	if err != nil {
		return err
	}

	if day < 1 || day > 31 {
		return fmt.Errorf("day %d is out of range", day)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d is out of range", month)
	}
	if year < MinTravelYear || year > MaxTravelYear {
		return fmt.Errorf("year %d must be between %d and %d", year, MinTravelYear, MaxTravelYear)
	}

	return nil
}
