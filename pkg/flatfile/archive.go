package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/railbook/railbook/pkg/railway"
)

const (
	TrainsFile   = "trains.dat"
	BookingsFile = "bookings.dat"
)

// Archive persists the full train and booking sets under one directory.
// Every save is a complete overwrite; there is no append log.
type Archive struct {
	Directory string
}

func NewArchive(directory string) *Archive {
	return &Archive{Directory: directory}
}

func (a *Archive) trainsPath() string {
	return filepath.Join(a.Directory, TrainsFile)
}

func (a *Archive) bookingsPath() string {
	return filepath.Join(a.Directory, BookingsFile)
}

func (a *Archive) SaveTrains(trains []*railway.Train) error {
	lines := make([]string, 0, len(trains))
	for _, train := range trains {
		lines = append(lines, MarshalTrain(train))
	}

	return writeRecords(a.trainsPath(), lines)
}

func (a *Archive) SaveBookings(bookings []*railway.Booking) error {
	lines := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		lines = append(lines, MarshalBooking(booking))
	}

	return writeRecords(a.bookingsPath(), lines)
}

// LoadTrains reads the trains file. A missing file is an empty data set,
// and malformed records are skipped with a warning rather than failing
// the load.
func (a *Archive) LoadTrains() ([]*railway.Train, error) {
	var trains []*railway.Train

	err := readRecords(a.trainsPath(), func(lineNumber int, line string) {
		train, err := UnmarshalTrain(line)
		if err != nil {
			log.Warn().Err(err).Str("file", TrainsFile).Int("line", lineNumber).Msg("Skipping malformed train record")
			return
		}

		trains = append(trains, train)
	})
	if err != nil {
		return nil, err
	}

	return trains, nil
}

func (a *Archive) LoadBookings() ([]*railway.Booking, error) {
	var bookings []*railway.Booking

	err := readRecords(a.bookingsPath(), func(lineNumber int, line string) {
		booking, err := UnmarshalBooking(line)
		if err != nil {
			log.Warn().Err(err).Str("file", BookingsFile).Int("line", lineNumber).Msg("Skipping malformed booking record")
			return
		}

		bookings = append(bookings, booking)
	})
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func writeRecords(path string, lines []string) error {
	contents := ""
	if len(lines) > 0 {
		contents = strings.Join(lines, "\n") + "\n"
	}

	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func readRecords(path string, handle func(lineNumber int, line string)) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		handle(lineNumber, line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	return nil
}
