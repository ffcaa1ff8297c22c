// Package catering tracks the onboard pantry: a fixed catalog of items and
// their remaining stock.
package catering

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/railbook/railbook/pkg/railway"
)

//go:embed catalog.yaml
var catalogYaml []byte

var (
	ErrUnknownItem       = errors.New("unknown catering item")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Ledger owns the catalog. Each item's stock count lives on the item
// itself; lookups by id and iteration in seed order both see the same
// value.
type Ledger struct {
	items []*railway.CateringItem
	byID  map[string]*railway.CateringItem

	seed []*railway.CateringItem
}

func NewLedger() *Ledger {
	seed := decodeCatalog()

	ledger := &Ledger{seed: seed}
	ledger.Reset()

	return ledger
}

func decodeCatalog() []*railway.CateringItem {
	var items []*railway.CateringItem

	decoder := yaml.NewDecoder(bytes.NewReader(catalogYaml))
	if err := decoder.Decode(&items); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded catering catalog")
	}

	return items
}

// Reset discards all mutations and restores the seed catalog and stock.
func (l *Ledger) Reset() {
	var items []*railway.CateringItem
	if err := copier.CopyWithOption(&items, l.seed, copier.Option{DeepCopy: true}); err != nil {
		log.Fatal().Err(err).Msg("Failed to copy catering seed catalog")
	}

	l.items = items
	l.byID = map[string]*railway.CateringItem{}
	for _, item := range items {
		l.byID[item.ID] = item
	}
}

// Items returns the catalog in seed order. Callers must not mutate stock
// directly; that is what Order and Adjust are for.
func (l *Ledger) Items() []*railway.CateringItem {
	return l.items
}

func (l *Ledger) Item(id string) (*railway.CateringItem, bool) {
	item, ok := l.byID[id]
	return item, ok
}

type Order struct {
	Item     railway.CateringItem `groups:"basic"`
	Quantity int                  `groups:"basic"`
	Total    float64              `groups:"basic"`

	// Descriptor is the human-readable summary appended to a booking's
	// meal preference, e.g. "Veg (2x Vegetable Thali)".
	Descriptor string `groups:"basic"`
}

// Order debits stock for a confirmed purchase. Stock is untouched when the
// item is unknown, the quantity is not positive, or the quantity exceeds
// what is left.
func (l *Ledger) Order(itemID string, quantity int) (*Order, error) {
	item, ok := l.byID[itemID]
	if !ok {
		return nil, fmt.Errorf("%q: %w", itemID, ErrUnknownItem)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if quantity > item.Stock {
		return nil, fmt.Errorf("%d of %q requested with %d in stock: %w", quantity, itemID, item.Stock, ErrInsufficientStock)
	}

	item.Stock -= quantity

	return &Order{
		Item:       *item,
		Quantity:   quantity,
		Total:      item.Price * float64(quantity),
		Descriptor: fmt.Sprintf("%s (%dx %s)", item.Category, quantity, item.Name),
	}, nil
}

// Adjust applies a manual stock correction. A delta that would take stock
// negative clamps to zero, reported through the clamped flag rather than
// an error.
func (l *Ledger) Adjust(itemID string, delta int) (newStock int, clamped bool, err error) {
	item, ok := l.byID[itemID]
	if !ok {
		return 0, false, fmt.Errorf("%q: %w", itemID, ErrUnknownItem)
	}

	newStock = item.Stock + delta
	if newStock < 0 {
		newStock = 0
		clamped = true
	}

	item.Stock = newStock

	return newStock, clamped, nil
}

// AvailableInCategory totals the remaining stock across all items of one
// category, for the pre-booking availability check.
func (l *Ledger) AvailableInCategory(category railway.CateringCategory) int {
	total := 0
	for _, item := range l.items {
		if item.Category == category {
			total += item.Stock
		}
	}

	return total
}
