package railway

type CateringCategory string

const (
	CateringCategoryVeg      CateringCategory = "Veg"
	CateringCategoryNonVeg   CateringCategory = "Non-Veg"
	CateringCategoryBeverage CateringCategory = "Beverage"
	CateringCategorySnack    CateringCategory = "Snack"
)

// CateringItem is an orderable pantry item. Stock is the single owned
// count; there is deliberately no second id->quantity ledger to drift
// out of sync with it.
type CateringItem struct {
	ID       string           `groups:"basic" yaml:"id"`
	Name     string           `groups:"basic" yaml:"name"`
	Category CateringCategory `groups:"basic" yaml:"category"`
	Price    float64          `groups:"basic" yaml:"price"`
	Stock    int              `groups:"basic" yaml:"stock"`
}
