package domain

// ExpenseCategory identifies a spending category. The built-in set can be
// extended with custom categories, whose IDs are used as values.
type ExpenseCategory string

const (
	CategoryFood       ExpenseCategory = "food"
	CategoryTransport  ExpenseCategory = "transport"
	CategoryLodging    ExpenseCategory = "lodging"
	CategoryActivities ExpenseCategory = "activities"
	CategoryShopping   ExpenseCategory = "shopping"
	CategoryOther      ExpenseCategory = "other"
)

// DefaultCategories lists the built-in categories.
var DefaultCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryLodging,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// Expense is a single spending record. Amount is stored as a positive
// magnitude.
type Expense struct {
	ID          string          `json:"id"`
	TripID      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Date        string          `json:"date"`
}

// EntityID implements Entity.
func (e Expense) EntityID() string { return e.ID }

// TripKey implements TripScoped.
func (e Expense) TripKey() string { return e.TripID }

// CustomCategory is a user-defined expense category.
type CustomCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// EntityID implements Entity.
func (c CustomCategory) EntityID() string { return c.ID }
