package shopping

const (
	DefaultCategory   = "Other"
	DefaultQuantity   = "1"
	MealCategory      = "Groceries"
	UnknownAuthor     = "Unknown"
	MealPlannerAuthor = "Meal Planner"
)

// Categories are suggestions only; any category text is accepted.
var Categories = []string{"Produce", "Dairy", "Meat", "Pantry", "Frozen", "Household", "Other"}

type ShoppingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  string `json:"quantity"`
	Completed bool   `json:"completed"`
	AddedBy   string `json:"addedBy"`
}

type ItemStatus string

const (
	StatusAny       ItemStatus = ""
	StatusPending   ItemStatus = "pending"
	StatusCompleted ItemStatus = "completed"
)

type ListFilter struct {
	Category string
	Query    string
	Status   ItemStatus
}

type AddItemInput struct {
	Name     string
	Category string
	Quantity string
	AddedBy  string
}

type UpdateItemInput struct {
	ID        string
	Name      *string
	Category  *string
	Quantity  *string
	Completed *bool
}
