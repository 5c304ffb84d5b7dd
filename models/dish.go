package models

// Dish is a menu item ("plato") with its nutritional and pricing attributes.
// Ingredients are attached through the ingrediente_plato link table and are
// not part of the base row.
type Dish struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Image       string  `json:"imagen"`
	Calories    int     `json:"calorias"`
	Price       float64 `json:"precio"`
}

// TableName returns the name of the database table
// associated with the Dish model.
func (d Dish) TableName() string {
	return "plato"
}

// NewDish is the payload for dish creation: the dish attributes plus the
// full ingredient list. Ingredients are processed sequentially in payload
// order inside a single transaction.
type NewDish struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Image       string          `json:"imagen"`
	Calories    int             `json:"calorias"`
	Price       float64         `json:"precio"`
	Ingredients []NewIngredient `json:"ingredientes"`
}

// DishUpdate describes a partial update of a dish. Nil pointer fields are
// absent from the request; the repository builds a SET clause only from the
// present ones and rejects an all-nil update.
type DishUpdate struct {
	Name        *string  `json:"nombre"`
	Description *string  `json:"descripcion"`
	Image       *string  `json:"imagen"`
	Calories    *int     `json:"calorias"`
	Price       *float64 `json:"precio"`
}

// Empty reports whether the update carries no fields to apply.
func (d DishUpdate) Empty() bool {
	return d.Name == nil && d.Description == nil && d.Image == nil &&
		d.Calories == nil && d.Price == nil
}

// DishWithIngredients is the response shape of a single-dish lookup: the
// dish row plus the joined ingredient list.
type DishWithIngredients struct {
	Dish
	Ingredients []DishIngredient `json:"ingredientes"`
}
