package models

// Ingredient is a named component of a dish, classified by an ingredient
// type. Rows are created only as a side effect of dish creation and removed
// by the sweep that runs after dish deletion.
type Ingredient struct {
	ID     int64  `json:"id"`
	Name   string `json:"nombre"`
	TypeID int64  `json:"tipo_ingrediente_id"`
}

// TableName returns the name of the database table
// associated with the Ingredient model.
func (i Ingredient) TableName() string {
	return "ingrediente"
}

// IngredientType is a unique classification label for ingredients
// ("tipo_ingrediente"). Types are upserted on first use and never deleted,
// so orphan types persist by design of the data model.
type IngredientType struct {
	ID   int64  `json:"id"`
	Type string `json:"tipo"`
}

// NewIngredient is the per-ingredient element of a dish-creation payload:
// the ingredient name and its type label.
type NewIngredient struct {
	Name string `json:"nombre"`
	Type string `json:"tipo"`
}

// DishIngredient is one row of the joined ingredient list returned with a
// single-dish lookup: the link plus the ingredient name and type label.
type DishIngredient struct {
	DishID       int64  `json:"plato_id"`
	IngredientID int64  `json:"ingrediente_id"`
	Name         string `json:"nombre"`
	Type         string `json:"tipo"`
}
