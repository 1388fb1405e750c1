package domain

// CourseType classifies a menu item within a meal. Values are stored as
// written; CourseMain is the only one the seed data uses.
type CourseType string

const CourseMain CourseType = "Main"

// Ingredient is a single line of a recipe.
type Ingredient struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Quantity int    `json:"quantity" yaml:"quantity" validate:"gte=0"`
	Unit     string `json:"unit" yaml:"unit" validate:"required"`
}

// MenuItem is a dish on a user's menu.
type MenuItem struct {
	ID                    string       `json:"id" yaml:"id" validate:"required"`
	Name                  string       `json:"name" yaml:"name" validate:"required"`
	Ingredients           []Ingredient `json:"ingredients" yaml:"ingredients" validate:"required,min=1,dive"`
	Categories            []string     `json:"categories" yaml:"categories" validate:"unique,dive,required"`
	CourseType            CourseType   `json:"courseType" yaml:"courseType" validate:"required"`
	PrimarilyCarbohydrate bool         `json:"primarilyCarbohydrate" yaml:"primarilyCarbohydrate"`
	Recipe                string       `json:"recipe" yaml:"recipe"`
}
