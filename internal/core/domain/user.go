package domain

// User models a food-planner account together with its personal menu.
//
// Roles holds snapshot copies of Role documents taken at seed time; nothing
// keeps them in step with the Roles collection afterwards.
type User struct {
	ID           string     `json:"id" validate:"required,len=24,hexadecimal"`
	Username     string     `json:"username" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	PasswordHash string     `json:"-" validate:"required"`
	Roles        []Role     `json:"roles" validate:"required,min=1,dive"`
	Menu         []MenuItem `json:"menu" validate:"dive"`
}

// MenuIDs returns the menu item ids in menu order.
func (u *User) MenuIDs() []string {
	ids := make([]string, 0, len(u.Menu))
	for _, m := range u.Menu {
		ids = append(ids, m.ID)
	}
	return ids
}
