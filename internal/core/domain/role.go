package domain

// Role names known to the food-planner application.
const (
	RoleUser      = "ROLE_USER"
	RoleAdmin     = "ROLE_ADMIN"
	RoleModerator = "ROLE_MODERATOR"
)

// Role is an authorisation role. IDs are fixed hex ObjectIDs so that other
// documents can hold copies of them.
type Role struct {
	ID   string `json:"id" yaml:"id" validate:"required,len=24,hexadecimal"`
	Name string `json:"name" yaml:"name" validate:"required"`
}
