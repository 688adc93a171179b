package entities

// Role is the combat role of an account. The DM role is global, not per fight.
type Role string

// Roles
const (
	RoleDM     Role = "dm"
	RolePlayer Role = "player"
)

// Account is a user of the tracker
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// IsDM reports whether the account may start/finish fights and manage enemies
func (a *Account) IsDM() bool {
	return a != nil && a.Role == RoleDM
}
