package models

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RolePlayer UserRole = "player"
)

// User is one entry of the fixed login roster. The gate is advisory (it
// keeps accidental resets out of the regulars' hands), not a trust boundary.
type User struct {
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
