package entity

type AdminRole string

const (
	RoleAdmin AdminRole = "admin"
)

type Admin struct {
	Base
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	Role         AdminRole `db:"role"`
}
