package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario de la aplicación (auth de demostración).
type User struct {
	ID           string
	LoginID      string // identificador único de login
	Email        string
	PasswordHash string
	Name         string
	AvatarURL    string
	Role         string // RoleAdmin | RoleUser
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
