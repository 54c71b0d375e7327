package entity

import "time"

// User representa una cuenta con acceso al dashboard.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
