package entity

import "time"

// User representa un usuario de la consola de inventario.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
