package domain

import "time"

type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
