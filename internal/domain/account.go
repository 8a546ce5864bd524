package domain

import "time"

type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
