package domain

import "time"

// Customer is immutable once registered. NationalID is the registry key.
type Customer struct {
	ID         string
	Name       string
	BirthDate  string
	NationalID string
	Address    string
	CreatedAt  time.Time
}
