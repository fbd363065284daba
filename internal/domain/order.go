package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is placed by a user. Status is free-form.
type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Status     string
	TotalCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
