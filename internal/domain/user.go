package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered customer of the storefront.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
