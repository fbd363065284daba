package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item identified by its SKU.
type Product struct {
	ID         uuid.UUID
	SKU        string
	Name       string
	PriceCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
