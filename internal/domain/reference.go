package domain

import (
	"time"

	"github.com/google/uuid"
)

type Day struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Shift struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}

type Zone struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
