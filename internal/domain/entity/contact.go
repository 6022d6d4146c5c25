package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message submitted through the public contact form.
// Only IsRead changes after creation.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
