package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a verified back-office user
// The id is the subject issued by the identity service
type Admin struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}
