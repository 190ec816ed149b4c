package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the root of every ownership chain. A user owns projects; everything
// else is reachable from a project.
type User struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
