// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// CreateWithBalance creates the goal and its backing system balance in a
	// single atomic commit: either both rows persist or neither does.
	CreateWithBalance(ctx context.Context, goal *entity.Goal, backing *entity.Balance) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the database. The backing system balance
	// and its transactions are left in place.
	Delete(ctx context.Context, id uuid.UUID) error
}
