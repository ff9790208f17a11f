// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
	"github.com/cash-organizer/backend/internal/integration/persistence/model"
)

// balanceRepository implements the adapter.BalanceRepository interface.
type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new balance repository instance.
func NewBalanceRepository(db *gorm.DB) adapter.BalanceRepository {
	return &balanceRepository{
		db: db,
	}
}

// Create creates a new balance in the database.
func (r *balanceRepository) Create(ctx context.Context, balance *entity.Balance) error {
	balanceModel := model.BalanceFromEntity(balance)
	result := r.db.WithContext(ctx).Create(balanceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a balance by its ID, system balances included.
func (r *balanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Balance, error) {
	var balanceModel model.BalanceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBalanceNotFound
		}
		return nil, result.Error
	}
	return balanceModel.ToEntity(), nil
}

// FindVisibleByUser retrieves all non-system balances for a given user,
// optionally filtered by currency code.
func (r *balanceRepository) FindVisibleByUser(ctx context.Context, userID uuid.UUID, currency string) ([]*entity.Balance, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND system = ?", userID, false).
		Order("created_at ASC")

	if currency != "" {
		query = query.Where("currency = ?", currency)
	}

	var balanceModels []model.BalanceModel
	result := query.Find(&balanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	balances := make([]*entity.Balance, 0, len(balanceModels))
	for i := range balanceModels {
		balances = append(balances, balanceModels[i].ToEntity())
	}
	return balances, nil
}

// Update updates an existing balance in the database.
func (r *balanceRepository) Update(ctx context.Context, balance *entity.Balance) error {
	balanceModel := model.BalanceFromEntity(balance)
	result := r.db.WithContext(ctx).Save(balanceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteWithTransactions removes a balance and every transaction recorded
// against it in a single commit.
func (r *balanceRepository) DeleteWithTransactions(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("balance_id = ?", id).Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.BalanceModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		return nil
	})
}
