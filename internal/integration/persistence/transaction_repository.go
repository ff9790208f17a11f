// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
	"github.com/cash-organizer/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreatePair inserts a debit and a credit transaction in a single commit.
func (r *transactionRepository) CreatePair(ctx context.Context, debit, credit *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(debit)).Error; err != nil {
			return err
		}
		if err := tx.Create(model.TransactionFromEntity(credit)).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser retrieves all transactions for a given user, most recent first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// FindByBalanceIDs retrieves all transactions recorded against any of the
// given balances, most recent first.
func (r *transactionRepository) FindByBalanceIDs(ctx context.Context, balanceIDs []uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("balance_id IN ?", balanceIDs).
		Order("occurred_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// SumByBalance returns the sum of all transaction amounts recorded against
// the balance. A balance with no transactions sums to exactly zero.
func (r *transactionRepository) SumByBalance(ctx context.Context, balanceID uuid.UUID) (decimal.Decimal, error) {
	return r.sumAmounts(ctx, "balance_id = ?", balanceID)
}

// SumByBudget returns the sum of all transaction amounts tagged with the
// budget; exactly zero when there are none.
func (r *transactionRepository) SumByBudget(ctx context.Context, budgetID uuid.UUID) (decimal.Decimal, error) {
	return r.sumAmounts(ctx, "budget_id = ?", budgetID)
}

// sumAmounts folds the matching amounts in Go with decimal arithmetic.
// SQL SUM over a numeric column runs in float on sqlite, which loses cents.
func (r *transactionRepository) sumAmounts(ctx context.Context, query string, arg any) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where(query, arg).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount)
	}
	return sum, nil
}

func toEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntity())
	}
	return transactions
}
