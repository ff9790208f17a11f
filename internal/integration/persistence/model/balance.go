// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// BalanceModel represents the balances table in the database.
type BalanceModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                   string    `gorm:"type:varchar(255);not null"`
	Currency               string    `gorm:"type:varchar(3);not null"`
	AnnualIncomePercentage int       `gorm:"not null;default:0"`
	System                 bool      `gorm:"not null;default:false;index"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName returns the table name for the BalanceModel.
func (BalanceModel) TableName() string {
	return "balances"
}

// ToEntity converts a BalanceModel to a domain Balance entity.
func (m *BalanceModel) ToEntity() *entity.Balance {
	return &entity.Balance{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Name:                   m.Name,
		Currency:               m.Currency,
		AnnualIncomePercentage: m.AnnualIncomePercentage,
		System:                 m.System,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// BalanceFromEntity creates a BalanceModel from a domain Balance entity.
func BalanceFromEntity(balance *entity.Balance) *BalanceModel {
	return &BalanceModel{
		ID:                     balance.ID,
		UserID:                 balance.UserID,
		Name:                   balance.Name,
		Currency:               balance.Currency,
		AnnualIncomePercentage: balance.AnnualIncomePercentage,
		System:                 balance.System,
		CreatedAt:              balance.CreatedAt,
		UpdatedAt:              balance.UpdatedAt,
	}
}
