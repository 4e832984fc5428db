package persistence

import (
	"context"

	"gorm.io/gorm"

	appdefense "github.com/thesisdesk/backend/internal/application/defense"
)

// GormTransactionManager runs defense cascades inside one GORM transaction,
// handing the callback repositories bound to that transaction.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// InTransaction runs fn inside a transaction; any error rolls back
func (m *GormTransactionManager) InTransaction(ctx context.Context, fn func(repos appdefense.CascadeRepos) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(appdefense.CascadeRepos{
			Defenses:         NewGormDefenseRepository(tx),
			LecturerDefenses: NewGormLecturerDefenseRepository(tx),
			Plans:            NewGormPlanRepository(tx),
			Groups:           NewGormGroupRepository(tx),
		})
	})
}

var _ appdefense.TransactionManager = (*GormTransactionManager)(nil)
