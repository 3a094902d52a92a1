// Package dbx provides the store session helper shared by services: every
// user operation runs inside exactly one GORM transaction that is committed
// on success and discarded otherwise.
package dbx

import (
	"context"

	"gorm.io/gorm"
)

// WithSession begins a transaction, runs fn with the transactional handle,
// and then commits on success or rolls back on error/panic. Panics are
// rethrown.
//
// Typical use:
//
//	err := dbx.WithSession(ctx, db, func(ctx context.Context, tx *gorm.DB) error {
//	    return events.NewRepository(tx).DeleteByID(ctx, id)
//	})
func WithSession(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit().Error
	}()

	err = fn(ctx, tx)
	return err
}
