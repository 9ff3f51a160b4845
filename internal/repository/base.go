package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/constants"
	"kentkonut/internal/types"
	"kentkonut/pkg/database"
)

// dbtx is satisfied by both *sqlx.DB and *sqlx.Tx
type dbtx interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// baseRepository holds the pool and an optional transaction
type baseRepository struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func (r baseRepository) conn() dbtx {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// BeginTx starts a transaction on the pool
func (r baseRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

// InTx runs fn in a new transaction on the pool
func (r baseRepository) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return RunInTx(ctx, r.db, fn)
}

// RunInTx runs fn inside a transaction, committing on success and rolling back on error or panic
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// translate maps driver errors to domain errors
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %s", constants.ErrNotFound, what)
	case database.IsDuplicateKey(err):
		return fmt.Errorf("%w: %s", constants.ErrConflict, what)
	default:
		return err
	}
}

func (r baseRepository) insert(ctx context.Context, what, query string, arg interface{}) (int64, error) {
	res, err := r.conn().NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, translate(err, what)
	}
	return res.LastInsertId()
}

// execOne runs a named statement that must touch exactly one row
func (r baseRepository) execOne(ctx context.Context, what, query string, arg interface{}) error {
	res, err := r.conn().NamedExecContext(ctx, query, arg)
	if err != nil {
		return translate(err, what)
	}
	return expectOne(res, what)
}

func (r baseRepository) deleteByID(ctx context.Context, table, what string, id int64) error {
	res, err := r.conn().ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return translate(err, what)
	}
	return expectOne(res, what)
}

func (r baseRepository) getByID(ctx context.Context, dest interface{}, table, what string, id int64) error {
	return translate(r.conn().GetContext(ctx, dest, "SELECT * FROM "+table+" WHERE id = ?", id), what)
}

// slugTaken reports whether slug is used by a row other than excludeID
func (r baseRepository) slugTaken(ctx context.Context, table, slug string, excludeID int64) (bool, error) {
	var n int
	err := r.conn().GetContext(ctx, &n, "SELECT COUNT(*) FROM "+table+" WHERE slug = ? AND id <> ?", slug, excludeID)
	return n > 0, err
}

// reorder applies display_order values in one transaction
func (r baseRepository) reorder(ctx context.Context, table, what string, items []types.ReorderItem) error {
	apply := func(tx *sqlx.Tx) error {
		for _, it := range items {
			res, err := tx.ExecContext(ctx,
				"UPDATE "+table+" SET display_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", it.Order, it.ID)
			if err != nil {
				return err
			}
			if err := expectOne(res, fmt.Sprintf("%s %d", what, it.ID)); err != nil {
				return err
			}
		}
		return nil
	}
	if r.tx != nil {
		return apply(r.tx)
	}
	return RunInTx(ctx, r.db, apply)
}

func expectOne(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", constants.ErrNotFound, what)
	}
	return nil
}

func likePattern(q string) string {
	return "%" + q + "%"
}
