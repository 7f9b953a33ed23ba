package repository

import (
	"context"
	stderrors "errors"

	"rentdesk/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the GORM-backed entity store for buildings, rooms, users and
// payments. A Store returned inside Transaction is bound to that transaction.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn in a single database transaction. Errors returned by
// fn are passed through; failures to begin or commit become Unavailable.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&Store{db: tx})
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	return translate(err, nil)
}

func (s *Store) withCtx(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// forUpdate adds SELECT ... FOR UPDATE where the dialect has row locks.
func (s *Store) forUpdate(ctx context.Context) *gorm.DB {
	tx := s.withCtx(ctx)
	if s.db.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// translate maps GORM/driver errors to AppErrors. notFound is returned for
// gorm.ErrRecordNotFound; a generic NOT_FOUND is used when it is nil.
func translate(err error, notFound *errors.AppError) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		if notFound != nil {
			return notFound
		}
		return errors.NotFound(errors.ErrCodeNotFound, "record not found")
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return errors.NewAppError(errors.ErrCodeDBDuplicate, "record already exists", err)
	case stderrors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.NewAppError(errors.ErrCodeReferenceViolation, "record references a missing or in-use record", err)
	default:
		return errors.Unavailable("store unavailable", err)
	}
}

// firstOrNil converts ErrRecordNotFound into a nil result.
func firstOrNil(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, translate(err, nil)
}
