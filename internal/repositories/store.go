package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
	ErrOptimisticLock = errors.New("optimistic locking conflict")
)

// Store groups the ledger repositories over one gorm handle. Inside
// Transaction every repository shares the same transaction.
type Store struct {
	db       *gorm.DB
	Users    *UserRepository
	Tasks    *TaskRepository
	TaskLogs *TaskLogRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Users:    NewUserRepository(db),
		Tasks:    NewTaskRepository(db),
		TaskLogs: NewTaskLogRepository(db),
	}
}

// Transaction runs fn inside a database transaction. Any error returned by fn
// rolls back every write made through tx.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
