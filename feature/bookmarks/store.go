package bookmarks

import (
	"context"
	"fmt"
	"sort"

	"bookmark-sync/feature/bookmarks/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the durable (user, test) -> bookmark mapping.
// Uniqueness of (user_id, test_id) is enforced by the ux_bookmarks_user_test
// index, never by a pre-check, so concurrent callers cannot race into duplicates.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of the shared connection pool.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn with a store bound to one transaction.
// The transaction commits when fn returns nil and rolls back on error, panic
// or cancellation of ctx.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Insert creates the bookmark unless one already exists for the same user and
// test. It reports whether a row was created. Inside a transaction the insert
// runs in its own savepoint so a failure leaves earlier statements intact.
func (s *Store) Insert(ctx context.Context, b *models.Bookmark) (bool, error) {
	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(b)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to insert bookmark %s: %w", b.TestID, err)
	}
	return created, nil
}

// DeleteOne removes the bookmark for userID and testID and reports whether it existed.
func (s *Store) DeleteOne(ctx context.Context, userID int64, testID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete bookmark %s: %w", testID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteMany removes every bookmark of userID whose test id is in testIDs and
// returns the ids actually removed, in insertion order. The matching rows are
// locked before the delete so the returned ids are exact inside a transaction.
func (s *Store) DeleteMany(ctx context.Context, userID int64, testIDs []string) ([]string, error) {
	deleted := []string{}
	if len(testIDs) == 0 {
		return deleted, nil
	}

	err := s.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND test_id IN ?", userID, testIDs).
		Order("id").
		Pluck("test_id", &deleted).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select bookmarks for deletion: %w", err)
	}
	if len(deleted) == 0 {
		return []string{}, nil
	}

	err = s.db.WithContext(ctx).
		Where("user_id = ? AND test_id IN ?", userID, deleted).
		Delete(&models.Bookmark{}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to delete bookmarks: %w", err)
	}
	return deleted, nil
}

// DeleteAll removes every bookmark of userID and returns how many were removed.
func (s *Store) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear bookmarks: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// List returns the bookmarks of userID ordered by test name. The comparison is
// bytewise regardless of the database collation; equal names keep insertion order.
func (s *Store) List(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&bookmarks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	sort.SliceStable(bookmarks, func(i, j int) bool {
		return bookmarks[i].TestName < bookmarks[j].TestName
	})
	return bookmarks, nil
}
