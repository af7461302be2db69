package bookmarks

import (
	"context"
	"errors"

	"bookmark-sync/core/storage"
	"bookmark-sync/feature/bookmarks/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles bookmark operations.
// Every operation validates its input, then resolves the user, then touches
// the store; failures at either of the first two steps leave the store untouched.
type Service struct {
	store      *Store
	reconciler *Reconciler
	identity   IdentityResolver
	snapshots  *Snapshots
	logger     *zap.Logger
}

// NewService creates a new bookmark service. A nil storage client disables snapshots.
func NewService(db *gorm.DB, identity IdentityResolver, client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	store := NewStore(db)
	svc := &Service{
		store:      store,
		reconciler: NewReconciler(store, logger),
		identity:   identity,
		logger:     logger,
	}
	if client != nil {
		svc.snapshots = NewSnapshots(client, bucket, prefix)
	}
	return svc
}

// ListBookmarks returns the bookmarks of a user ordered by test name.
func (s *Service) ListBookmarks(ctx context.Context, googleID string) ([]models.Bookmark, error) {
	userID, err := s.identity.Resolve(ctx, googleID)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, userID)
}

// AddBookmark creates a single bookmark. It returns ErrAlreadyExists instead of
// overwriting an existing one.
func (s *Service) AddBookmark(ctx context.Context, req models.AddRequest) (*models.Bookmark, error) {
	if req.GoogleID == "" || req.TestID == "" {
		return nil, invalid("Missing required fields")
	}

	userID, err := s.identity.Resolve(ctx, req.GoogleID)
	if err != nil {
		return nil, err
	}

	record := req.ToBookmark(userID)
	created, err := s.store.Insert(ctx, record)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyExists
	}
	return record, nil
}

// BatchAdd adds many bookmarks and reports which were added and which skipped.
func (s *Service) BatchAdd(ctx context.Context, req models.BatchAddRequest) (models.AddResult, error) {
	if req.GoogleID == "" || len(req.Bookmarks) == 0 {
		return models.AddResult{}, invalid("Missing required fields or empty bookmarks array")
	}

	userID, err := s.identity.Resolve(ctx, req.GoogleID)
	if err != nil {
		return models.AddResult{}, err
	}
	return s.reconciler.BatchAdd(ctx, userID, req.Bookmarks)
}

// BatchDelete removes many bookmarks in one statement.
func (s *Service) BatchDelete(ctx context.Context, req models.BatchDeleteRequest) (models.DeleteResult, error) {
	if req.GoogleID == "" || len(req.TestIDs) == 0 {
		return models.DeleteResult{}, invalid("Missing required fields or empty test_ids array")
	}

	userID, err := s.identity.Resolve(ctx, req.GoogleID)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return s.reconciler.BatchDelete(ctx, userID, models.Strings(req.TestIDs))
}

// RemoveBookmark deletes one bookmark. A missing user and a missing bookmark
// both yield ErrBookmarkNotFound.
func (s *Service) RemoveBookmark(ctx context.Context, googleID, testID string) error {
	userID, err := s.identity.Resolve(ctx, googleID)
	if errors.Is(err, ErrUserNotFound) {
		return errors.Join(ErrBookmarkNotFound, err)
	}
	if err != nil {
		return err
	}

	existed, err := s.store.DeleteOne(ctx, userID, testID)
	if err != nil {
		return err
	}
	if !existed {
		return ErrBookmarkNotFound
	}
	return nil
}

// ClearBookmarks deletes every bookmark of a user. An unknown user is not an
// error: the result reports zero deletions and UserFound=false.
func (s *Service) ClearBookmarks(ctx context.Context, googleID string) (models.ClearResult, error) {
	userID, err := s.identity.Resolve(ctx, googleID)
	if errors.Is(err, ErrUserNotFound) {
		return models.ClearResult{}, nil
	}
	if err != nil {
		return models.ClearResult{}, err
	}

	deleted, err := s.store.DeleteAll(ctx, userID)
	if err != nil {
		return models.ClearResult{}, err
	}
	return models.ClearResult{Deleted: deleted, UserFound: true}, nil
}

// Sync applies deletions then additions atomically.
func (s *Service) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResult, error) {
	if req.GoogleID == "" {
		return models.SyncResult{}, invalid("Missing google_id")
	}
	if len(req.Additions) == 0 && len(req.Deletions) == 0 {
		return models.SyncResult{}, invalid("No sync operations provided")
	}

	userID, err := s.identity.Resolve(ctx, req.GoogleID)
	if err != nil {
		return models.SyncResult{}, err
	}
	return s.reconciler.Sync(ctx, userID, models.Strings(req.Deletions), req.Additions)
}

// ExportSnapshot writes the current bookmarks of a user to object storage.
func (s *Service) ExportSnapshot(ctx context.Context, googleID string) (models.SnapshotInfo, error) {
	if s.snapshots == nil {
		return models.SnapshotInfo{}, ErrStorageDisabled
	}

	bookmarks, err := s.ListBookmarks(ctx, googleID)
	if err != nil {
		return models.SnapshotInfo{}, err
	}
	return s.snapshots.Put(ctx, googleID, bookmarks)
}

// ListSnapshots returns the stored snapshots of a user.
func (s *Service) ListSnapshots(ctx context.Context, googleID string) ([]models.SnapshotInfo, error) {
	if s.snapshots == nil {
		return nil, ErrStorageDisabled
	}
	if _, err := s.identity.Resolve(ctx, googleID); err != nil {
		return nil, err
	}
	return s.snapshots.List(ctx, googleID)
}

// RestoreSnapshot re-adds the bookmarks of a stored snapshot with batch add
// semantics: bookmarks that still exist are skipped as already_exists.
func (s *Service) RestoreSnapshot(ctx context.Context, googleID, objectKey string) (models.AddResult, error) {
	if s.snapshots == nil {
		return models.AddResult{}, ErrStorageDisabled
	}
	if objectKey == "" {
		return models.AddResult{}, invalid("Missing object_key")
	}

	userID, err := s.identity.Resolve(ctx, googleID)
	if err != nil {
		return models.AddResult{}, err
	}

	doc, err := s.snapshots.Get(ctx, googleID, objectKey)
	if err != nil {
		return models.AddResult{}, err
	}

	items := make([]models.BookmarkInput, 0, len(doc.Bookmarks))
	for _, b := range doc.Bookmarks {
		items = append(items, models.InputFromBookmark(b))
	}
	if len(items) == 0 {
		return models.AddResult{Added: []models.Bookmark{}, Skipped: []models.SkippedBookmark{}}, nil
	}
	return s.reconciler.BatchAdd(ctx, userID, items)
}
