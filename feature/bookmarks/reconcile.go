package bookmarks

import (
	"context"

	"bookmark-sync/feature/bookmarks/models"

	"go.uber.org/zap"
)

// OutcomeKind classifies a single batch add item.
type OutcomeKind int

const (
	// OutcomeAdded means a row was created.
	OutcomeAdded OutcomeKind = iota
	// OutcomeSkipped means no mutation happened; Reason says why.
	OutcomeSkipped
)

// Outcome is the tagged result of one batch add item.
type Outcome struct {
	Kind   OutcomeKind
	Record models.Bookmark
	Input  models.BookmarkInput
	Reason string
}

// Reconciler applies client batches against the store.
//
// The add path contains failures per item: a missing id, an existing bookmark
// or a store error on one insert only skips that item, and the enclosing
// transaction still commits. The delete path is a single statement and is
// all-or-nothing.
type Reconciler struct {
	store  *Store
	logger *zap.Logger
}

// NewReconciler creates a reconciler over the given store.
func NewReconciler(store *Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: store, logger: logger}
}

// BatchAdd inserts items for userID in one transaction and classifies each one.
// Only a failing commit returns an error.
func (r *Reconciler) BatchAdd(ctx context.Context, userID int64, items []models.BookmarkInput) (models.AddResult, error) {
	var result models.AddResult
	err := r.store.Transaction(ctx, func(tx *Store) error {
		result = r.addItems(ctx, tx, userID, items)
		return nil
	})
	if err != nil {
		return models.AddResult{}, err
	}
	return result, nil
}

// BatchDelete removes the given test ids for userID with one statement.
// Duplicate ids are collapsed before counting.
func (r *Reconciler) BatchDelete(ctx context.Context, userID int64, testIDs []string) (models.DeleteResult, error) {
	var result models.DeleteResult
	err := r.store.Transaction(ctx, func(tx *Store) error {
		var err error
		result, err = r.deleteItems(ctx, tx, userID, testIDs)
		return err
	})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return result, nil
}

func (r *Reconciler) addItems(ctx context.Context, tx *Store, userID int64, items []models.BookmarkInput) models.AddResult {
	result := models.AddResult{
		Added:   []models.Bookmark{},
		Skipped: []models.SkippedBookmark{},
	}

	for _, item := range items {
		outcome := r.addOne(ctx, tx, userID, item)
		switch outcome.Kind {
		case OutcomeAdded:
			result.Added = append(result.Added, outcome.Record)
		case OutcomeSkipped:
			result.Skipped = append(result.Skipped, models.SkippedBookmark{
				Bookmark: outcome.Input,
				Reason:   outcome.Reason,
			})
		}
	}
	return result
}

func (r *Reconciler) addOne(ctx context.Context, tx *Store, userID int64, item models.BookmarkInput) Outcome {
	if item.TestID == "" {
		return Outcome{Kind: OutcomeSkipped, Input: item, Reason: models.ReasonMissingID}
	}

	record := item.ToBookmark(userID)
	created, err := tx.Insert(ctx, record)
	if err != nil {
		r.logger.Warn("Skipping bookmark after store error",
			zap.Int64("user_id", userID),
			zap.String("test_id", string(item.TestID)),
			zap.Error(err))
		return Outcome{Kind: OutcomeSkipped, Input: item, Reason: err.Error()}
	}
	if !created {
		return Outcome{Kind: OutcomeSkipped, Input: item, Reason: models.ReasonAlreadyExists}
	}
	return Outcome{Kind: OutcomeAdded, Record: *record, Input: item}
}

func (r *Reconciler) deleteItems(ctx context.Context, tx *Store, userID int64, testIDs []string) (models.DeleteResult, error) {
	ids := uniqueIDs(testIDs)
	deleted, err := tx.DeleteMany(ctx, userID, ids)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Requested: len(ids), DeletedIDs: deleted}, nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
