package bookmarks

import (
	"context"

	"bookmark-sync/feature/bookmarks/models"
)

// Sync applies deletions and then additions for userID in one transaction.
//
// Deletions run first so a client can replace a bookmark (delete the old
// reference and add the corrected one with the same test id) in one call.
// A failing delete statement or commit rolls back everything; skipped
// additions do not.
func (r *Reconciler) Sync(ctx context.Context, userID int64, deletions []string, additions []models.BookmarkInput) (models.SyncResult, error) {
	var result models.SyncResult
	err := r.store.Transaction(ctx, func(tx *Store) error {
		if len(deletions) > 0 {
			deleted, err := r.deleteItems(ctx, tx, userID, deletions)
			if err != nil {
				return err
			}
			result.Deleted = deleted
		} else {
			result.Deleted = models.DeleteResult{DeletedIDs: []string{}}
		}

		result.Added = r.addItems(ctx, tx, userID, additions)
		return nil
	})
	if err != nil {
		return models.SyncResult{}, err
	}
	return result, nil
}
