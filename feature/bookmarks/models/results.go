package models

import "time"

// Skip reasons reported for batch items that caused no mutation.
const (
	ReasonMissingID     = "missing_id"
	ReasonAlreadyExists = "already_exists"
)

// SkippedBookmark is a batch item that caused no mutation.
type SkippedBookmark struct {
	Bookmark BookmarkInput `json:"bookmark"`
	Reason   string        `json:"reason"`
}

// AddResult is the per-item classification of a batch add, in input order.
type AddResult struct {
	Added   []Bookmark        `json:"added"`
	Skipped []SkippedBookmark `json:"skipped"`
}

// DeleteResult is the outcome of a set-based delete.
type DeleteResult struct {
	// Requested is the size of the deduplicated id set.
	Requested int
	// DeletedIDs are the ids that existed and were removed.
	DeletedIDs []string
}

// NotFound returns how many requested ids had no bookmark.
func (r DeleteResult) NotFound() int {
	return r.Requested - len(r.DeletedIDs)
}

// SyncResult aggregates the delete and add phases of a sync.
type SyncResult struct {
	Deleted DeleteResult
	Added   AddResult
}

// ClearResult is the outcome of clearing every bookmark of a user.
type ClearResult struct {
	Deleted   int64
	UserFound bool
}

// Snapshot is the JSON document written to object storage on export.
type Snapshot struct {
	GoogleID   string     `json:"google_id"`
	ExportedAt time.Time  `json:"exported_at"`
	Bookmarks  []Bookmark `json:"bookmarks"`
}

// SnapshotInfo describes a stored snapshot object.
type SnapshotInfo struct {
	ObjectKey    string    `json:"object_key"`
	Count        int       `json:"count,omitempty"`
	Size         int64     `json:"size,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
}
