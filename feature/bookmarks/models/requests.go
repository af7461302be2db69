package models

// AddRequest is the body of POST /bookmarks.
type AddRequest struct {
	GoogleID string `json:"google_id"`
	BookmarkInput
}

// BatchAddRequest is the body of POST /bookmarks/batch.
type BatchAddRequest struct {
	GoogleID  string          `json:"google_id"`
	Bookmarks []BookmarkInput `json:"bookmarks"`
}

// BatchDeleteRequest is the body of POST /bookmarks/batch-delete.
type BatchDeleteRequest struct {
	GoogleID string       `json:"google_id"`
	TestIDs  []FlexString `json:"test_ids"`
}

// SyncRequest is the body of POST /bookmarks/sync.
type SyncRequest struct {
	GoogleID  string          `json:"google_id"`
	Additions []BookmarkInput `json:"additions"`
	Deletions []FlexString    `json:"deletions"`
}

// RestoreRequest is the body of POST /bookmarks/user/:google_id/snapshots/restore.
type RestoreRequest struct {
	ObjectKey string `json:"object_key"`
}

// BatchAddResponse is returned by the batch add and snapshot restore endpoints.
type BatchAddResponse struct {
	Message      string            `json:"message"`
	AddedCount   int               `json:"added_count"`
	SkippedCount int               `json:"skipped_count"`
	Added        []Bookmark        `json:"added"`
	Skipped      []SkippedBookmark `json:"skipped"`
}

// BatchDeleteResponse is returned by the batch delete endpoint.
type BatchDeleteResponse struct {
	Message       string   `json:"message"`
	DeletedCount  int      `json:"deleted_count"`
	NotFoundCount int      `json:"not_found_count"`
	DeletedIDs    []string `json:"deleted_ids"`
}

// SyncResponse is returned by the sync endpoint.
type SyncResponse struct {
	Message      string    `json:"message"`
	DeletedCount int       `json:"deleted_count"`
	AddedCount   int       `json:"added_count"`
	SkippedCount int       `json:"skipped_count"`
	Details      AddResult `json:"details"`
}

// RemoveResponse is returned by the single delete endpoint.
type RemoveResponse struct {
	Message string `json:"message"`
	Deleted bool   `json:"deleted"`
}

// ClearResponse is returned by the clear-all endpoint.
type ClearResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}
