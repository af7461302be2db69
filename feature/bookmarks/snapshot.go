package bookmarks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"bookmark-sync/core/storage"
	"bookmark-sync/feature/bookmarks/models"

	"github.com/minio/minio-go/v7"
)

// maxSnapshotSize bounds how much of a snapshot object is read on restore.
const maxSnapshotSize = 32 << 20

// Snapshots writes and reads per-user bookmark snapshots in object storage.
// Keys have the form <prefix>/<escaped google_id>/<unix nanos>.json.
type Snapshots struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewSnapshots creates a snapshot writer for the given bucket and key prefix.
func NewSnapshots(client storage.Client, bucket, prefix string) *Snapshots {
	return &Snapshots{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
	}
}

func (s *Snapshots) userPrefix(googleID string) string {
	return path.Join(s.prefix, url.PathEscape(googleID)) + "/"
}

// Put uploads the bookmarks of googleID as a new snapshot object.
func (s *Snapshots) Put(ctx context.Context, googleID string, bookmarks []models.Bookmark) (models.SnapshotInfo, error) {
	now := s.now().UTC()
	doc := models.Snapshot{
		GoogleID:   googleID,
		ExportedAt: now,
		Bookmarks:  bookmarks,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return models.SnapshotInfo{}, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := s.userPrefix(googleID) + fmt.Sprintf("%d.json", now.UnixNano())
	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return models.SnapshotInfo{}, fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}

	return models.SnapshotInfo{
		ObjectKey:    key,
		Count:        len(bookmarks),
		Size:         int64(len(data)),
		LastModified: now,
	}, nil
}

// List returns the snapshots stored for googleID, oldest first.
func (s *Snapshots) List(ctx context.Context, googleID string) ([]models.SnapshotInfo, error) {
	infos := []models.SnapshotInfo{}
	opts := minio.ListObjectsOptions{Prefix: s.userPrefix(googleID), Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		infos = append(infos, models.SnapshotInfo{
			ObjectKey:    obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return infos, nil
}

// Get reads a snapshot of googleID. Keys outside the user's prefix are rejected.
func (s *Snapshots) Get(ctx context.Context, googleID, key string) (*models.Snapshot, error) {
	if key == "" || !strings.HasPrefix(key, s.userPrefix(googleID)) || strings.Contains(key, "..") {
		return nil, invalid("Snapshot does not belong to user")
	}

	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	defer reader.Close()

	// minio defers the stat until the first read, so a missing key surfaces here.
	data, err := io.ReadAll(io.LimitReader(reader, maxSnapshotSize))
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}

	var doc models.Snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", key, err)
	}
	return &doc, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
