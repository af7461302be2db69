package bookmarks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"bookmark-sync/core/storage/mocks"
	"bookmark-sync/feature/bookmarks"
	"bookmark-sync/feature/bookmarks/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshots_Put(t *testing.T) {
	client := new(mocks.Client)
	var written []byte
	client.On("PutObject", mock.Anything, "bookmarks",
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "snapshots/g%2F1/") && strings.HasSuffix(key, ".json")
		}),
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	snaps := bookmarks.NewSnapshots(client, "bookmarks", "/snapshots/")
	info, err := snaps.Put(context.Background(), "g/1", []models.Bookmark{{TestID: "t1", TestName: "CBC"}})
	require.NoError(t, err)
	assert.Equal(t, 1, info.Count)
	assert.Equal(t, int64(len(written)), info.Size)

	var doc models.Snapshot
	require.NoError(t, json.Unmarshal(written, &doc))
	assert.Equal(t, "g/1", doc.GoogleID)
	require.Len(t, doc.Bookmarks, 1)
	assert.Equal(t, "t1", doc.Bookmarks[0].TestID)
	client.AssertExpectations(t)
}

func TestSnapshots_List(t *testing.T) {
	client := new(mocks.Client)
	now := time.Now()
	client.On("ListObjects", mock.Anything, "bookmarks", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "snapshots/g1/" && opts.Recursive
	})).Return(func() <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, 2)
		ch <- minio.ObjectInfo{Key: "snapshots/g1/1.json", Size: 10, LastModified: now}
		ch <- minio.ObjectInfo{Key: "snapshots/g1/notes.txt", Size: 3}
		close(ch)
		return ch
	}())

	infos, err := bookmarks.NewSnapshots(client, "bookmarks", "snapshots").List(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "snapshots/g1/1.json", infos[0].ObjectKey)
	assert.Equal(t, int64(10), infos[0].Size)
}

func TestSnapshots_GetRejectsForeignKeys(t *testing.T) {
	client := new(mocks.Client)
	snaps := bookmarks.NewSnapshots(client, "bookmarks", "snapshots")

	for _, key := range []string{"", "snapshots/g2/1.json", "snapshots/g1/../g2/1.json"} {
		_, err := snaps.Get(context.Background(), "g1", key)
		assert.ErrorIs(t, err, bookmarks.ErrValidation, key)
	}
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSnapshots_Get(t *testing.T) {
	client := new(mocks.Client)
	body := `{"google_id":"g1","exported_at":"2026-01-02T03:04:05Z","bookmarks":[{"test_id":"t1","category_id":"4"}]}`
	client.On("GetObject", mock.Anything, "bookmarks", "snapshots/g1/1.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(body))), nil)

	doc, err := bookmarks.NewSnapshots(client, "bookmarks", "snapshots").Get(context.Background(), "g1", "snapshots/g1/1.json")
	require.NoError(t, err)
	require.Len(t, doc.Bookmarks, 1)
	assert.Equal(t, "4", doc.Bookmarks[0].CategoryID)
}

func TestSnapshots_GetMissingKey(t *testing.T) {
	noSuchKey := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404, Message: "The specified key does not exist."}

	t.Run("on read", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bookmarks", "snapshots/g1/404.json", mock.Anything).
			Return(io.NopCloser(iotest.ErrReader(noSuchKey)), nil)

		_, err := bookmarks.NewSnapshots(client, "bookmarks", "snapshots").Get(context.Background(), "g1", "snapshots/g1/404.json")
		assert.ErrorIs(t, err, bookmarks.ErrSnapshotNotFound)
	})

	t.Run("on open", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bookmarks", "snapshots/g1/404.json", mock.Anything).
			Return(nil, noSuchKey)

		_, err := bookmarks.NewSnapshots(client, "bookmarks", "snapshots").Get(context.Background(), "g1", "snapshots/g1/404.json")
		assert.ErrorIs(t, err, bookmarks.ErrSnapshotNotFound)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bookmarks", "snapshots/g1/1.json", mock.Anything).
			Return(io.NopCloser(iotest.ErrReader(errors.New("connection reset"))), nil)

		_, err := bookmarks.NewSnapshots(client, "bookmarks", "snapshots").Get(context.Background(), "g1", "snapshots/g1/1.json")
		assert.ErrorContains(t, err, "connection reset")
		assert.NotErrorIs(t, err, bookmarks.ErrSnapshotNotFound)
	})
}
