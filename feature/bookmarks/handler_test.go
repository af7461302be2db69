package bookmarks_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"bookmark-sync/core/storage"
	"bookmark-sync/core/storage/mocks"
	"bookmark-sync/feature/bookmarks"
	"bookmark-sync/feature/bookmarks/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testApp struct {
	app    *fiber.App
	db     *gorm.DB
	userID int64
}

func newTestApp(t *testing.T, client storage.Client) *testApp {
	t.Helper()
	db := newTestDB(t)
	userID := seedUser(t, db, "g1")

	feature := bookmarks.NewFeature(db, bookmarks.NewDBResolver(db), client, "bookmarks", "snapshots", 5*time.Second, zap.NewNop())
	app := fiber.New()
	require.NoError(t, feature.Load(app))

	return &testApp{app: app, db: db, userID: userID}
}

func (a *testApp) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	} else {
		out["raw"] = string(raw)
	}
	return resp.StatusCode, out
}

func TestHandleList(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "t2", "Zinc")
	seedBookmark(t, a.db, a.userID, "t1", "Albumin")

	status, body := a.do(t, "GET", "/bookmarks/user/g1", "")
	assert.Equal(t, fiber.StatusOK, status)

	var list []models.Bookmark
	require.NoError(t, json.Unmarshal([]byte(body["raw"].(string)), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Albumin", list[0].TestName)
	assert.NotContains(t, body["raw"], `"user_id"`)

	status, body = a.do(t, "GET", "/bookmarks/user/ghost", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "User not found", body["error"])
}

func TestHandleAdd(t *testing.T) {
	a := newTestApp(t, nil)

	status, body := a.do(t, "POST", "/bookmarks", `{"google_id":"g1","test_id":"t1","test_name":"CBC","category_id":9}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "t1", body["test_id"])
	assert.Equal(t, "9", body["category_id"])

	status, body = a.do(t, "POST", "/bookmarks", `{"google_id":"g1","test_id":"t1"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Bookmark already exists", body["message"])

	status, body = a.do(t, "POST", "/bookmarks", `{"google_id":"g1"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["error"])

	status, _ = a.do(t, "POST", "/bookmarks", `{"google_id":"ghost","test_id":"t1"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = a.do(t, "POST", "/bookmarks", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["error"])
}

func TestHandleBatchAdd(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "t1", "Existing")

	status, body := a.do(t, "POST", "/bookmarks/batch", `{
		"google_id": "g1",
		"bookmarks": [
			{"test_id": "t1"},
			{"test_id": "t2", "test_name": "Lipid"},
			{"test_name": "No id"}
		]
	}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Batch operation completed", body["message"])
	assert.Equal(t, float64(1), body["added_count"])
	assert.Equal(t, float64(2), body["skipped_count"])

	skipped := body["skipped"].([]any)
	assert.Equal(t, "already_exists", skipped[0].(map[string]any)["reason"])
	assert.Equal(t, "missing_id", skipped[1].(map[string]any)["reason"])

	status, body = a.do(t, "POST", "/bookmarks/batch", `{"google_id":"g1","bookmarks":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields or empty bookmarks array", body["error"])

	status, _ = a.do(t, "POST", "/bookmarks/batch", `{"google_id":"ghost","bookmarks":[{"test_id":"t9"}]}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandleBatchAdd_NumericTestIDs(t *testing.T) {
	a := newTestApp(t, nil)

	status, body := a.do(t, "POST", "/bookmarks/batch", `{"google_id":"g1","bookmarks":[{"test_id":"t1"},{"test_id":12}]}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, float64(2), body["added_count"])
	assert.Equal(t, float64(0), body["skipped_count"])

	added := body["added"].([]any)
	require.Len(t, added, 2)
	assert.Equal(t, "12", added[1].(map[string]any)["test_id"])
	assert.NotContains(t, added[0], "user_id")
	assert.Equal(t, int64(2), countBookmarks(t, a.db, a.userID))
}

func TestHandleBatchDelete(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "t1", "A")
	seedBookmark(t, a.db, a.userID, "t2", "B")

	status, body := a.do(t, "POST", "/bookmarks/batch-delete", `{"google_id":"g1","test_ids":["t1","t1","missing"]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Batch delete completed", body["message"])
	assert.Equal(t, float64(1), body["deleted_count"])
	assert.Equal(t, float64(1), body["not_found_count"])
	assert.Equal(t, []any{"t1"}, body["deleted_ids"])

	status, body = a.do(t, "POST", "/bookmarks/batch-delete", `{"google_id":"g1","test_ids":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields or empty test_ids array", body["error"])

	status, body = a.do(t, "POST", "/bookmarks/batch-delete", `{"google_id":"ghost","test_ids":["t2"]}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "User not found", body["error"])
	assert.Equal(t, int64(1), countBookmarks(t, a.db, a.userID))
}

func TestHandleBatchDelete_NumericTestIDs(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "5", "A")
	seedBookmark(t, a.db, a.userID, "t2", "B")

	status, body := a.do(t, "POST", "/bookmarks/batch-delete", `{"google_id":"g1","test_ids":[5,"t2",7]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2), body["deleted_count"])
	assert.Equal(t, float64(1), body["not_found_count"])
	assert.Equal(t, []any{"5", "t2"}, body["deleted_ids"])
	assert.Equal(t, int64(0), countBookmarks(t, a.db, a.userID))
}

func TestHandleSync(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "t1", "Old")

	status, body := a.do(t, "POST", "/bookmarks/sync", `{
		"google_id": "g1",
		"deletions": ["t1"],
		"additions": [{"test_id": "t1", "test_name": "New"}, {"test_id": "t2"}]
	}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Sync completed successfully", body["message"])
	assert.Equal(t, float64(1), body["deleted_count"])
	assert.Equal(t, float64(2), body["added_count"])
	assert.Equal(t, float64(0), body["skipped_count"])

	details := body["details"].(map[string]any)
	assert.Len(t, details["added"], 2)
	assert.Len(t, details["skipped"], 0)

	status, body = a.do(t, "POST", "/bookmarks/sync", `{"deletions":["t1"]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing google_id", body["error"])

	status, body = a.do(t, "POST", "/bookmarks/sync", `{"google_id":"g1","deletions":[],"additions":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No sync operations provided", body["error"])

	status, _ = a.do(t, "POST", "/bookmarks/sync", `{"google_id":"ghost","deletions":["t1"]}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, int64(2), countBookmarks(t, a.db, a.userID))
}

func TestHandleSync_NumericIDs(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "5", "Old")

	status, body := a.do(t, "POST", "/bookmarks/sync", `{"google_id":"g1","deletions":[5],"additions":[{"test_id":6,"category_id":2}]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["deleted_count"])
	assert.Equal(t, float64(1), body["added_count"])

	added := body["details"].(map[string]any)["added"].([]any)
	require.Len(t, added, 1)
	assert.Equal(t, "6", added[0].(map[string]any)["test_id"])
	assert.Equal(t, "2", added[0].(map[string]any)["category_id"])
	assert.Equal(t, int64(1), countBookmarks(t, a.db, a.userID))
}

func TestHandleRemove(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "t1", "A")

	status, body := a.do(t, "DELETE", "/bookmarks/g1/t1", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Bookmark removed", body["message"])
	assert.Equal(t, true, body["deleted"])

	status, body = a.do(t, "DELETE", "/bookmarks/g1/t1", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Bookmark not found", body["message"])
	assert.Equal(t, false, body["deleted"])

	status, body = a.do(t, "DELETE", "/bookmarks/ghost/t1", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Bookmark not found (user doesn't exist)", body["message"])
}

func TestHandleClear(t *testing.T) {
	a := newTestApp(t, nil)
	seedBookmark(t, a.db, a.userID, "t1", "A")
	seedBookmark(t, a.db, a.userID, "t2", "B")

	status, body := a.do(t, "DELETE", "/bookmarks/user/g1", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "All bookmarks cleared", body["message"])
	assert.Equal(t, float64(2), body["deleted_count"])

	status, body = a.do(t, "DELETE", "/bookmarks/user/ghost", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "No bookmarks to clear (user not found)", body["message"])
	assert.Equal(t, float64(0), body["deleted_count"])
}

func TestHandleSnapshots_Disabled(t *testing.T) {
	a := newTestApp(t, nil)

	status, body := a.do(t, "POST", "/bookmarks/user/g1/snapshots", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "Snapshot storage not configured", body["error"])

	status, _ = a.do(t, "GET", "/bookmarks/user/g1/snapshots", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestHandleSnapshots_ExportAndRestore(t *testing.T) {
	client := new(mocks.Client)
	var stored []byte
	var storedKey string
	client.On("PutObject", mock.Anything, "bookmarks", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			storedKey = args.String(2)
			stored, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	a := newTestApp(t, client)
	seedBookmark(t, a.db, a.userID, "t1", "A")
	seedBookmark(t, a.db, a.userID, "t2", "B")

	status, body := a.do(t, "POST", "/bookmarks/user/g1/snapshots", "")
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, storedKey, body["object_key"])

	client.On("GetObject", mock.Anything, "bookmarks", storedKey, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(stored)), nil)

	status, _ = a.do(t, "DELETE", "/bookmarks/g1/t2", "")
	require.Equal(t, fiber.StatusOK, status)

	status, body = a.do(t, "POST", "/bookmarks/user/g1/snapshots/restore", `{"object_key":"`+storedKey+`"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Snapshot restored", body["message"])
	assert.Equal(t, float64(1), body["added_count"])
	assert.Equal(t, float64(1), body["skipped_count"])
	assert.Equal(t, int64(2), countBookmarks(t, a.db, a.userID))

	status, body = a.do(t, "POST", "/bookmarks/user/g1/snapshots/restore", `{"object_key":"snapshots/g2/1.json"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Snapshot does not belong to user", body["error"])
}

func TestHandleRestoreSnapshot_MissingKey(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bookmarks", "snapshots/g1/404.json", mock.Anything).
		Return(io.NopCloser(iotest.ErrReader(minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})), nil)

	a := newTestApp(t, client)

	status, body := a.do(t, "POST", "/bookmarks/user/g1/snapshots/restore", `{"object_key":"snapshots/g1/404.json"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Snapshot not found", body["error"])
	assert.Equal(t, int64(0), countBookmarks(t, a.db, a.userID))
}
