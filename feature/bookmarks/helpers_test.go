package bookmarks_test

import (
	"testing"

	"bookmark-sync/core/database"
	"bookmark-sync/feature/bookmarks/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Bookmark{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, googleID string) int64 {
	t.Helper()
	user := models.User{GoogleID: googleID, Name: googleID}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func seedBookmark(t *testing.T, db *gorm.DB, userID int64, testID, testName string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Bookmark{UserID: userID, TestID: testID, TestName: testName}).Error)
}

func countBookmarks(t *testing.T, db *gorm.DB, userID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Bookmark{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

// newMockDB returns a mysql-dialect gorm handle backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}
