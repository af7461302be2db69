package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// User mirrors the users table owned by the identity subsystem.
// The bookmark feature only reads it to map google_id to the internal key.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GoogleID  string    `gorm:"column:google_id;size:191;not null;uniqueIndex" json:"google_id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	PhotoURL  string    `gorm:"column:photo_url;size:1024" json:"photo_url"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name for User.
func (User) TableName() string {
	return "users"
}

// Bookmark is a user's saved reference to a catalog test.
// TestName and the category fields are display snapshots taken when the
// bookmark was created, not foreign keys.
type Bookmark struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:ux_bookmarks_user_test,priority:1" json:"-"`
	TestID       string    `gorm:"column:test_id;size:191;not null;uniqueIndex:ux_bookmarks_user_test,priority:2" json:"test_id"`
	TestName     string    `gorm:"column:test_name;size:255" json:"test_name"`
	CategoryName string    `gorm:"column:category_name;size:255" json:"category_name"`
	CategoryID   string    `gorm:"column:category_id;size:64" json:"category_id"`
	BookmarkedAt time.Time `gorm:"column:bookmarked_at;autoCreateTime" json:"bookmarked_at"`
}

// TableName overrides the table name for Bookmark.
func (Bookmark) TableName() string {
	return "bookmarks"
}

// Columns lists the bookmark columns the store depends on.
var Columns = []string{"id", "user_id", "test_id", "test_name", "category_name", "category_id", "bookmarked_at"}

// FlexString accepts either a JSON string or a JSON number.
// Clients send test and category ids as both.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*f = FlexString(n.String())
	return nil
}

// BookmarkInput is a bookmark as submitted by a client.
type BookmarkInput struct {
	TestID       FlexString `json:"test_id"`
	TestName     string     `json:"test_name"`
	CategoryName string     `json:"category_name"`
	CategoryID   FlexString `json:"category_id"`
}

// ToBookmark builds the row to insert for the given user.
func (in BookmarkInput) ToBookmark(userID int64) *Bookmark {
	return &Bookmark{
		UserID:       userID,
		TestID:       string(in.TestID),
		TestName:     in.TestName,
		CategoryName: in.CategoryName,
		CategoryID:   string(in.CategoryID),
	}
}

// InputFromBookmark converts a stored bookmark back into client input.
func InputFromBookmark(b Bookmark) BookmarkInput {
	return BookmarkInput{
		TestID:       FlexString(b.TestID),
		TestName:     b.TestName,
		CategoryName: b.CategoryName,
		CategoryID:   FlexString(b.CategoryID),
	}
}

// Strings converts ids to plain strings.
func Strings(ids []FlexString) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
