// Package models defines the persistence models, request bodies and
// response payloads of the bookmarks feature.
package models
