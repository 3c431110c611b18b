// Package store persists whole collections as single JSON documents. Reads
// return the full collection; writes replace it. A write is last-writer-wins
// at collection granularity; there are no partial updates or indexes.
package store

import "context"

// Collection names used by the application.
const (
	CollectionUsers    = "users"
	CollectionProjects = "projects"
	CollectionSettings = "settings"
	CollectionContent  = "content"
)

// Store is the full-collection read/replace contract shared by all backends.
type Store interface {
	// Read decodes the collection into out. found is false when the
	// collection has never been written; out is left untouched in that case.
	Read(ctx context.Context, collection string, out interface{}) (found bool, err error)
	// Replace serializes data as the new full content of the collection.
	Replace(ctx context.Context, collection string, data interface{}) error
}
