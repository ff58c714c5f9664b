// Package store persists sittings and their record sets in SQLite and
// applies upsert plans produced by the merge engine.
package store
