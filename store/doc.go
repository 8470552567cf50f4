// Package store defines the durable client-side key-value area that owns
// the bearer token and small preferences such as the theme.
//
// It ships with an in-memory implementation sufficient for unit tests and
// an afs-backed FileStore that persists a JSON snapshot across restarts.
// All credential mutation goes through this package; no other component
// touches the stored token directly.
package store
