// Package stream provides a minimal current-value publish/subscribe
// primitive shared by the session, loading, router and theme packages.
package stream
