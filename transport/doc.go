// Package transport implements the outbound request interceptor: it
// attaches the bearer credential, tracks every round trip in the loading
// coordinator, and routes authentication and authorization failures to
// their recovery actions before handing the response back unchanged.
package transport
