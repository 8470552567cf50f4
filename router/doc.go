// Package router models client-side navigation: registered routes, the
// access gates evaluated before entering protected views, and the current
// location as a readable/observable value.
package router
