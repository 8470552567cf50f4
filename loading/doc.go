// Package loading coordinates the process-wide in-flight operation count
// behind the global progress indicator.
package loading
