// Package theme persists the dark/light preference and publishes changes.
package theme
