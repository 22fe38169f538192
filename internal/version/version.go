// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - PNG posters, .env configuration, seed history
// 0.2.0 - Jump lines, class labels, light/dark presets
// 0.1.0 - Initial release: seeded star generator, TUI map, headless modes
