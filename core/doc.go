// Package core contains the composite view container and app-wide contracts.
//
// Allowed here:
// - screen stack routing, show/hide lifecycle hooks
// - message contracts and the scoped key registry
// - header, status and footer chrome
//
// Not allowed here:
// - concrete screen rendering implementations
// - storage access
package core
