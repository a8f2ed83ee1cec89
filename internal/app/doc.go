// Package app is the composition root for shorty.
//
// Run loads the TOML config, applies command-line overrides, opens the zap
// log file, builds the shortening client and the submission controller, and
// hands them to the Bubble Tea UI. It blocks until the user quits or the
// context is cancelled.
//
// Errors building any component are fatal and returned to the caller.
// Failures of individual shortening requests are not: the controller turns
// them into the form's error line.
package app
