// Package ui is shorty's Bubble Tea front end.
//
// The screen is a single card holding the URL field, the last short URL and
// the last error, framed by a header (phase badge, service host, counters) and
// a footer (key hints, transient notices). All form state lives in a
// submission.Controller; the Model keeps a Snapshot copy for rendering and
// mirrors the text field into the controller on every edit.
//
// # Submitting
//
// Enter is ignored while the field is empty. Otherwise the Model calls
// Controller.Begin and returns a tea.Cmd that runs Controller.Resolve off the
// update loop. The outcome comes back as a submitSettledMsg and is applied
// with Controller.Settle, after which the text field is cleared to match.
//
// # Keys
//
// Letters belong to the URL field, so actions live on control and function
// keys:
//
//	enter   shorten the URL
//	ctrl+o  open the short URL in the browser
//	ctrl+y  copy the short URL
//	ctrl+l  show the log file
//	ctrl+t  cycle theme (Nightfox, Kanagawa, Slate)
//	f1      help
//	esc     close overlay, or quit from the form
//	ctrl+c  quit
package ui
