// Package submission holds the form state behind shorty's URL field.
//
// # State
//
// The Controller owns three strings: the text being typed (Input), the last
// short URL returned (Result) and the last failure message (Error). All three
// start empty and are only changed through the Controller's methods. Callers
// read them through Snapshot, which returns a copy.
//
// # Lifecycle
//
//	Idle      --Begin-------------> Awaiting
//	Awaiting  --Settle(short URL)-> Succeeded
//	Awaiting  --Settle(err)-------> Failed
//	Succeeded --OnInputChange-----> Idle
//	Failed    --OnInputChange-----> Idle
//	Succeeded --Begin-------------> Awaiting
//
// A submission is split in three steps so a UI event loop can run the network
// call off its own goroutine:
//
//  1. Begin checks the non-empty precondition and the in-flight guard and
//     captures the URL in an Attempt.
//  2. Resolve calls the Shortener. It never touches state.
//  3. Settle applies the Outcome: a short URL replaces Result and clears
//     Error; a failure sets Error to "Failed to fetch data: <cause>" and
//     leaves Result alone. Input is cleared either way.
//
// Submit chains the three for synchronous callers.
//
// # Variants
//
// Options.KeepErrorOnEdit keeps a failure message visible while the user
// edits. Options.AllowOverlap lets Begin start a second request before the
// first settles; the last response to arrive wins and the phase stays
// Awaiting until every request has settled.
//
// # Redirect
//
// Redirect hands Result to the injected Navigator. It fails with ErrNoResult
// until a submission has succeeded.
package submission
