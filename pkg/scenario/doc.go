// Package scenario reads and writes scenario documents.
//
// A scenario captures everything one layout pass needs: the rows, the gap
// configuration of the stack, the space budget, the lock-state sample and,
// optionally, an explicit row count for height-only queries.
//
// Scenarios are stored as TOML or JSON; the format is picked from the file
// extension:
//
//	name = "two rows and a shelf"
//	gap_height = 16
//	shelf_section = "shelf"
//
//	[budget]
//	space_for_notifications = 233
//	space_for_shelf = 52
//	shelf_height = 34
//
//	[lock]
//	state = "keyguard"
//	fraction_to_shade = 0
//
//	[[rows]]
//	id = "chat"
//	section = "people"
//	min_height = 60
//	intrinsic_height = 106
//
// Loading never panics. Malformed documents come back as INVALID_SCENARIO,
// INVALID_ROW, INVALID_BUDGET or INVALID_LOCK_STATE errors from [Scenario.Validate],
// so callers can reject bad input before handing it to the calculator.
package scenario
