// Package stack defines the read-only view of a notification stack that the
// size calculator consumes.
//
// # Overview
//
// A stack is an ordered, randomly indexable sequence of [Row] values. Order
// is the on-screen top-to-bottom order: the first eligible row pays no
// leading separator, every later row does. A [Stack] also decides how much
// extra space separates two visually adjacent items through its Gap method,
// which returns zero when both items belong to the same section.
//
// # Items
//
// The gap callback compares two items. An [Item] is either a [Row] or the
// [Shelf] marker, the trailing summary element drawn after the last row.
// A nil previous item means "nothing above".
//
// # Eligibility
//
// Rows flagged as removed, and rows whose [Visibility] is not [Visible], are
// not eligible. They take no slot and contribute no height. [Eligible]
// filters a snapshot once and returns the rows in order.
//
// # List
//
// [List] is an in-memory snapshot with section-aware gaps. It is what
// scenario files, the CLI and the HTTP API build:
//
//	l := &stack.List{
//	    Rows:         rows,
//	    GapHeight:    16,
//	    ShelfSection: "shelf",
//	}
//	n := l.RowCount()
//
// Hosts with their own view hierarchy implement [Stack] directly instead.
package stack
