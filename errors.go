package rvsdg

import "errors"

// Sentinel errors wrapped by the builder's panics: the contract-violation
// panics and Connect's panic when no path exists. Callers match a recovered
// panic value with errors.Is.
var (
	// ErrUnknownNode is wrapped when an AnyNode outside the live table is used.
	ErrUnknownNode = errors.New("rvsdg: unknown node")

	// ErrUnknownRegion is wrapped when a RegionID outside the live table is used.
	ErrUnknownRegion = errors.New("rvsdg: unknown region")

	// ErrWrongKind is wrapped when a node's stored kind does not match the
	// kind a typed handle or downcast expected.
	ErrWrongKind = errors.New("rvsdg: node kind mismatch")

	// ErrNotSingleRegion is wrapped when Region is asked for the single
	// child region of a node that owns zero or more than one region.
	ErrNotSingleRegion = errors.New("rvsdg: node does not own exactly one region")

	// ErrNodeNotInRegion is wrapped when an edge endpoint, a move, or a
	// recenv binding names a node that is not a member of the region the
	// operation requires it to be in.
	ErrNodeNotInRegion = errors.New("rvsdg: node not contained in expected region")

	// ErrNodeInitEscaped is wrapped when a node's initializer closure
	// mutated the node table itself (e.g. called AddNode reentrantly)
	// instead of only the region(s) it was handed.
	ErrNodeInitEscaped = errors.New("rvsdg: node initializer mutated the node table")

	// ErrNoPath is wrapped by Connect's panic when no chain of ancestor
	// regions connects an origin to a user (TryConnect reports the same case
	// by returning false).
	ErrNoPath = errors.New("rvsdg: no path from origin to user")
)
