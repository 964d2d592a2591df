package rvsdg

import "fmt"

// TryConnect wires origin to user, walking up the region-containment tree
// from the builder's current region if origin is not already locally
// visible there. At each ancestor crossing it plants a forwarding input on
// the crossed region's container node and converts it into that region's
// own argument, so the value is available one level further in; it repeats
// until origin is local, then plants the final edge with RawConnect.
//
// It returns false, without mutating anything, if no chain of ancestors
// connects origin to the current region at all (origin's node or region
// lies outside the current region's containment tree). It also
// short-circuits to true without adding a duplicate edge if an equivalent
// connection (considering already-forwarded chains) exists already.
func (b *Builder) TryConnect(origin Origin, user User) bool {
	if b.connectionExists(origin, user) {
		return true
	}
	local, ok := b.resolveOrigin(origin)
	if !ok {
		return false
	}
	b.RawConnect(local, user)
	for _, p := range b.plugins {
		p.AfterConnect(origin, user)
	}
	return true
}

// Connect is TryConnect but panics, wrapping ErrNoPath, when no path exists.
// Use it once a graph shape is established enough that a missing path is a
// builder bug rather than something to recover from.
func (b *Builder) Connect(origin Origin, user User) {
	if !b.TryConnect(origin, user) {
		panic(fmt.Errorf("%w: %s -> %s", ErrNoPath, origin, user))
	}
}

func (b *Builder) resolveOrigin(origin Origin) (Origin, bool) {
	if origin.isArgument {
		return b.findArgument(b.current, origin.region, origin.arg)
	}
	return b.findOutput(b.current, origin.node, origin.out)
}

// findOutput looks for node/out as a local origin of region `in`, climbing
// toward Omega one containing region at a time. Each successful climb
// plants a forwarding input on the region's container node and returns that
// input's forwarded argument as the new local origin for the caller one
// level down.
func (b *Builder) findOutput(in RegionID, node AnyNode, out OutputID) (Origin, bool) {
	rec := b.region(in)
	if containsNode(b.nodePool.Slice(rec.nodes), node) {
		return OutputOrigin(node, out), true
	}
	if !rec.hasContainer {
		return Origin{}, false
	}
	container := rec.containerNode
	parent := b.node(container).region
	parentOrigin, ok := b.findOutput(parent, node, out)
	if !ok {
		return Origin{}, false
	}
	newInput := b.addInputAny(container)
	b.rawConnectIn(parent, parentOrigin, InputUser(container, newInput))
	ref := b.inputAsArgumentAny(container, newInput)
	return ref.AsOrigin(), true
}

// findArgument is findOutput's counterpart for an origin that is itself a
// region argument rather than a node output: region/arg is already local
// once `in` equals region, otherwise the same climb-and-forward applies.
func (b *Builder) findArgument(in RegionID, region RegionID, arg ArgumentID) (Origin, bool) {
	if in == region {
		return ArgumentOrigin(region, arg), true
	}
	rec := b.region(in)
	if !rec.hasContainer {
		return Origin{}, false
	}
	container := rec.containerNode
	parent := b.node(container).region
	parentOrigin, ok := b.findArgument(parent, region, arg)
	if !ok {
		return Origin{}, false
	}
	newInput := b.addInputAny(container)
	b.rawConnectIn(parent, parentOrigin, InputUser(container, newInput))
	ref := b.inputAsArgumentAny(container, newInput)
	return ref.AsOrigin(), true
}

// connectionExistsIn reports whether region `in` already carries an edge to
// user whose origin is origin, treating a chain of forwarded arguments as
// equivalent to the output/argument it ultimately forwards from. It does
// not walk the user side: a User is always local to the region a connect
// call runs in, never itself a forwarding chain, so only the origin side
// needs the recursive equivalence check.
func (b *Builder) connectionExistsIn(in RegionID, origin Origin, user User) bool {
	rec := b.region(in)
	for _, e := range rec.edges {
		if !userEqual(e.User, user) {
			continue
		}
		if originEqual(e.Origin, origin) {
			return true
		}
		if e.Origin.isArgument && e.Origin.region == in {
			node, inID, ok := b.ArgumentAsInput(ArgumentRef{Region: in, ID: e.Origin.arg})
			if !ok {
				continue
			}
			parent := b.node(node).region
			if b.connectionExistsIn(parent, origin, InputUser(node, inID)) {
				return true
			}
		}
	}
	return false
}

func (b *Builder) connectionExists(origin Origin, user User) bool {
	return b.connectionExistsIn(b.current, origin, user)
}
