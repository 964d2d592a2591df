package rvsdg

import "fmt"

// Origin names where a value on an edge comes from: either an output port of
// a node directly contained in some region, or an argument of a region
// (a value flowing in from that region's container).
type Origin struct {
	isArgument bool

	node AnyNode
	out  OutputID

	region RegionID
	arg    ArgumentID
}

// OutputOrigin builds an Origin naming output `out` of node `n`.
func OutputOrigin(n AnyNode, out OutputID) Origin {
	return Origin{node: n, out: out}
}

// ArgumentOrigin builds an Origin naming argument `arg` of region `r`.
func ArgumentOrigin(r RegionID, arg ArgumentID) Origin {
	return Origin{isArgument: true, region: r, arg: arg}
}

// AsOrigin lets a typed Output participate in Connect/TryConnect calls.
func (o Output[K]) AsOrigin() Origin { return OutputOrigin(o.Node.id, o.ID) }

// AsOrigin promotes an ArgumentRef to an Origin.
func (a ArgumentRef) AsOrigin() Origin { return ArgumentOrigin(a.Region, a.ID) }

func (o Origin) String() string {
	if o.isArgument {
		return fmt.Sprintf("%s.%s", o.region, o.arg)
	}
	return fmt.Sprintf("%s.%s", o.node, o.out)
}

// User names where a value on an edge is consumed: either an input port of a
// node directly contained in some region, or a result of a region (a value
// flowing out to that region's container).
type User struct {
	isResult bool

	node AnyNode
	in   InputID

	region RegionID
	res    ResultID
}

// InputUser builds a User naming input `in` of node `n`.
func InputUser(n AnyNode, in InputID) User {
	return User{node: n, in: in}
}

// ResultUser builds a User naming result `res` of region `r`.
func ResultUser(r RegionID, res ResultID) User {
	return User{isResult: true, region: r, res: res}
}

// AsUser lets a typed Input participate in Connect/TryConnect calls.
func (i Input[K]) AsUser() User { return InputUser(i.Node.id, i.ID) }

// AsUser promotes a ResultRef to a User.
func (r ResultRef) AsUser() User { return ResultUser(r.Region, r.ID) }

func (u User) String() string {
	if u.isResult {
		return fmt.Sprintf("%s.%s", u.region, u.res)
	}
	return fmt.Sprintf("%s.%s", u.node, u.in)
}

// Edge is a single directed value-flow arc, owned by the region in which
// both its origin and user are locally visible.
type Edge struct {
	Origin Origin
	User   User
}

func originEqual(a, b Origin) bool {
	if a.isArgument != b.isArgument {
		return false
	}
	if a.isArgument {
		return a.region == b.region && a.arg == b.arg
	}
	return a.node == b.node && a.out == b.out
}

func userEqual(a, b User) bool {
	if a.isResult != b.isResult {
		return false
	}
	if a.isResult {
		return a.region == b.region && a.res == b.res
	}
	return a.node == b.node && a.in == b.in
}
