package rvsdg

// NodeKind is implemented by every node kind in the closed vocabulary. The
// tag returned by NodeType is what an Emitter or an external evaluator
// switches on; downcasting to read kind-specific state (Phi's lambda
// bindings, Number's value) goes through a type assertion on the concrete
// kind, never through the tag string.
type NodeKind interface {
	NodeType() string
}

// Omega is the single root node of a translation unit. Every other node is
// contained, directly or transitively, in Omega's region.
type Omega struct{}

func (Omega) NodeType() string { return "omega" }

// Lambda is a single-region function node. Its region's trailing arguments
// mirror the lambda's inputs (the port-forwarding invariant), including the
// inputs Connect adds to forward values captured from enclosing scopes; any
// arguments before them were added inside the region itself (its
// parameters). Its single canonical output (index 0) is the callable value
// itself.
type Lambda struct{}

func (Lambda) NodeType() string { return "lambda" }

// LambdaOutput returns the lambda's own canonical output, the value other
// nodes reference to call it.
func LambdaOutput(n Node[Lambda]) Output[Lambda] {
	return Output[Lambda]{Node: n, ID: 0}
}

// Delta is a single-region global value node. Its region has no arguments
// and one result, the initializer expression; the node itself has a single
// output, the initialized value.
type Delta struct{}

func (Delta) NodeType() string { return "delta" }

// Theta is a do-while loop node. The vocabulary reserves it as a
// single-region construct; the spec this builder implements does not define
// loop-specific ports beyond the region itself, so Theta carries no fields
// of its own yet.
type Theta struct{}

func (Theta) NodeType() string { return "theta" }

// Apply applies a callee to arguments. By convention its first input (index
// 0) is the callee; the remaining inputs are the call's arguments, and its
// outputs mirror the callee's results.
type Apply struct{}

func (Apply) NodeType() string { return "apply" }

// RecEnvBinding is what MoveLambdaToRecEnv records for each lambda it binds
// into a Phi: the region argument standing in for "this lambda, callable
// from inside the recursive environment", and the Phi output exporting it
// to the outside.
type RecEnvBinding struct {
	Arg ArgumentID
	Out OutputID
}

// Phi is a mutual-recursion environment. It owns a region with zero
// inputs/arguments of its own beyond what MoveLambdaToRecEnv adds, one
// output per lambda bound into it, and tracks the binding for each.
type Phi struct {
	Lambdas map[AnyNode]RecEnvBinding
}

func (Phi) NodeType() string { return "phi" }

// Number is a simple node carrying a literal numeric value. It has zero
// regions and a single output, the constant itself.
type Number struct {
	Value int64
}

func (Number) NodeType() string { return "simple" }

// Placeholder is a simple node standing in for a value not yet built, named
// for diagnostics. It has zero regions and a single output.
type Placeholder struct {
	Name string
}

func (Placeholder) NodeType() string { return "simple" }
