package rvsdg

import "fmt"

// AddLambdaNode builds a new Lambda in the builder's current region and
// returns its canonical output. Add inputs with AddInput, turn them into
// usable values inside the lambda's body with InputAsArgument, and build
// the body itself with InRegion(b, Region(lambda), ...).
func AddLambdaNode(b *Builder) Output[Lambda] {
	n := AddNode(b, func(b *Builder, self Node[Lambda]) (Lambda, []RegionID) {
		r := b.AddRegion(0, 0)
		return Lambda{}, []RegionID{r}
	})
	return Output[Lambda]{Node: n, ID: b.addOutputAny(n.id)}
}

// AddDeltaNode builds a new Delta (global value) node. Its region has a
// single result (returned here) that the caller connects the initializer
// expression to; the node's own output is the initialized value.
func AddDeltaNode(b *Builder) (ResultRef, Output[Delta]) {
	var result ResultRef
	n := AddNode(b, func(b *Builder, self Node[Delta]) (Delta, []RegionID) {
		r := b.AddRegion(0, 0)
		result = InRegion(b, r, func(b *Builder) ResultRef { return b.AddResult() })
		return Delta{}, []RegionID{r}
	})
	return result, Output[Delta]{Node: n, ID: b.addOutputAny(n.id)}
}

// AddThetaNode builds a new Theta (do-while loop) node and returns its
// canonical output.
func AddThetaNode(b *Builder) Output[Theta] {
	n := AddNode(b, func(b *Builder, self Node[Theta]) (Theta, []RegionID) {
		r := b.AddRegion(0, 0)
		return Theta{}, []RegionID{r}
	})
	return Output[Theta]{Node: n, ID: b.addOutputAny(n.id)}
}

// AddApplyNode builds a new Apply node and returns its callee input (input
// 0, by convention the value being called). Add further inputs with
// AddInput for the call's arguments, and outputs with AddOutput mirroring
// the callee's results.
func AddApplyNode(b *Builder) Input[Apply] {
	n := AddNode(b, func(b *Builder, self Node[Apply]) (Apply, []RegionID) {
		return Apply{}, nil
	})
	return Input[Apply]{Node: n, ID: b.addInputAny(n.id)}
}

// AddNumberNode builds a simple node carrying a literal integer value and
// returns its single output.
func AddNumberNode(b *Builder, value int64) Output[Number] {
	n := AddNode(b, func(b *Builder, self Node[Number]) (Number, []RegionID) {
		return Number{Value: value}, nil
	})
	return Output[Number]{Node: n, ID: b.addOutputAny(n.id)}
}

// AddPlaceholderNode builds a simple node standing in for a value not yet
// constructed, named for diagnostics, and returns its single output.
func AddPlaceholderNode(b *Builder, name string) Output[Placeholder] {
	n := AddNode(b, func(b *Builder, self Node[Placeholder]) (Placeholder, []RegionID) {
		return Placeholder{Name: name}, nil
	})
	return Output[Placeholder]{Node: n, ID: b.addOutputAny(n.id)}
}

// AddPhiNode builds a new Phi (mutual recursion environment). Move the
// lambdas it will host into its region with MoveNode, then bind each with
// MoveLambdaToRecEnv.
func AddPhiNode(b *Builder) Node[Phi] {
	return AddNode(b, func(b *Builder, self Node[Phi]) (Phi, []RegionID) {
		r := b.AddRegion(0, 0)
		return Phi{Lambdas: map[AnyNode]RecEnvBinding{}}, []RegionID{r}
	})
}

// MoveLambdaToRecEnv binds lambda into phi's recursive environment. The
// caller must already have moved lambda into phi's region (MoveNode) and
// must call this with the builder's cursor switched to that region.
//
// Binding allocates two things: a new output on phi itself, exported to
// whatever region contains phi, standing for "the callable value of this
// lambda as seen from outside the environment"; and a new argument on
// phi's region, the lambda's "self" slot, which every lambda bound into the
// same environment reaches via its own forwarded inputs when it calls a
// sibling (including itself). The returned Output is phi's new output
// reinterpreted as a Lambda-typed handle so it can be used anywhere a plain
// lambda output would be (as an Apply's callee, for instance) without the
// caller needing to special-case recursion-environment lambdas.
func (b *Builder) MoveLambdaToRecEnv(phi Node[Phi], lambda Node[Lambda]) (ArgumentRef, Output[Lambda]) {
	region := b.Region(phi.id)
	if region != b.current {
		panic(fmt.Errorf("%w: MoveLambdaToRecEnv must run in %s's own region", ErrNodeNotInRegion, phi))
	}
	if !containsNode(b.Nodes(region), lambda.id) {
		panic(fmt.Errorf("%w: %s not moved into %s yet", ErrNodeNotInRegion, lambda, phi))
	}
	kind := kindAs[Phi](b, phi.id)
	if _, bound := kind.Lambdas[lambda.id]; bound {
		panic(fmt.Errorf("rvsdg: %s already bound in %s", lambda, phi))
	}

	out := b.addOutputAny(phi.id)
	arg := b.AddArgument()
	kind.Lambdas[lambda.id] = RecEnvBinding{Arg: arg.ID, Out: out}

	exported := Output[Lambda]{Node: Node[Lambda]{id: phi.id}, ID: out}
	return arg, exported
}
