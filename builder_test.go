package rvsdg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simvux/rvsdg"
)

func TestNewStartsWithAnEmptyOmega(t *testing.T) {
	b, omega := rvsdg.New()
	region := b.Region(omega.ID())
	assert.Empty(t, b.Nodes(region))
	assert.Equal(t, uint32(0), countSeq(b.Arguments(region)))
	assert.Equal(t, uint32(0), countSeq(b.Results(region)))
}

func TestAddInputForwardsIntoTheChildRegion(t *testing.T) {
	b, _ := rvsdg.New()
	out := rvsdg.AddLambdaNode(b)
	lambda := out.Node
	in := rvsdg.AddInput(b, lambda)
	region := b.Region(lambda.ID())

	require.Equal(t, uint32(1), countSeq(b.Arguments(region)))
	arg := rvsdg.InputAsArgument(b, in)
	assert.Equal(t, region, arg.Region)
	assert.Equal(t, rvsdg.ArgumentID(0), arg.ID)

	node, inID, ok := b.ArgumentAsInput(arg)
	require.True(t, ok)
	assert.Equal(t, lambda.ID(), node)
	assert.Equal(t, in.ID, inID)
}

func TestArgumentAsInputRejectsIntrinsicArguments(t *testing.T) {
	b, _ := rvsdg.New()
	resultRef, delta := rvsdg.AddDeltaNode(b)
	region := b.Region(delta.Node.ID())
	// the delta's region starts with its own result and no forwarded
	// input, so there is no argument at all yet to mistake for one.
	assert.Equal(t, region, resultRef.Region)
	assert.Equal(t, uint32(0), countSeq(b.Arguments(region)))

	// an argument added inside the region itself is intrinsic to it, not a
	// forwarded input of the delta node.
	intrinsic := rvsdg.InRegion(b, region, func(b *rvsdg.Builder) rvsdg.ArgumentRef {
		return b.AddArgument()
	})
	_, _, ok := b.ArgumentAsInput(intrinsic)
	assert.False(t, ok)
}

func TestMoveNodeRelocatesBetweenRegions(t *testing.T) {
	b, omega := rvsdg.New()
	root := b.Region(omega.ID())
	num := rvsdg.AddNumberNode(b, 7)
	out := rvsdg.AddLambdaNode(b)
	lambdaRegion := b.Region(out.Node.ID())

	require.Contains(t, b.Nodes(root), num.Node.ID())
	b.MoveNode(num.Node.ID(), lambdaRegion)
	assert.NotContains(t, b.Nodes(root), num.Node.ID())
	assert.Contains(t, b.Nodes(lambdaRegion), num.Node.ID())
}

func TestMoveNodeOutsideCurrentRegionPanics(t *testing.T) {
	b, _ := rvsdg.New()
	num := rvsdg.AddNumberNode(b, 1)
	out := rvsdg.AddLambdaNode(b)
	lambdaRegion := b.Region(out.Node.ID())

	rvsdg.InRegionE(b, lambdaRegion, func(b *rvsdg.Builder) {
		assert.Panics(t, func() {
			b.MoveNode(num.Node.ID(), lambdaRegion)
		})
	})
}

func TestRegionPanicsForNonSingleRegionNode(t *testing.T) {
	b, _ := rvsdg.New()
	num := rvsdg.AddNumberNode(b, 1)
	assert.Panics(t, func() {
		b.Region(num.Node.ID())
	})
}

func TestInRegionRestoresCursorAfterPanic(t *testing.T) {
	b, omega := rvsdg.New()
	root := b.Region(omega.ID())
	out := rvsdg.AddLambdaNode(b)
	lambdaRegion := b.Region(out.Node.ID())

	assert.Panics(t, func() {
		rvsdg.InRegionE(b, lambdaRegion, func(b *rvsdg.Builder) {
			panic("boom")
		})
	})
	assert.Equal(t, root, b.CurrentRegion())
}

func countSeq[T any](seq func(func(T) bool)) uint32 {
	var n uint32
	for range seq {
		n++
	}
	return n
}
