package rvsdg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simvux/rvsdg"
)

func TestHashIsStableAcrossSymbolNames(t *testing.T) {
	b1, omega1 := rvsdg.New()
	n1 := rvsdg.AddNumberNode(b1, 5).Node
	b1.AddSymbol(n1.ID(), "five")

	b2, omega2 := rvsdg.New()
	b2Num := rvsdg.AddNumberNode(b2, 5).Node
	b2.AddSymbol(b2Num.ID(), "different_name_entirely")

	h1, err := b1.Hash(b1.Region(omega1.ID()))
	require.NoError(t, err)
	h2, err := b2.Hash(b2.Region(omega2.ID()))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestHashDiffersForDifferentValues(t *testing.T) {
	b1, omega1 := rvsdg.New()
	rvsdg.AddNumberNode(b1, 5)
	b2, omega2 := rvsdg.New()
	rvsdg.AddNumberNode(b2, 6)

	h1, err := b1.Hash(b1.Region(omega1.ID()))
	require.NoError(t, err)
	h2, err := b2.Hash(b2.Region(omega2.ID()))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashDiffersForDifferentEdges(t *testing.T) {
	b, omega := rvsdg.New()
	root := b.Region(omega.ID())
	num := rvsdg.AddNumberNode(b, 1)
	before, err := b.Hash(root)
	require.NoError(t, err)

	lambda := rvsdg.AddLambdaNode(b).Node
	lambdaRegion := b.Region(lambda.ID())
	rvsdg.InRegionE(b, lambdaRegion, func(b *rvsdg.Builder) {
		apply := rvsdg.AddApplyNode(b)
		b.Connect(num.AsOrigin(), apply.AsUser())
	})

	after, err := b.Hash(root)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}
