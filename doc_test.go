package rvsdg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simvux/rvsdg"
	"github.com/simvux/rvsdg/rvsdgyaml"
)

func TestDocumentReflectsStructure(t *testing.T) {
	b, omega := rvsdg.New()
	num := rvsdg.AddNumberNode(b, 3).Node
	b.AddSymbol(num.ID(), "three")

	doc := b.Document(omega)
	require.Len(t, doc.Root.Nodes, 1)
	assert.Equal(t, "simple", doc.Root.Nodes[0].Kind)
	assert.Contains(t, doc.Root.Nodes[0].Path, "three")
}

func TestDocumentNestsChildRegions(t *testing.T) {
	b, omega := rvsdg.New()
	lambda := rvsdg.AddLambdaNode(b).Node
	b.AddSymbol(lambda.ID(), "f")
	lambdaRegion := b.Region(lambda.ID())
	rvsdg.InRegionE(b, lambdaRegion, func(b *rvsdg.Builder) {
		rvsdg.AddNumberNode(b, 1)
	})

	doc := b.Document(omega)
	require.Len(t, doc.Root.Nodes, 1)
	lambdaDoc := doc.Root.Nodes[0]
	assert.Equal(t, "lambda", lambdaDoc.Kind)
	require.Len(t, lambdaDoc.Regions, 1)
	assert.Len(t, lambdaDoc.Regions[0].Nodes, 1)
}

func TestYamlEmitterProducesNonEmptyOutput(t *testing.T) {
	b, omega := rvsdg.New()
	rvsdg.AddNumberNode(b, 1)
	doc := b.Document(omega)

	out, err := rvsdgyaml.Emitter{}.Emit(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, string(out), "kind: simple")
}
