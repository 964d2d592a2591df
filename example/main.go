// Command example builds a small translation unit - a lambda that captures
// a number from its enclosing scope and applies a placeholder operator to
// it - and prints its YAML snapshot, demonstrating the builder API end to
// end.
package main

import (
	"fmt"
	"os"

	"github.com/simvux/rvsdg"
	"github.com/simvux/rvsdg/rvsdgyaml"
)

func main() {
	b, omega := rvsdg.New()

	captured := rvsdg.AddNumberNode(b, 21)
	b.AddSymbol(captured.Node.ID(), "captured")

	out := rvsdg.AddLambdaNode(b)
	b.AddSymbol(out.Node.ID(), "doubler")
	body := b.Region(out.Node.ID())

	rvsdg.InRegionE(b, body, func(b *rvsdg.Builder) {
		op := rvsdg.AddPlaceholderNode(b, "double")
		apply := rvsdg.AddApplyNode(b)
		b.Connect(op.AsOrigin(), apply.AsUser())

		arg := rvsdg.AddInput(b, apply.Node)
		b.Connect(captured.AsOrigin(), arg.AsUser())
	})

	doc := b.Document(omega)
	bytes, err := rvsdgyaml.Emitter{}.Emit(doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "emit:", err)
		os.Exit(1)
	}
	os.Stdout.Write(bytes)
}
