// Package rvsdgyaml is the default Emitter for rvsdg.Document, serializing a
// translation unit snapshot to YAML with gopkg.in/yaml.v3.
package rvsdgyaml

import (
	"gopkg.in/yaml.v3"

	"github.com/simvux/rvsdg"
)

// Emitter serializes an rvsdg.Document to YAML.
type Emitter struct{}

// Emit marshals doc to YAML.
func (Emitter) Emit(doc *rvsdg.Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

var _ rvsdg.Emitter = Emitter{}
