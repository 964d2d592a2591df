package rvsdg

import "sort"

// EdgeDoc is one edge in a serializable snapshot of a region, named by the
// qualified path of its origin and user rather than by raw ids.
type EdgeDoc struct {
	Origin string `yaml:"origin"`
	User   string `yaml:"user"`
}

// RegionDoc is a serializable snapshot of one region: its path, its
// argument/result counts, the nodes it directly contains, and its edges.
type RegionDoc struct {
	Path      string     `yaml:"path"`
	Arguments uint32     `yaml:"arguments"`
	Results   uint32     `yaml:"results"`
	Nodes     []NodeDoc  `yaml:"nodes,omitempty"`
	Edges     []EdgeDoc  `yaml:"edges,omitempty"`
}

// NodeDoc is a serializable snapshot of one node: its qualified path, its
// kind tag, its port counts, and the regions it owns (recursively).
type NodeDoc struct {
	Path    string      `yaml:"path"`
	Kind    string      `yaml:"kind"`
	Inputs  uint32      `yaml:"inputs"`
	Outputs uint32      `yaml:"outputs"`
	Regions []RegionDoc `yaml:"regions,omitempty"`
}

// Document is the root of a translation unit's serializable snapshot.
type Document struct {
	Root RegionDoc `yaml:"root"`
}

// Emitter turns a Document into a serialized form. The default
// implementation (package rvsdgyaml) writes YAML; an Emitter could just as
// easily target JSON, DOT, or a binary wire format.
type Emitter interface {
	Emit(doc *Document) ([]byte, error)
}

// pathOf qualifies a node name by walking the chain of container nodes from
// n up to Omega's region and joining each node's symbol (or its "nodeN"
// fallback) with a dot, outermost first. Omega itself is not a segment.
func (b *Builder) pathOf(n AnyNode) string {
	var segments []string
	cur := n
	for {
		segments = append([]string{b.symbolOrFallback(cur)}, segments...)
		region := b.node(cur).region
		rec := b.region(region)
		if !rec.hasContainer {
			break
		}
		cur = rec.containerNode
	}
	out := segments[0]
	for _, s := range segments[1:] {
		out += "." + s
	}
	return out
}

// Document builds a full, order-preserving snapshot of the translation unit
// rooted at Omega, suitable for handing to an Emitter.
func (b *Builder) Document(omega Node[Omega]) *Document {
	root := b.Region(omega.id)
	return &Document{Root: b.regionDoc(root)}
}

func (b *Builder) regionDoc(r RegionID) RegionDoc {
	rec := b.region(r)
	doc := RegionDoc{
		Path:      r.String(),
		Arguments: rec.arguments,
		Results:   rec.results,
	}
	if rec.hasContainer {
		doc.Path = b.pathOf(rec.containerNode) + "." + r.String()
	}
	for _, n := range b.nodePool.Slice(rec.nodes) {
		doc.Nodes = append(doc.Nodes, b.nodeDoc(n))
	}
	for _, e := range rec.edges {
		doc.Edges = append(doc.Edges, EdgeDoc{
			Origin: b.originPath(r, e.Origin),
			User:   b.userPath(r, e.User),
		})
	}
	return doc
}

func (b *Builder) nodeDoc(n AnyNode) NodeDoc {
	rec := b.node(n)
	doc := NodeDoc{
		Path:    b.pathOf(n),
		Kind:    rec.kind.NodeType(),
		Inputs:  rec.inputs,
		Outputs: rec.outputs,
	}
	for _, r := range b.regionPool.Slice(rec.regions) {
		doc.Regions = append(doc.Regions, b.regionDoc(r))
	}
	return doc
}

func (b *Builder) originPath(in RegionID, o Origin) string {
	if o.isArgument {
		return o.region.String() + "." + o.arg.String()
	}
	return b.pathOf(o.node) + "." + o.out.String()
}

func (b *Builder) userPath(in RegionID, u User) string {
	if u.isResult {
		return u.region.String() + "." + u.res.String()
	}
	return b.pathOf(u.node) + "." + u.in.String()
}

// SymbolsSorted returns every registered (node, symbol) pair in symbol
// order, a convenience for emitters or tests that want a deterministic
// listing.
func (b *Builder) SymbolsSorted() []struct {
	Node   AnyNode
	Symbol string
} {
	out := make([]struct {
		Node   AnyNode
		Symbol string
	}, 0, len(b.symbols))
	for n, s := range b.symbols {
		out = append(out, struct {
			Node   AnyNode
			Symbol string
		}{Node: n, Symbol: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
