package rvsdg

import (
	"fmt"
	"iter"

	"github.com/simvux/rvsdg/idlist"
)

type nodeRecord struct {
	region  RegionID
	inputs  uint32
	outputs uint32
	regions idlist.List[RegionID]
	kind    NodeKind
}

type regionRecord struct {
	hasContainer  bool
	containerNode AnyNode

	arguments uint32
	results   uint32

	nodes idlist.List[AnyNode]
	edges []Edge
}

// Builder holds every node, region, edge and symbol of one translation
// unit, plus the cursor (current region) that AddNode, AddInput and Connect
// all operate against. It is not safe for concurrent use: a translation
// unit is built up by a single goroutine, one mutation at a time, exactly
// as its regions nest.
type Builder struct {
	nodes   []nodeRecord
	regions []regionRecord

	nodePool   idlist.Pool[AnyNode]
	regionPool idlist.Pool[RegionID]

	symbols      map[AnyNode]string
	symbolPolicy SymbolPolicy

	current RegionID

	plugins []BuilderPlugin
}

// New creates an empty translation unit and returns its builder together
// with the Omega root node. The builder's cursor starts inside Omega's own
// region.
func New(opts ...Option) (*Builder, Node[Omega]) {
	b := &Builder{symbols: map[AnyNode]string{}}
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}
	// Omega is the very first node and owns region 0: the builder's
	// zero-valued `current` (RegionID 0) is only ever valid because
	// AddRegion below allocates region 0 before AddNode commits the node
	// record into the current region.
	omega := AddNode(b, func(b *Builder, self Node[Omega]) (Omega, []RegionID) {
		r := b.AddRegion(0, 0)
		return Omega{}, []RegionID{r}
	})
	// Region 0 is the root: it has no container node, and Omega is not one
	// of the nodes it contains. AddNode recorded both, so undo them here.
	root := b.region(b.Region(omega.id))
	root.hasContainer = false
	root.nodes = b.nodePool.Remove(root.nodes, 0)
	return b, omega
}

// node looks up n's record, panicking with ErrUnknownNode if n does not
// resolve to a live node (out of range of everything ever committed).
func (b *Builder) node(n AnyNode) *nodeRecord {
	if int(n) < 0 || int(n) >= len(b.nodes) {
		panic(fmt.Errorf("%w: %s", ErrUnknownNode, n))
	}
	return &b.nodes[n]
}

// region looks up r's record, panicking with ErrUnknownRegion if r does not
// resolve to a live region.
func (b *Builder) region(r RegionID) *regionRecord {
	if int(r) < 0 || int(r) >= len(b.regions) {
		panic(fmt.Errorf("%w: %s", ErrUnknownRegion, r))
	}
	return &b.regions[r]
}

// AddRegion allocates a fresh region with the given number of pre-existing
// arguments and results and returns its id. Most callers go through a node
// constructor (AddLambdaNode and friends) instead of calling this directly.
func (b *Builder) AddRegion(arguments, results uint32) RegionID {
	id := RegionID(len(b.regions))
	b.regions = append(b.regions, regionRecord{arguments: arguments, results: results})
	return id
}

// SwitchRegion moves the builder's cursor to r. Prefer InRegion, which
// restores the previous cursor even if the body panics.
func (b *Builder) SwitchRegion(r RegionID) {
	b.current = r
}

// CurrentRegion returns the region the builder's cursor currently points at.
func (b *Builder) CurrentRegion() RegionID {
	return b.current
}

// InRegion runs f with the cursor switched to r, restoring the previous
// cursor before returning (including when f panics).
func InRegion[T any](b *Builder, r RegionID, f func(*Builder) T) T {
	prev := b.current
	defer func() { b.current = prev }()
	b.current = r
	return f(b)
}

// InRegionE is InRegion for closures with no useful return value.
func InRegionE(b *Builder, r RegionID, f func(*Builder)) {
	InRegion(b, r, func(b *Builder) struct{} {
		f(b)
		return struct{}{}
	})
}

// AddNode commits a new node of kind K to the node table, contained in the
// builder's current region. init is handed the node's own (not yet
// committed) typed handle so it can allocate and return the region(s) the
// node owns; init must not itself add any other node to the table.
func AddNode[K NodeKind](b *Builder, init func(*Builder, Node[K]) (K, []RegionID)) Node[K] {
	id := AnyNode(len(b.nodes))
	handle := Node[K]{id: id}

	before := len(b.nodes)
	kind, owned := init(b, handle)
	if len(b.nodes) != before {
		panic(fmt.Errorf("%w: %s", ErrNodeInitEscaped, id))
	}

	rec := nodeRecord{region: b.current, kind: any(&kind).(NodeKind)}
	for _, r := range owned {
		rec.regions = b.regionPool.Push(rec.regions, r)
		b.region(r).hasContainer = true
		b.region(r).containerNode = id
	}
	b.nodes = append(b.nodes, rec)
	b.region(b.current).nodes = b.nodePool.Push(b.region(b.current).nodes, id)

	for _, p := range b.plugins {
		p.AfterAddNode(id)
	}
	return handle
}

// AddSymbol attaches a human-readable name to a node, used by Document's
// qualified paths in place of the "nodeN" fallback.
func (b *Builder) AddSymbol(n AnyNode, name string) {
	b.symbols[n] = name
}

// Symbol returns the name registered for n, if any.
func (b *Builder) Symbol(n AnyNode) (string, bool) {
	s, ok := b.symbols[n]
	return s, ok
}

func (b *Builder) symbolOrFallback(n AnyNode) string {
	if s, ok := b.symbols[n]; ok {
		return s
	}
	if b.symbolPolicy != nil {
		return b.symbolPolicy(n)
	}
	return n.String()
}

// kindAs downcasts node n's stored kind to *K, panicking with ErrWrongKind
// if n was not built as a K.
func kindAs[K NodeKind](b *Builder, n AnyNode) *K {
	k, ok := any(b.node(n).kind).(*K)
	if !ok {
		panic(fmt.Errorf("%w: %s is %T, not %T", ErrWrongKind, n, b.node(n).kind, new(K)))
	}
	return k
}

// NodeType returns the node-kind tag of n, e.g. "lambda" or "simple".
func (b *Builder) NodeType(n AnyNode) string {
	return b.node(n).kind.NodeType()
}

func (b *Builder) addInputAny(n AnyNode) InputID {
	rec := b.node(n)
	id := InputID(rec.inputs)
	rec.inputs++
	for _, r := range b.regionPool.Slice(rec.regions) {
		b.region(r).arguments++
	}
	return id
}

func (b *Builder) addOutputAny(n AnyNode) OutputID {
	rec := b.node(n)
	id := OutputID(rec.outputs)
	rec.outputs++
	return id
}

// AddInput adds a new input to node n, incrementing the argument count of
// every region n owns (the port-forwarding invariant: n's inputs are always
// the trailing arguments of n's child region(s)).
func AddInput[K NodeKind](b *Builder, n Node[K]) Input[K] {
	return Input[K]{Node: n, ID: b.addInputAny(n.id)}
}

// AddOutput adds a new output to node n.
func AddOutput[K NodeKind](b *Builder, n Node[K]) Output[K] {
	return Output[K]{Node: n, ID: b.addOutputAny(n.id)}
}

// AddArgument adds a new argument to the builder's current region.
func (b *Builder) AddArgument() ArgumentRef {
	r := b.region(b.current)
	id := ArgumentID(r.arguments)
	r.arguments++
	return ArgumentRef{Region: b.current, ID: id}
}

// AddResult adds a new result to the builder's current region.
func (b *Builder) AddResult() ResultRef {
	r := b.region(b.current)
	id := ResultID(r.results)
	r.results++
	return ResultRef{Region: b.current, ID: id}
}

// MoveNode relocates n from the builder's current region to dst, appending
// it to dst's node list. It panics if n is not a member of the current
// region.
func (b *Builder) MoveNode(n AnyNode, dst RegionID) {
	cur := b.region(b.current)
	nodes := b.nodePool.Slice(cur.nodes)
	idx := -1
	for i, id := range nodes {
		if id == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Errorf("%w: %s not in %s", ErrNodeNotInRegion, n, b.current))
	}
	cur.nodes = b.nodePool.Remove(cur.nodes, idx)
	b.node(n).region = dst
	dstRec := b.region(dst)
	dstRec.nodes = b.nodePool.Push(dstRec.nodes, n)
}

// Region returns the single region node n owns, panicking if n owns zero or
// more than one (use Regions for nodes with an arbitrary region count).
func (b *Builder) Region(n AnyNode) RegionID {
	regs := b.regionPool.Slice(b.node(n).regions)
	if len(regs) != 1 {
		panic(fmt.Errorf("%w: %s owns %d", ErrNotSingleRegion, n, len(regs)))
	}
	return regs[0]
}

// Regions returns every region n owns, in allocation order.
func (b *Builder) Regions(n AnyNode) []RegionID {
	return b.regionPool.Slice(b.node(n).regions)
}

// Inputs enumerates the input ids of node n, in order.
func (b *Builder) Inputs(n AnyNode) iter.Seq[InputID] {
	count := b.node(n).inputs
	return func(yield func(InputID) bool) {
		for i := uint32(0); i < count; i++ {
			if !yield(InputID(i)) {
				return
			}
		}
	}
}

// Outputs enumerates the output ids of node n, in order.
func (b *Builder) Outputs(n AnyNode) iter.Seq[OutputID] {
	count := b.node(n).outputs
	return func(yield func(OutputID) bool) {
		for i := uint32(0); i < count; i++ {
			if !yield(OutputID(i)) {
				return
			}
		}
	}
}

// Arguments enumerates the argument ids of region r, in order.
func (b *Builder) Arguments(r RegionID) iter.Seq[ArgumentID] {
	count := b.region(r).arguments
	return func(yield func(ArgumentID) bool) {
		for i := uint32(0); i < count; i++ {
			if !yield(ArgumentID(i)) {
				return
			}
		}
	}
}

// Results enumerates the result ids of region r, in order.
func (b *Builder) Results(r RegionID) iter.Seq[ResultID] {
	count := b.region(r).results
	return func(yield func(ResultID) bool) {
		for i := uint32(0); i < count; i++ {
			if !yield(ResultID(i)) {
				return
			}
		}
	}
}

// Nodes enumerates the nodes directly contained in region r, in the order
// they were added or moved in. The returned slice aliases the builder's
// internal pool and must not be retained across a further mutation.
func (b *Builder) Nodes(r RegionID) []AnyNode {
	return b.nodePool.Slice(b.region(r).nodes)
}

// Edges returns the edges owned by region r. The returned slice aliases the
// builder's internal storage and must not be retained across a further
// mutation.
func (b *Builder) Edges(r RegionID) []Edge {
	return b.region(r).edges
}

func (b *Builder) inputAsArgumentAny(n AnyNode, in InputID) ArgumentRef {
	region := b.Region(n)
	r := b.region(region)
	offset := r.arguments - b.node(n).inputs
	return ArgumentRef{Region: region, ID: ArgumentID(offset) + ArgumentID(in)}
}

// InputAsArgument converts input `in` of node n into the argument of n's
// single child region that the port-forwarding invariant says it forwards
// to.
func InputAsArgument[K NodeKind](b *Builder, in Input[K]) ArgumentRef {
	return b.inputAsArgumentAny(in.Node.id, in.ID)
}

// ArgumentAsInput is the inverse of InputAsArgument: given a region and one
// of its arguments, it reports the (node, input) pair the argument forwards
// from, if the argument falls within the forwarded trailing range. ok is
// false for an argument intrinsic to the region itself (not a forwarded
// input), or if the region has no container node at all (Omega's region).
func (b *Builder) ArgumentAsInput(ref ArgumentRef) (n AnyNode, in InputID, ok bool) {
	r := b.region(ref.Region)
	if !r.hasContainer {
		return 0, 0, false
	}
	container := r.containerNode
	offset := r.arguments - b.node(container).inputs
	if uint32(ref.ID) < offset {
		return 0, 0, false
	}
	return container, InputID(uint32(ref.ID) - offset), true
}

func (b *Builder) rawConnectIn(region RegionID, origin Origin, user User) {
	rec := b.region(region)
	if origin.isArgument {
		if origin.region != region {
			panic(fmt.Errorf("%w: origin argument %s outside %s", ErrNodeNotInRegion, origin, region))
		}
	} else if !containsNode(b.nodePool.Slice(rec.nodes), origin.node) {
		panic(fmt.Errorf("%w: origin %s outside %s", ErrNodeNotInRegion, origin, region))
	}
	if user.isResult {
		if user.region != region {
			panic(fmt.Errorf("%w: user result %s outside %s", ErrNodeNotInRegion, user, region))
		}
	} else if !containsNode(b.nodePool.Slice(rec.nodes), user.node) {
		panic(fmt.Errorf("%w: user %s outside %s", ErrNodeNotInRegion, user, region))
	}
	rec.edges = append(rec.edges, Edge{Origin: origin, User: user})
}

// RawConnect plants an edge directly in the builder's current region,
// without any of the upward forwarding Connect/TryConnect perform. origin
// and user must already be locally visible in the current region: an
// output/input must name a node directly contained in it, and an
// argument/result must name the region itself. It panics otherwise.
func (b *Builder) RawConnect(origin Origin, user User) {
	b.rawConnectIn(b.current, origin, user)
}

func containsNode(nodes []AnyNode, n AnyNode) bool {
	for _, id := range nodes {
		if id == n {
			return true
		}
	}
	return false
}
