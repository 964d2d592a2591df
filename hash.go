package rvsdg

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

// hashKey is a fixed 32-byte key: a stable key turns HighwayHash into a
// pure structural digest rather than a keyed MAC, which is all a node or
// region identity hash needs.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash computes a structural digest of region r: its argument/result
// counts, its nodes (kind tag and port counts, recursively through any
// regions they own) and its edges, in node/edge order. Two regions with the
// same shape hash identically regardless of the symbol names or ids
// assigned to their nodes, which makes it useful for deduplicating
// structurally-equivalent subgraphs (e.g. two Number nodes with the same
// value) or for snapshot comparisons in tests.
func (b *Builder) Hash(r RegionID) (uint64, error) {
	var buf []byte
	buf = b.appendRegionHashInput(buf, r)
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(buf)
	return hash.Sum64(), err
}

func (b *Builder) appendRegionHashInput(buf []byte, r RegionID) []byte {
	rec := b.region(r)
	buf = appendUint32(buf, rec.arguments)
	buf = appendUint32(buf, rec.results)
	local := map[AnyNode]AnyNode{}
	for i, n := range b.nodePool.Slice(rec.nodes) {
		local[n] = AnyNode(i)
		buf = b.appendNodeHashInput(buf, n)
	}
	// Edge endpoints are hashed by position within r (a node's index in r's
	// node list, plus the port index), not by raw node or region ids.
	for _, e := range rec.edges {
		o, u := e.Origin, e.User
		o.node, o.region = local[o.node], 0
		u.node, u.region = local[u.node], 0
		buf = append(buf, byte(len(o.String())))
		buf = append(buf, o.String()...)
		buf = append(buf, byte(len(u.String())))
		buf = append(buf, u.String()...)
	}
	return buf
}

func (b *Builder) appendNodeHashInput(buf []byte, n AnyNode) []byte {
	rec := b.node(n)
	kind := rec.kind.NodeType()
	buf = append(buf, byte(len(kind)))
	buf = append(buf, kind...)
	buf = appendUint32(buf, rec.inputs)
	buf = appendUint32(buf, rec.outputs)
	if num, ok := rec.kind.(*Number); ok {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(num.Value))
	}
	for _, r := range b.regionPool.Slice(rec.regions) {
		buf = b.appendRegionHashInput(buf, r)
	}
	return buf
}

func appendUint32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}
