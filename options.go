package rvsdg

// Option configures a Builder at construction time, following the
// functional-options convention (WithPlugin, WithSymbolPolicy).
type Option func(*Builder)

// BuilderPlugin observes node and edge construction as it happens. Plugins
// run in registration order; a plugin must not mutate the builder it is
// observing (no AddNode/Connect/etc. from inside a hook). Each hook fires
// after the triggering operation has finished its own table updates.
type BuilderPlugin interface {
	// AfterAddNode is called once a node has been fully committed to the
	// node table, after its initializer closure has returned.
	AfterAddNode(n AnyNode)

	// AfterConnect is called once an edge has been planted, after all
	// intermediate forwarding inputs/arguments for a multi-region hop have
	// been created.
	AfterConnect(origin Origin, user User)
}

// WithPlugin registers a BuilderPlugin to observe construction.
func WithPlugin(p BuilderPlugin) Option {
	return func(b *Builder) {
		if p != nil {
			b.plugins = append(b.plugins, p)
		}
	}
}

// SymbolPolicy names a node for export when no explicit symbol was
// registered with AddSymbol.
type SymbolPolicy func(AnyNode) string

// WithSymbolPolicy overrides the default "nodeN" fallback naming used by
// Document's qualified paths for nodes without a registered symbol. Panic
// messages always print raw ids.
func WithSymbolPolicy(f SymbolPolicy) Option {
	return func(b *Builder) {
		if f != nil {
			b.symbolPolicy = f
		}
	}
}
