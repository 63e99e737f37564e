// Package wyrmcontext implements name interning and the side tables that
// map IR entities to their interned names and scopes map names back to
// entities.
//
// A Context is ordinarily created once per Module (see ir.NewModule) and
// threaded explicitly rather than kept as process-wide global state; this
// keeps multiple Modules from aliasing each other's scope tables without
// requiring any Module-identity bookkeeping. Nothing prevents a caller from
// sharing one Context across several Modules, since every scope table is
// itself keyed by the owning entity's identity.
package wyrmcontext

// Symbol is a stable, comparable handle to an interned string. Two Symbols
// compare equal (by ==) iff they were interned from equal strings by the
// same Context. The zero Symbol denotes "no name".
type Symbol struct {
	p *string
}

// String returns the interned text, or "" for the zero Symbol.
func (s Symbol) String() string {
	if s.p == nil {
		return ""
	}
	return *s.p
}

// IsZero reports whether s denotes "no name".
func (s Symbol) IsZero() bool { return s.p == nil }

// Context owns the process's (or a Module's) interned strings, the
// entity-identity -> name table used for dumping, and the scope tables used
// for name lookup.
type Context struct {
	storage map[string]*string

	// names is the NameTable: entity identity -> interned name. Entities
	// are keyed by their own pointer, so storage must never move or copy
	// the pointee once created (see the stability invariant in ir).
	names map[any]Symbol

	moduleScopes   map[any]*ModuleScope
	functionScopes map[any]*FunctionScope
}

// New returns a fresh, empty Context.
func New() *Context {
	return &Context{
		storage:        make(map[string]*string),
		names:          make(map[any]Symbol),
		moduleScopes:   make(map[any]*ModuleScope),
		functionScopes: make(map[any]*FunctionScope),
	}
}

// Intern returns the canonical Symbol for s, storing s the first time it is
// seen. Interning "" always returns the zero Symbol.
func (c *Context) Intern(s string) Symbol {
	if s == "" {
		return Symbol{}
	}
	if p, ok := c.storage[s]; ok {
		return Symbol{p}
	}
	cp := s
	c.storage[s] = &cp
	return Symbol{&cp}
}

// SetName records that entity (the identity of an IR entity, i.e. a
// pointer) is named sym. Passing the zero Symbol removes any existing
// entry, since an unnamed entity has nothing to resolve in the NameTable.
func (c *Context) SetName(entity any, sym Symbol) {
	if sym.IsZero() {
		delete(c.names, entity)
		return
	}
	c.names[entity] = sym
}

// NameOf resolves entity's interned name, if it has one.
func (c *Context) NameOf(entity any) (Symbol, bool) {
	sym, ok := c.names[entity]
	return sym, ok
}

// ModuleScope is the per-Module name -> entity lookup table, partitioned by
// category. Values are stored as `any` since wyrmcontext has no dependency
// on the ir package's concrete entity types.
type ModuleScope struct {
	Functions map[Symbol]any
	Globals   map[Symbol]any
}

// FunctionScope is the per-Function name -> entity lookup table.
type FunctionScope struct {
	Labels map[Symbol]any
	Locals map[Symbol]any
}

// ModuleScope returns the scope table for owner (a *ir.Module, by
// identity), creating it on first use.
func (c *Context) ModuleScope(owner any) *ModuleScope {
	ms, ok := c.moduleScopes[owner]
	if !ok {
		ms = &ModuleScope{Functions: make(map[Symbol]any), Globals: make(map[Symbol]any)}
		c.moduleScopes[owner] = ms
	}
	return ms
}

// FunctionScope returns the scope table for owner (a *ir.Function, by
// identity), creating it on first use.
func (c *Context) FunctionScope(owner any) *FunctionScope {
	fs, ok := c.functionScopes[owner]
	if !ok {
		fs = &FunctionScope{Labels: make(map[Symbol]any), Locals: make(map[Symbol]any)}
		c.functionScopes[owner] = fs
	}
	return fs
}
