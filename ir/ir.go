// Package ir defines the mid-level intermediate representation: Module,
// Function, BasicBlock, SymReg, and the Instruction sum type.
//
// Every entity is heap-allocated individually and referenced only by
// pointer; containers that hold entities (Module.Funcs, Function.BBlocks,
// BasicBlock.Instrs, ...) grow by appending pointers, never by relocating
// the entities themselves, so references taken before a container grows
// remain valid for the lifetime of the owning Module. This is the "arena of
// pointers" rendering of the stability invariant: Go already gives heap
// objects a stable address, so no hand-rolled arena is needed to get it.
package ir

import "github.com/wyrmlang/wyrmmir/internal/wyrmcontext"

// Module is the top-level container: an ordered sequence of Functions and
// an ordered sequence of global SymRegs, plus a name and the Context used
// to intern all names reachable from it.
type Module struct {
	Name    string
	Funcs   []*Function
	Globals []*SymReg

	ctx *wyrmcontext.Context
}

// NewModule returns an empty Module named name, with a fresh Context.
func NewModule(name string) *Module {
	return NewModuleWithContext(name, wyrmcontext.New())
}

// NewModuleWithContext returns an empty Module named name, using the
// supplied Context to intern names. Sharing a Context across Modules is
// safe: every scope table the Context keeps is itself keyed by the owning
// Module's or Function's identity.
func NewModuleWithContext(name string, ctx *wyrmcontext.Context) *Module {
	return &Module{Name: name, ctx: ctx}
}

// Context returns the Module's interning Context.
func (m *Module) Context() *wyrmcontext.Context { return m.ctx }

// Function is an ordered sequence of BasicBlocks and an ordered sequence of
// local SymRegs (its locals), owned by a Module. Parameters are recorded
// only as interned names in ArgNames; they get no entry in Locals.
type Function struct {
	Module   *Module
	Name     wyrmcontext.Symbol
	ArgNames []wyrmcontext.Symbol

	BBlocks []*BasicBlock
	Locals  []*SymReg
}

// NameString returns f's interned name as a plain string.
func (f *Function) NameString() string { return f.Name.String() }

// BasicBlock is an ordered, append-only sequence of Instructions, owned by
// exactly one Function.
type BasicBlock struct {
	Func    *Function
	Label   wyrmcontext.Symbol
	Labeled bool
	Instrs  []Instruction
}

// NameString returns b's label text, or "" if b is unlabeled.
func (b *BasicBlock) NameString() string { return b.Label.String() }

// Index returns b's position within its Function's BBlocks, the way
// BasicBlock.Index works in the old ssa package this is modeled on.
func (b *BasicBlock) Index() int {
	for i, bb := range b.Func.BBlocks {
		if bb == b {
			return i
		}
	}
	return -1
}

// SymReg is a symbolic register: a named or anonymous variable, owned by
// exactly one of a Module (a global) or a Function (a local). Identity, not
// value, is significant: two SymRegs are equal iff they are the same
// entity (the same pointer).
type SymReg struct {
	Name wyrmcontext.Symbol

	owningModule   *Module
	owningFunction *Function
}

// NameString returns r's interned name, or "" if r is unnamed.
func (r *SymReg) NameString() string { return r.Name.String() }

// IsGlobal reports whether r is a Module-scoped global.
func (r *SymReg) IsGlobal() bool { return r.owningModule != nil }

// IsLocal reports whether r is a Function-scoped local.
func (r *SymReg) IsLocal() bool { return r.owningFunction != nil }

// Module returns the owning Module of a global SymReg, or nil for a local.
func (r *SymReg) Module() *Module { return r.owningModule }

// Function returns the owning Function of a local SymReg, or nil for a
// global.
func (r *SymReg) Function() *Function { return r.owningFunction }

// LocalIndex returns r's 1-based position within its owning Function's
// Locals list, used to render unnamed local registers as %N. Returns 0 if
// r is not a local of any function.
func (r *SymReg) LocalIndex() int {
	if r.owningFunction == nil {
		return 0
	}
	for i, l := range r.owningFunction.Locals {
		if l == r {
			return i + 1
		}
	}
	return 0
}

// Value is an instruction operand: either a reference to a SymReg or an
// Imm constant.
type Value interface {
	isValue()
}

func (*SymReg) isValue() {}

// Imm is a 32-bit signed integer constant value.
type Imm int32

func (Imm) isValue() {}
