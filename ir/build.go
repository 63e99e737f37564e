package ir

import "github.com/wyrmlang/wyrmmir/internal/wyrmcontext"

// This file holds the low-level, policy-free constructors that actually
// grow a Module's containers. They perform no uniqueness checking and no
// scope-table bookkeeping of their own; mirbuilder.Builder is the only
// client meant to call them; it owns the uniqueness/suffixing policy and
// keeps the Context's scope tables in sync with what gets appended here.

// NewFunction appends a new, empty Function to m and returns it. Callers
// (mirbuilder) are responsible for checking name uniqueness first.
func NewFunction(m *Module, name wyrmcontext.Symbol, argNames []wyrmcontext.Symbol) *Function {
	f := &Function{Module: m, Name: name, ArgNames: argNames}
	m.Funcs = append(m.Funcs, f)
	return f
}

// NewBasicBlock appends a new, empty BasicBlock to f and returns it.
func NewBasicBlock(f *Function, label wyrmcontext.Symbol, labeled bool) *BasicBlock {
	bb := &BasicBlock{Func: f, Label: label, Labeled: labeled}
	f.BBlocks = append(f.BBlocks, bb)
	return bb
}

// NewGlobalSymReg appends a new global SymReg to m and returns it. Callers
// are responsible for resolving name collisions (the automatic ".k"
// suffixing policy) before calling this.
func NewGlobalSymReg(m *Module, name wyrmcontext.Symbol) *SymReg {
	r := &SymReg{Name: name, owningModule: m}
	m.Globals = append(m.Globals, r)
	return r
}

// NewLocalSymReg appends a new local SymReg to f and returns it. Callers
// are responsible for reusing an existing same-named local instead of
// calling this, per the SymReg resolution policy.
func NewLocalSymReg(f *Function, name wyrmcontext.Symbol) *SymReg {
	r := &SymReg{Name: name, owningFunction: f}
	f.Locals = append(f.Locals, r)
	return r
}

// AppendInstruction appends instr to the tail of bb, and binds instr to bb.
func AppendInstruction(bb *BasicBlock, instr Instruction) {
	instr.setBlock(bb)
	bb.Instrs = append(bb.Instrs, instr)
}
