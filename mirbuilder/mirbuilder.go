// Package mirbuilder implements the sole mutator of an ir.Module: it
// creates Functions, BasicBlocks, global and local SymRegs, and
// Instructions, enforcing the uniqueness policies of the IR and tracking
// an implicit "current basic block" cursor.
package mirbuilder

import (
	"fmt"

	"github.com/wyrmlang/wyrmmir/internal/wyrmcontext"
	"github.com/wyrmlang/wyrmmir/ir"
)

// Builder is bound to a single Module for its whole lifetime. A Builder is
// not safe for concurrent use; building is inherently single-user (§1).
type Builder struct {
	module  *ir.Module
	current *ir.BasicBlock
}

// New returns a Builder bound to m, with no current basic block.
func New(m *ir.Module) *Builder {
	return &Builder{module: m}
}

// Module returns the Module this Builder mutates.
func (b *Builder) Module() *ir.Module { return b.module }

func (b *Builder) ctx() *wyrmcontext.Context { return b.module.Context() }

func (b *Builder) moduleScope() *wyrmcontext.ModuleScope {
	return b.ctx().ModuleScope(b.module)
}

func (b *Builder) functionScope(f *ir.Function) *wyrmcontext.FunctionScope {
	return b.ctx().FunctionScope(f)
}

// CreateFunction appends a new Function named name, with the given
// parameter names, to the Module. If name already denotes a function in
// the Module, CreateFunction does nothing and returns (nil, false).
func (b *Builder) CreateFunction(name string, params []string) (*ir.Function, bool) {
	c := b.ctx()
	nameSym := c.Intern(name)
	scope := b.moduleScope()
	if _, exists := scope.Functions[nameSym]; exists {
		return nil, false
	}

	argSyms := make([]wyrmcontext.Symbol, len(params))
	for i, p := range params {
		argSyms[i] = c.Intern(p)
	}

	f := ir.NewFunction(b.module, nameSym, argSyms)
	c.SetName(f, nameSym)
	scope.Functions[nameSym] = f
	return f, true
}

// FindFunction looks up a function by exact name within the Module.
func (b *Builder) FindFunction(name string) (*ir.Function, bool) {
	sym := b.ctx().Intern(name)
	scope := b.moduleScope()
	f, ok := scope.Functions[sym]
	if !ok {
		return nil, false
	}
	return f.(*ir.Function), true
}

// CreateGlobalVariable always creates a new global SymReg in the Module.
// If name is already taken by a global, the new SymReg is named
// "name.k" for the smallest k >= 1 for which that name is free;
// otherwise it is named name verbatim. CreateGlobalVariable never fails.
func (b *Builder) CreateGlobalVariable(name string) *ir.SymReg {
	c := b.ctx()
	scope := b.moduleScope()

	finalName := name
	if _, taken := scope.Globals[c.Intern(name)]; taken {
		for k := 1; ; k++ {
			candidate := fmt.Sprintf("%s.%d", name, k)
			if _, taken := scope.Globals[c.Intern(candidate)]; !taken {
				finalName = candidate
				break
			}
		}
	}

	nameSym := c.Intern(finalName)
	g := ir.NewGlobalSymReg(b.module, nameSym)
	c.SetName(g, nameSym)
	scope.Globals[nameSym] = g
	return g
}

// FindGlobalVariable looks up a global SymReg by exact interned name.
func (b *Builder) FindGlobalVariable(name string) (*ir.SymReg, bool) {
	sym := b.ctx().Intern(name)
	scope := b.moduleScope()
	g, ok := scope.Globals[sym]
	if !ok {
		return nil, false
	}
	return g.(*ir.SymReg), true
}

// CreateBasicBlock appends a new BasicBlock to fn. If label is non-empty,
// it must be unique within fn; violating this is a precondition error
// (panic), per §4.4's "precondition violation (assertion)" policy for
// duplicate labels.
func (b *Builder) CreateBasicBlock(fn *ir.Function, label string) *ir.BasicBlock {
	c := b.ctx()
	fscope := b.functionScope(fn)

	var labelSym wyrmcontext.Symbol
	labeled := label != ""
	if labeled {
		labelSym = c.Intern(label)
		if _, exists := fscope.Labels[labelSym]; exists {
			panic(fmt.Sprintf("mirbuilder: duplicate basic block label %q in function %q", label, fn.NameString()))
		}
	}

	bb := ir.NewBasicBlock(fn, labelSym, labeled)
	if labeled {
		c.SetName(bb, labelSym)
		fscope.Labels[labelSym] = bb
	}
	return bb
}

// SetBasicBlock sets bb as the current basic block.
func (b *Builder) SetBasicBlock(bb *ir.BasicBlock) { b.current = bb }

// CurrentBasicBlock returns the current basic block, if any.
func (b *Builder) CurrentBasicBlock() (*ir.BasicBlock, bool) {
	if b.current == nil {
		return nil, false
	}
	return b.current, true
}

// requireCurrent returns the current basic block or panics: creating an
// instruction with no current block set is a precondition violation.
func (b *Builder) requireCurrent() *ir.BasicBlock {
	if b.current == nil {
		panic("mirbuilder: no current basic block")
	}
	return b.current
}

// resolveDest implements SymReg resolution: an empty name always allocates
// a fresh unnamed local; a non-empty name reuses the existing local of that
// name in fn if one exists, and otherwise creates it.
func (b *Builder) resolveDest(fn *ir.Function, name string) *ir.SymReg {
	if name == "" {
		return ir.NewLocalSymReg(fn, wyrmcontext.Symbol{})
	}
	c := b.ctx()
	sym := c.Intern(name)
	fscope := b.functionScope(fn)
	if existing, ok := fscope.Locals[sym]; ok {
		return existing.(*ir.SymReg)
	}
	r := ir.NewLocalSymReg(fn, sym)
	c.SetName(r, sym)
	fscope.Locals[sym] = r
	return r
}

// CreateReceiveInst appends a Receive instruction to the current basic
// block, binding an incoming argument to a (possibly named) local.
func (b *Builder) CreateReceiveInst(name string) *ir.Receive {
	bb := b.requireCurrent()
	dest := b.resolveDest(bb.Func, name)
	instr := &ir.Receive{Dest: dest}
	ir.AppendInstruction(bb, instr)
	return instr
}

// CreateGoToInst appends an unconditional branch to dest.
func (b *Builder) CreateGoToInst(dest *ir.BasicBlock) *ir.GoTo {
	bb := b.requireCurrent()
	instr := &ir.GoTo{Succ: dest}
	ir.AppendInstruction(bb, instr)
	return instr
}

// CreateBrInst appends a conditional branch.
func (b *Builder) CreateBrInst(cond ir.Value, trueSucc, falseSucc *ir.BasicBlock) *ir.Br {
	bb := b.requireCurrent()
	instr := &ir.Br{Cond: cond, TrueSucc: trueSucc, FalseSucc: falseSucc}
	ir.AppendInstruction(bb, instr)
	return instr
}

// CreateRetInst appends a return instruction.
func (b *Builder) CreateRetInst(val ir.Value) *ir.Ret {
	bb := b.requireCurrent()
	instr := &ir.Ret{Val: val}
	ir.AppendInstruction(bb, instr)
	return instr
}

// CreateCallInst appends a call to callee. If hasReturn is false, the
// instruction has no destination register regardless of name.
func (b *Builder) CreateCallInst(hasReturn bool, callee *ir.Function, args []ir.Value, name string) *ir.Call {
	bb := b.requireCurrent()
	var dest *ir.SymReg
	if hasReturn {
		dest = b.resolveDest(bb.Func, name)
	}
	instr := &ir.Call{Dest: dest, Callee: callee, Args: args}
	ir.AppendInstruction(bb, instr)
	return instr
}

// CreateUnOpInst appends a unary operation.
func (b *Builder) CreateUnOpInst(kind ir.UnOpKind, operand ir.Value, name string) *ir.UnOp {
	bb := b.requireCurrent()
	dest := b.resolveDest(bb.Func, name)
	instr := &ir.UnOp{Dest: dest, Kind: kind, Operand: operand}
	ir.AppendInstruction(bb, instr)
	return instr
}

// CreateBinOpInst appends a binary operation.
func (b *Builder) CreateBinOpInst(kind ir.BinOpKind, op1, op2 ir.Value, name string) *ir.BinOp {
	bb := b.requireCurrent()
	dest := b.resolveDest(bb.Func, name)
	instr := &ir.BinOp{Dest: dest, Kind: kind, Op1: op1, Op2: op2}
	ir.AppendInstruction(bb, instr)
	return instr
}
