package ir

// Instruction is the common interface of every instruction variant. Block
// returns the BasicBlock the instruction was appended to; it is set by
// AppendInstruction.
type Instruction interface {
	Block() *BasicBlock

	setBlock(*BasicBlock)
}

// instrBase factors out the Block/setBlock bookkeeping shared by every
// variant, the way go/ssa's instruction types each embed a common set of
// fields rather than implementing the same boilerplate seven times.
type instrBase struct {
	block *BasicBlock
}

func (b *instrBase) Block() *BasicBlock    { return b.block }
func (b *instrBase) setBlock(bb *BasicBlock) { b.block = bb }

// Receive binds an incoming function argument to Dest.
type Receive struct {
	instrBase
	Dest *SymReg
}

// GoTo is an unconditional branch to Succ.
type GoTo struct {
	instrBase
	Succ *BasicBlock
}

// Br is a conditional branch: control transfers to TrueSucc if Cond is
// nonzero, FalseSucc otherwise.
type Br struct {
	instrBase
	Cond              Value
	TrueSucc, FalseSucc *BasicBlock
}

// Ret returns Val from the enclosing Function.
type Ret struct {
	instrBase
	Val Value
}

// Call invokes Callee with Args. Dest is nil if the call's result is
// discarded.
type Call struct {
	instrBase
	Dest   *SymReg
	Callee *Function
	Args   []Value
}

// UnOpKind identifies the operation performed by a UnOp instruction.
type UnOpKind int

const (
	Assign UnOpKind = iota
	Neg
	Not
)

// UnOp computes Kind(Operand) into Dest.
type UnOp struct {
	instrBase
	Dest    *SymReg
	Kind    UnOpKind
	Operand Value
}

// BinOpKind identifies the operation performed by a BinOp instruction.
type BinOpKind int

const (
	Add BinOpKind = iota
	Sub
	Mul
	Div
	Mod
	Min
	Max
	Shl
	Shr
	Shra
	And
	Or
	Xor
	Eq
	Neq
	Less
	Leq
	Greater
	Geq
)

// BinOp computes Op1 Kind Op2 into Dest.
type BinOp struct {
	instrBase
	Dest     *SymReg
	Kind     BinOpKind
	Op1, Op2 Value
}

// OutRegister returns the destination SymReg of instructions that produce
// a value (Receive, UnOp, BinOp, and Call when its result isn't
// discarded), or nil for instructions with no destination (GoTo, Br, Ret,
// and a discarded Call).
func OutRegister(instr Instruction) *SymReg {
	switch i := instr.(type) {
	case *Receive:
		return i.Dest
	case *Call:
		return i.Dest
	case *UnOp:
		return i.Dest
	case *BinOp:
		return i.Dest
	default:
		return nil
	}
}
