package ir_test

import (
	"testing"

	"github.com/wyrmlang/wyrmmir/internal/wyrmcontext"
	"github.com/wyrmlang/wyrmmir/ir"
)

func TestOutRegister(t *testing.T) {
	m := ir.NewModule("m")
	fn := ir.NewFunction(m, m.Context().Intern("f"), nil)
	bb := ir.NewBasicBlock(fn, m.Context().Intern("entry"), true)
	dest := ir.NewLocalSymReg(fn, m.Context().Intern("x"))

	receive := &ir.Receive{Dest: dest}
	ir.AppendInstruction(bb, receive)
	if got := ir.OutRegister(receive); got != dest {
		t.Fatalf("OutRegister(Receive) = %v, want %v", got, dest)
	}

	ret := &ir.Ret{Val: ir.Imm(0)}
	ir.AppendInstruction(bb, ret)
	if got := ir.OutRegister(ret); got != nil {
		t.Fatalf("OutRegister(Ret) = %v, want nil", got)
	}

	call := &ir.Call{Callee: fn}
	ir.AppendInstruction(bb, call)
	if got := ir.OutRegister(call); got != nil {
		t.Fatalf("OutRegister(discarded Call) = %v, want nil", got)
	}
}

func TestInstructionBlock(t *testing.T) {
	m := ir.NewModule("m")
	fn := ir.NewFunction(m, m.Context().Intern("f"), nil)
	bb := ir.NewBasicBlock(fn, wyrmcontext.Symbol{}, false)
	instr := &ir.Ret{Val: ir.Imm(0)}
	ir.AppendInstruction(bb, instr)
	if instr.Block() != bb {
		t.Fatal("Block() does not return the BasicBlock the instruction was appended to")
	}
}
