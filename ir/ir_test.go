package ir_test

import (
	"testing"

	"github.com/wyrmlang/wyrmmir/internal/wyrmcontext"
	"github.com/wyrmlang/wyrmmir/ir"
)

func TestSymRegIdentityNotValue(t *testing.T) {
	m := ir.NewModule("m")
	fn := ir.NewFunction(m, m.Context().Intern("f"), nil)
	a := ir.NewLocalSymReg(fn, m.Context().Intern("x"))
	b := ir.NewLocalSymReg(fn, m.Context().Intern("x"))
	if a == b {
		t.Fatal("two distinct NewLocalSymReg calls produced the same identity")
	}
}

func TestUnnamedLocalIndexing(t *testing.T) {
	m := ir.NewModule("m")
	fn := ir.NewFunction(m, m.Context().Intern("f"), nil)
	first := ir.NewLocalSymReg(fn, wyrmcontext.Symbol{})
	second := ir.NewLocalSymReg(fn, wyrmcontext.Symbol{})
	if first.LocalIndex() != 1 || second.LocalIndex() != 2 {
		t.Fatalf("LocalIndex() = %d, %d, want 1, 2", first.LocalIndex(), second.LocalIndex())
	}
}

func TestOwnershipExclusivity(t *testing.T) {
	m := ir.NewModule("m")
	fn := ir.NewFunction(m, m.Context().Intern("f"), nil)
	g := ir.NewGlobalSymReg(m, m.Context().Intern("g"))
	l := ir.NewLocalSymReg(fn, m.Context().Intern("l"))

	if !g.IsGlobal() || g.IsLocal() {
		t.Fatal("global SymReg reports wrong ownership")
	}
	if !l.IsLocal() || l.IsGlobal() {
		t.Fatal("local SymReg reports wrong ownership")
	}
}

func TestValueSumType(t *testing.T) {
	m := ir.NewModule("m")
	r := ir.NewGlobalSymReg(m, m.Context().Intern("g"))
	var values []ir.Value = []ir.Value{ir.Imm(42), r}
	if _, ok := values[0].(ir.Imm); !ok {
		t.Fatal("Imm does not implement Value")
	}
	if _, ok := values[1].(*ir.SymReg); !ok {
		t.Fatal("*SymReg does not implement Value")
	}
}

func TestReferenceStabilityAcrossGrowth(t *testing.T) {
	m := ir.NewModule("m")
	fn := ir.NewFunction(m, m.Context().Intern("f"), nil)
	first := ir.NewBasicBlock(fn, wyrmcontext.Symbol{}, false)
	for i := 0; i < 128; i++ {
		ir.NewBasicBlock(fn, wyrmcontext.Symbol{}, false)
	}
	if first.Index() != 0 {
		t.Fatalf("first.Index() = %d, want 0 (reference invalidated by growth)", first.Index())
	}
	if first.Func != fn {
		t.Fatal("first.Func changed after Function grew")
	}
}
