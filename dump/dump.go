// Package dump implements the textual serialization of a Module, which is
// part of wyrmmir's external contract: tests assert the output is
// byte-exact. See the grammar in the package doc below.
//
// module     ::= "module " <mod-name> "\n" global* function*
// global     ::= "global %" <name> "\n"
// function   ::= "function " <fname> "(" arglist "...) {\n" bb* "}\n"
// arglist    ::= ( <arg-name> ", " )*
// bb         ::= <bb-header> ":\n" instruction*
// bb-header  ::= <label>  |  "BB" <1-based index among unlabeled blocks>
// instruction ::= "  " <insn-body> "\n"
package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wyrmlang/wyrmmir/ir"
)

// Module writes m's textual form to w.
func Module(w io.Writer, m *ir.Module) error {
	if _, err := fmt.Fprintf(w, "module %s\n", m.Name); err != nil {
		return err
	}
	for _, g := range m.Globals {
		if _, err := fmt.Fprintf(w, "global %%%s\n", g.NameString()); err != nil {
			return err
		}
	}
	for _, f := range m.Funcs {
		if err := Function(w, f); err != nil {
			return err
		}
	}
	return nil
}

// ModuleString returns m's textual form as a string.
func ModuleString(m *ir.Module) string {
	var b strings.Builder
	Module(&b, m) //nolint:errcheck // strings.Builder never fails to write
	return b.String()
}

// Function writes f's textual form to w.
func Function(w io.Writer, f *ir.Function) error {
	var b strings.Builder
	b.WriteString("function ")
	b.WriteString(f.NameString())
	b.WriteString("(")
	for _, a := range f.ArgNames {
		b.WriteString(a.String())
		b.WriteString(", ")
	}
	b.WriteString("...) {\n")
	for _, bb := range f.BBlocks {
		writeBasicBlock(&b, bb)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// BasicBlock writes bb's textual form to w.
func BasicBlock(w io.Writer, bb *ir.BasicBlock) error {
	var b strings.Builder
	writeBasicBlock(&b, bb)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeBasicBlock(b *strings.Builder, bb *ir.BasicBlock) {
	b.WriteString(blockHeader(bb))
	b.WriteString(":\n")
	for _, instr := range bb.Instrs {
		b.WriteString("  ")
		b.WriteString(instructionBody(instr))
		b.WriteString("\n")
	}
}

// blockHeader renders bb's label if it has one, or "BB<n>" where n is the
// 1-based count of unlabeled blocks up to and including bb within its
// Function (labeled blocks never consume a number).
func blockHeader(bb *ir.BasicBlock) string {
	if bb.Labeled {
		return bb.NameString()
	}
	n := 0
	for _, b := range bb.Func.BBlocks {
		if !b.Labeled {
			n++
		}
		if b == bb {
			break
		}
	}
	return "BB" + strconv.Itoa(n)
}

// Instruction renders instr's disassembled form, without the leading
// indentation or trailing newline instruction bodies carry inside a
// BasicBlock dump.
func Instruction(instr ir.Instruction) string { return instructionBody(instr) }

func instructionBody(instr ir.Instruction) string {
	switch i := instr.(type) {
	case *ir.Receive:
		return fmt.Sprintf("%s = receive", renderReg(i.Dest))
	case *ir.GoTo:
		return "goto " + blockHeader(i.Succ)
	case *ir.Br:
		return fmt.Sprintf("br %s, %s, %s", renderValue(i.Cond), blockHeader(i.TrueSucc), blockHeader(i.FalseSucc))
	case *ir.Ret:
		return "ret " + renderValue(i.Val)
	case *ir.Call:
		return renderCall(i)
	case *ir.UnOp:
		return renderUnOp(i)
	case *ir.BinOp:
		return renderBinOp(i)
	default:
		panic(fmt.Sprintf("dump: unknown instruction type %T", instr))
	}
}

func renderCall(i *ir.Call) string {
	var b strings.Builder
	if i.Dest != nil {
		b.WriteString(renderReg(i.Dest))
		b.WriteString(" = ")
	}
	b.WriteString("call ")
	b.WriteString(i.Callee.NameString())
	b.WriteString("(")
	for j, a := range i.Args {
		if j > 0 {
			b.WriteString(", ")
		}
		b.WriteString(renderValue(a))
	}
	b.WriteString(")")
	return b.String()
}

func renderUnOp(i *ir.UnOp) string {
	switch i.Kind {
	case ir.Assign:
		return fmt.Sprintf("%s = %s", renderReg(i.Dest), renderValue(i.Operand))
	case ir.Neg:
		return fmt.Sprintf("%s = neg %s", renderReg(i.Dest), renderValue(i.Operand))
	case ir.Not:
		return fmt.Sprintf("%s = not %s", renderReg(i.Dest), renderValue(i.Operand))
	default:
		panic(fmt.Sprintf("dump: unknown UnOpKind %d", i.Kind))
	}
}

var binOpNames = map[ir.BinOpKind]string{
	ir.Add:     "add",
	ir.Sub:     "sub",
	ir.Mul:     "mul",
	ir.Div:     "div",
	ir.Mod:     "mod",
	ir.Min:     "min",
	ir.Max:     "max",
	ir.Shl:     "shl",
	ir.Shr:     "shr",
	ir.Shra:    "shra",
	ir.And:     "and",
	ir.Or:      "or",
	ir.Xor:     "xor",
	ir.Eq:      "cmp eq",
	ir.Neq:     "cmp neq",
	ir.Less:    "cmp lt",
	ir.Leq:     "cmp leq",
	ir.Greater: "cmp gt",
	ir.Geq:     "cmp ge",
}

func renderBinOp(i *ir.BinOp) string {
	name, ok := binOpNames[i.Kind]
	if !ok {
		panic(fmt.Sprintf("dump: unknown BinOpKind %d", i.Kind))
	}
	return fmt.Sprintf("%s = %s %s, %s", renderReg(i.Dest), name, renderValue(i.Op1), renderValue(i.Op2))
}

// renderValue renders an instruction operand: a decimal integer for an
// Imm, or the register form (below) for a SymReg reference.
func renderValue(v ir.Value) string {
	switch x := v.(type) {
	case ir.Imm:
		return strconv.Itoa(int(x))
	case *ir.SymReg:
		return renderReg(x)
	default:
		panic(fmt.Sprintf("dump: unknown Value type %T", v))
	}
}

// renderReg renders a SymReg as %name if named, or %N (its 1-based
// position within its owning Function's local list) if unnamed.
func renderReg(r *ir.SymReg) string {
	if name := r.NameString(); name != "" {
		return "%" + name
	}
	return "%" + strconv.Itoa(r.LocalIndex())
}
