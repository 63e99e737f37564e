// Command wyrmdump builds a small sample Module directly via mirbuilder
// (there is no front-end parser in this repo — see SPEC_FULL.md §2.7) and
// prints its textual dump. With -cfg, it also prints the dominator tree of
// the sample function's control-flow graph.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wyrmlang/wyrmmir/dominance"
	"github.com/wyrmlang/wyrmmir/dump"
	"github.com/wyrmlang/wyrmmir/graph"
	"github.com/wyrmlang/wyrmmir/ir"
	"github.com/wyrmlang/wyrmmir/mirbuilder"
)

func main() {
	showCFG := flag.Bool("cfg", false, "also print the dominator tree of the sample function's control-flow graph")
	flag.Parse()

	m := buildSample()
	if err := dump.Module(os.Stdout, m); err != nil {
		fmt.Fprintln(os.Stderr, "wyrmdump:", err)
		os.Exit(1)
	}

	if *showCFG {
		cfg := cfgOf(m.Funcs[0])
		tree := dominance.BuildDominatorTree(cfg)
		fmt.Println("\ndominator tree:")
		if err := tree.Dump(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "wyrmdump:", err)
			os.Exit(1)
		}
	}
}

// buildSample constructs:
//
//	function max(a, b, ...) {
//	entry:
//	  %a = receive
//	  %b = receive
//	  %cond = cmp gt %a, %b
//	  br %cond, then, else
//	then:
//	  ret %a
//	else:
//	  ret %b
//	}
func buildSample() *ir.Module {
	m := ir.NewModule("sample")
	b := mirbuilder.New(m)

	fn, _ := b.CreateFunction("max", []string{"a", "b"})
	entry := b.CreateBasicBlock(fn, "entry")
	thenBB := b.CreateBasicBlock(fn, "then")
	elseBB := b.CreateBasicBlock(fn, "else")

	b.SetBasicBlock(entry)
	a := b.CreateReceiveInst("a").Dest
	bb := b.CreateReceiveInst("b").Dest
	cmp := b.CreateBinOpInst(ir.Greater, a, bb, "cond")
	b.CreateBrInst(cmp.Dest, thenBB, elseBB)

	b.SetBasicBlock(thenBB)
	b.CreateRetInst(a)

	b.SetBasicBlock(elseBB)
	b.CreateRetInst(bb)

	return m
}

// cfgOf walks fn's BasicBlocks and emits an arc for every branch target,
// yielding the Graph the dominance package consumes. This walk belongs to
// a client of the IR (per spec.md §2: "the analysis reads a Graph ...
// built by a client that walks a Function's CFG"), not to the IR or
// dominance packages themselves.
func cfgOf(fn *ir.Function) *graph.Graph {
	g := graph.New()
	for from, block := range fn.BBlocks {
		if len(block.Instrs) == 0 {
			continue
		}
		switch term := block.Instrs[len(block.Instrs)-1].(type) {
		case *ir.GoTo:
			g.AddArc(graph.Arc{From: from, To: term.Succ.Index()})
		case *ir.Br:
			g.AddArc(graph.Arc{From: from, To: term.TrueSucc.Index()})
			g.AddArc(graph.Arc{From: from, To: term.FalseSucc.Index()})
		}
	}
	return g
}
