// Package main provides the hypergrad CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hypergrad-ml/hypergrad/graph"
	"github.com/hypergrad-ml/hypergrad/matrix"
	"github.com/hypergrad-ml/hypergrad/ops"
)

const version = "v0.1.0-dev"

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "version":
		fmt.Printf("hypergrad %s\n", version)
	case "dot":
		if err := writeDemoDot(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "hypergrad: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("hypergrad - hypergraph autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  dot        Print a sample network as Graphviz DOT (pipe into `dot -Tsvg`)")
	fmt.Println("")
	fmt.Println("See examples/xor and examples/textclass for training demos.")
}

// writeDemoDot renders a one-hidden-layer regression network in DOT form, a
// quick way to eyeball how construction order becomes graph structure.
func writeDemoDot(w io.Writer) error {
	g := buildDemoGraph()
	return g.WriteGraphviz(w)
}

// buildDemoGraph assembles loss = ||V*tanh(W*x + b) - y||².
func buildDemoGraph() *graph.Hypergraph {
	g := graph.New()
	x := g.AddInput(matrix.NewDim(2), "x")
	y := g.AddInput(matrix.NewDim(), "y")
	wp := g.AddParameter(matrix.NewDim(4, 2), "W")
	b := g.AddParameter(matrix.NewDim(4), "b")
	v := g.AddParameter(matrix.NewDim(1, 4), "V")

	wx := graph.AddFunction[ops.MatMulOp](g, "Wx", wp, x)
	pre := graph.AddFunction[ops.SumOp](g, "pre", wx, b)
	h := graph.AddFunction[ops.TanhOp](g, "h", pre)
	out := graph.AddFunction[ops.MatMulOp](g, "out", v, h)
	graph.AddFunction[ops.SquaredDistanceOp](g, "loss", out, y)
	return g
}
