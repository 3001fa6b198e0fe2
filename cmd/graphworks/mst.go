package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphworks/core"
	"github.com/katalvlaran/graphworks/matrix"
	"github.com/katalvlaran/graphworks/prim_kruskal"
)

// errMissingInput reports an input matrix file that cannot be opened.
var errMissingInput = errors.New("input file is absent or unreadable")

type mstCmd struct {
	Input  string `help:"Weighted adjacency matrix file." default:"input.txt" type:"path"`
	Method string `help:"Spanning tree algorithm (${enum})." enum:"prim,kruskal" default:"prim"`
}

func (c *mstCmd) Run(rc *runContext) error {
	g, err := loadGraph(c.Input)
	if err != nil {
		return err
	}
	level.Info(rc.logger).Log("msg", "graph loaded", "input", c.Input,
		"vertices", g.VertexCount(), "edges", g.Size())

	tree, total, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(c.Method)))
	if err != nil {
		return errors.Wrapf(err, "spanning tree of %s", c.Input)
	}

	_, err = io.WriteString(rc.stdout, renderMST(g.Edges(), tree, total))

	return err
}

// loadGraph reads a weight matrix file and builds its edge list.
func loadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMissingInput, err)
	}
	defer f.Close()

	m, err := matrix.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	g, err := core.FromWeights(m.ToRows())
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return g, nil
}

// renderMST formats G, T and T's weight for the terminal.
func renderMST(graph, tree []core.WeightedEdge, total int64) string {
	var sb strings.Builder
	sb.WriteString("Weighted edges will be shown as follows,\n")
	sb.WriteString("   Edge index: <u, v> weight[ w ]\n\n")

	sb.WriteString("For the given graph, G:\n")
	writeEdges(&sb, graph)

	sb.WriteString("The spanning tree T of G:\n")
	writeEdges(&sb, tree)

	fmt.Fprintf(&sb, "Total weight of T: %d\n", total)

	return sb.String()
}

func writeEdges(sb *strings.Builder, edges []core.WeightedEdge) {
	for i, e := range edges {
		fmt.Fprintf(sb, "   Edge %d: %s\n", i, e)
	}
	sb.WriteByte('\n')
}
