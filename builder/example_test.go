// SPDX-License-Identifier: MIT
package builder_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/graphworks/builder"
	"github.com/katalvlaran/graphworks/matrix"
)

// ExampleMaterialize builds the path 0-1-2-3 from its edge slots.
func ExampleMaterialize() {
	m, err := builder.Materialize(4, []int{0, 3, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = matrix.WriteBits(os.Stdout, m)
	// Output:
	// 4
	// 0100
	// 1010
	// 0101
	// 0010
}

// ExampleGenerate writes every labeled simple graph on 2 and 3 vertices.
func ExampleGenerate() {
	sink := builder.NewTextSink(os.Stdout)
	sum, err := builder.Generate(context.Background(), 3, sink)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = sink.Flush()
	fmt.Println("graphs:", sum.Graphs, "groups:", sum.Groups)
	// Output:
	// 2
	// 01
	// 10
	//
	// 3
	// 000
	// 001
	// 010
	//
	// 3
	// 001
	// 000
	// 100
	//
	// 3
	// 010
	// 100
	// 000
	//
	// 3
	// 001
	// 001
	// 110
	//
	// 3
	// 010
	// 101
	// 010
	//
	// 3
	// 011
	// 100
	// 100
	//
	// 3
	// 011
	// 101
	// 110
	//
	// graphs: 8 groups: 4
}

// ExampleCountingSink counts graphs per (vertices, edges) group.
func ExampleCountingSink() {
	sink := builder.NewCountingSink()
	if _, err := builder.Generate(context.Background(), 4, sink, builder.WithMinVertices(4)); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, g := range sink.Order {
		fmt.Printf("v=%d e=%d: %d\n", g.Vertices, g.Edges, sink.Counts[g])
	}
	// Output:
	// v=4 e=1: 6
	// v=4 e=2: 15
	// v=4 e=3: 20
	// v=4 e=4: 15
	// v=4 e=5: 6
	// v=4 e=6: 1
}
