// Package render draws a colored constraint graph as Graphviz DOT.
//
// Every node shows its color; nodes are filled with a hue spread over the
// color budget. Every edge is labeled with its required distance and edges
// the coloring violates are drawn bold red.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emicklei/dot"
	"github.com/pkg/errors"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

// ErrColoringSize indicates a coloring whose length differs from the node count.
var ErrColoringSize = errors.New("render: coloring does not match graph")

const violatedColor = "red"

// Graph builds the DOT graph of g under coloring c with colors available
// colors. names, when non-nil, labels node i with names[i] above its color.
func Graph(g *instance.Graph, c memetic.Coloring, colors int, names []string) (*dot.Graph, error) {
	n := g.NumNodes()
	if len(c) != n {
		return nil, errors.Wrapf(ErrColoringSize, "%d colors for %d nodes", len(c), n)
	}
	if names != nil && len(names) != n {
		return nil, errors.Errorf("render: %d names for %d nodes", len(names), n)
	}

	out := dot.NewGraph(dot.Undirected)
	out.Attr("overlap", "false")
	out.Attr("splines", "true")

	nodes := make([]dot.Node, n)
	for v := 0; v < n; v++ {
		label := strconv.Itoa(c[v])
		if names != nil {
			label = names[v] + "\n" + label
		}
		nodes[v] = out.Node(strconv.Itoa(v)).
			Label(label).
			Attr("style", "filled").
			Attr("fillcolor", fill(c[v], colors))
	}

	for _, e := range g.Edges() {
		edge := out.Edge(nodes[e.U], nodes[e.V]).Label(e.Weight)
		if memetic.EdgeViolation(e.Weight, c[e.U], c[e.V]) > 0 {
			edge.Attr("color", violatedColor).Bold()
		}
	}
	return out, nil
}

// WriteDOT writes the DOT graph of g under coloring c to w.
func WriteDOT(w io.Writer, g *instance.Graph, c memetic.Coloring, colors int, names []string) error {
	out, err := Graph(g, c, colors, names)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out.String())
	return errors.Wrap(err, "writing dot graph")
}

// fill returns a Graphviz "H S V" color for color col of k.
func fill(col, k int) string {
	if k < 1 {
		k = 1
	}
	return fmt.Sprintf("%.3f 0.450 0.950", float64(col-1)/float64(k))
}
