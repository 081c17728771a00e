package maze

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes the compiled graph in GraphViz DOT format. Nodes are named
// by index and labelled with their coordinates and orientation; edges are
// labelled "Turn" or with their move distance. Start and end nodes are
// drawn with a double border.
func (m *Map) WriteDOT(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("graph maze {\n")
	for _, id := range m.Graph.Nodes() {
		shape := ""
		if id == m.Start || id == m.End[0] || id == m.End[1] {
			shape = ", peripheries=2"
		}
		fmt.Fprintf(&sb, "\tn%d [label=%q%s];\n", id, m.Graph.Node(id).String(), shape)
	}
	for _, id := range m.Graph.Edges() {
		a, b := m.Graph.Endpoints(id)
		fmt.Fprintf(&sb, "\tn%d -- n%d [label=%q];\n", a, b, m.Graph.Edge(id).String())
	}
	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("maze: writing dot: %w", err)
	}

	return nil
}
