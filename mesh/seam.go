package mesh

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// edgeKey is an undirected edge with ordered endpoints.
type edgeKey [2]int

func makeEdge(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// edgeCounts maps every mesh edge to the number of faces that share it.
func edgeCounts(m *Mesh) map[edgeKey]int {
	counts := make(map[edgeKey]int, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		counts[makeEdge(f[0], f[1])]++
		counts[makeEdge(f[1], f[2])]++
		counts[makeEdge(f[2], f[0])]++
	}
	return counts
}

// BoundaryVertices returns the indices of all vertices incident to an edge
// that belongs to exactly one face.
func (m *Mesh) BoundaryVertices() []int {
	return boundaryFromCounts(edgeCounts(m))
}

func boundaryFromCounts(counts map[edgeKey]int) []int {
	seen := make(map[int]bool)
	var out []int
	for e, n := range counts {
		if n != 1 {
			continue
		}
		for _, idx := range e {
			if !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
	}
	return out
}

// FindSeam computes a seam path from the top boundary loop to the bottom
// boundary loop of an open cylinder-like mesh.
//
// The boundary vertex set is split into top and bottom by the mean Z of the
// boundary. The start vertex is the top-boundary vertex with minimum X so
// the seam lands on a consistent side; the end vertex is the bottom-boundary
// vertex closest to the start, which keeps the seam short and straight. The
// path is the unit-weight shortest path in the vertex adjacency graph.
func FindSeam(m *Mesh) ([]int, error) {
	counts := edgeCounts(m)

	boundary := boundaryFromCounts(counts)
	if len(boundary) == 0 {
		return nil, ErrWatertight
	}

	zMean := 0.0
	for _, idx := range boundary {
		zMean += m.Vertices[idx].Z
	}
	zMean /= float64(len(boundary))

	var top, bottom []int
	for _, idx := range boundary {
		switch {
		case m.Vertices[idx].Z > zMean:
			top = append(top, idx)
		case m.Vertices[idx].Z < zMean:
			bottom = append(bottom, idx)
		}
	}
	if len(top) == 0 || len(bottom) == 0 {
		return nil, ErrLoopSplit
	}

	start := top[0]
	for _, idx := range top[1:] {
		if m.Vertices[idx].X < m.Vertices[start].X {
			start = idx
		}
	}
	end := bottom[0]
	for _, idx := range bottom[1:] {
		if m.Vertices[idx].Distance(m.Vertices[start]) < m.Vertices[end].Distance(m.Vertices[start]) {
			end = idx
		}
	}

	g := simple.NewUndirectedGraph()
	for i := range m.Vertices {
		g.AddNode(simple.Node(i))
	}
	for e := range counts {
		if e[0] == e[1] {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	shortest := path.DijkstraFrom(g.Node(int64(start)), g)
	nodes, weight := shortest.To(int64(end))
	if len(nodes) == 0 || math.IsInf(weight, 1) {
		return nil, ErrNoPath
	}

	seam := make([]int, len(nodes))
	for i, n := range nodes {
		seam[i] = int(n.ID())
	}
	return seam, nil
}

// WriteSeam writes the seam as a comment header followed by one
// `index x y z` line per path vertex.
func WriteSeam(filename string, m *Mesh, seam []int) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating seam file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# index  x  y  z")
	for _, idx := range seam {
		v := m.Vertices[idx]
		fmt.Fprintf(w, "%d %.6f %.6f %.6f\n", idx, v.X, v.Y, v.Z)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing seam file: %w", err)
	}
	return nil
}
