package propagate

import (
	"sort"
	"strings"
)

// detectCycles enumerates every simple directed cycle in g, each returned as
// a closed vertex-id sequence [v0, v1, ..., v0] in its canonical (minimal
// rotation) form, deduplicated and sorted for deterministic output. Unlike a
// general-purpose detector, self-loops are never suppressed: a fiber whose
// node architecture propagates it back onto itself is itself a one-fiber
// lasing loop.
//
// Each vertex is assigned its position in g.order as an index. A cycle is
// discovered exactly once, from a search rooted at its minimal-index vertex
// and restricted to otherwise visiting only higher-index vertices; this is
// what keeps two cycles that share a vertex (but were reached from different
// branches) from being conflated or dropped, unlike a plain three-color DFS
// where the shared vertex is retired (colored black) the first time either
// cycle fully explores it.
func detectCycles(g *fiberGraph) [][]string {
	index := make(map[string]int, len(g.order))
	for i, v := range g.order {
		index[v] = i
	}

	seen := make(map[string]struct{})
	var cycles [][]string

	for _, start := range g.order {
		blocked := make(map[string]bool, len(g.order))
		path := []string{start}
		cycleSearch(g, start, start, index[start], index, blocked, &path, seen, &cycles)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return joinSig(cycles[i]) < joinSig(cycles[j])
	})
	return cycles
}

// cycleSearch walks forward from cur looking for a path back to start,
// never stepping to a vertex whose index is below minIdx (start's own
// index) and never revisiting a vertex already on the current path
// (blocked). blocked is scoped to this start's search alone and lifted on
// backtrack, so a vertex can be part of more than one recorded cycle across
// sibling branches of the same search.
func cycleSearch(g *fiberGraph, start, cur string, minIdx int, index map[string]int, blocked map[string]bool, path *[]string, seen map[string]struct{}, cycles *[][]string) {
	blocked[cur] = true

	for _, nbr := range g.adj[cur] {
		if nbr == start {
			recordCycle(start, *path, seen, cycles)
			continue
		}
		if index[nbr] <= minIdx || blocked[nbr] {
			continue
		}
		*path = append(*path, nbr)
		cycleSearch(g, start, nbr, minIdx, index, blocked, path, seen, cycles)
		*path = (*path)[:len(*path)-1]
	}

	blocked[cur] = false
}

func recordCycle(start string, path []string, seen map[string]struct{}, cycles *[][]string) {
	idx := indexOf(path, start)
	seq := append(append([]string(nil), path[idx:]...), start)

	sig, canon := canonicalCycle(seq)
	if _, ok := seen[sig]; !ok {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonicalCycle rotates cycle to start at its lexicographically minimal
// vertex, so that the same directed cycle discovered from two different
// starting vertices produces the same signature. It never reorders edges or
// reverses traversal direction — the edges in the returned sequence are
// exactly the edges that were actually walked.
func canonicalCycle(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rot := minimalRotation(base)
	closed := append(append([]string(nil), rot...), rot[0])
	return joinSig(closed), closed
}

func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

func joinSig(c []string) string {
	return strings.Join(c, ",")
}

// minimalRotation implements Booth's algorithm: the lexicographically
// minimal rotation of s, in O(len(s)).
func minimalRotation(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	doubled := append(append([]string(nil), s...), s...)
	n := len(s)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]string, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}
	return res
}
