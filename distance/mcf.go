// SPDX-License-Identifier: MIT
//
// mcf.go — a small min-cost-flow solver used to compute exact
// 1-Wasserstein transport costs over the tiny (at most E×E) bipartite cost
// matrices the curve-matching kernel builds: a hand-written
// successive-shortest-augmenting-path solver over the residual graph.

package distance

import "math"

const flowEps = 1e-12

type mcfEdge struct {
	to, rev  int
	cap      float64
	cost     float64
}

type mcfGraph struct {
	adj   [][]int
	edges []mcfEdge
}

func newMcfGraph(n int) *mcfGraph {
	return &mcfGraph{adj: make([][]int, n)}
}

func (g *mcfGraph) addEdge(from, to int, cap, cost float64) {
	g.adj[from] = append(g.adj[from], len(g.edges))
	g.edges = append(g.edges, mcfEdge{to: to, rev: len(g.edges) + 1, cap: cap, cost: cost})
	g.adj[to] = append(g.adj[to], len(g.edges))
	g.edges = append(g.edges, mcfEdge{to: from, rev: len(g.edges) - 1, cap: 0, cost: -cost})
}

// shortestPath runs Bellman-Ford from source over edges with residual
// capacity > flowEps, returning per-node distance, the edge used to reach
// each node, and whether the sink was reached.
func (g *mcfGraph) shortestPath(source, sink int) (dist []float64, viaEdge []int, reached bool) {
	n := len(g.adj)
	dist = make([]float64, n)
	viaEdge = make([]int, n)
	inQueue := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		viaEdge[i] = -1
	}
	dist[source] = 0

	queue := []int{source}
	inQueue[source] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for _, eid := range g.adj[u] {
			e := g.edges[eid]
			if e.cap <= flowEps {
				continue
			}
			nd := dist[u] + e.cost
			if nd < dist[e.to]-1e-15 {
				dist[e.to] = nd
				viaEdge[e.to] = eid
				if !inQueue[e.to] {
					queue = append(queue, e.to)
					inQueue[e.to] = true
				}
			}
		}
	}

	return dist, viaEdge, !math.IsInf(dist[sink], 1)
}

// minCostFlow pushes up to targetFlow units of flow from source to sink
// along successive shortest augmenting paths, returning the total cost of
// the flow actually sent (equal to targetFlow whenever the network is
// feasible, which it always is for the balanced transportation instances
// this package builds).
func (g *mcfGraph) minCostFlow(source, sink int, targetFlow float64) float64 {
	totalCost := 0.0
	remaining := targetFlow

	for remaining > flowEps {
		dist, viaEdge, reached := g.shortestPath(source, sink)
		if !reached {
			break
		}

		bottleneck := remaining
		for v := sink; v != source; {
			eid := viaEdge[v]
			e := g.edges[eid]
			if e.cap < bottleneck {
				bottleneck = e.cap
			}
			v = g.edges[e.rev].to
		}

		for v := sink; v != source; {
			eid := viaEdge[v]
			g.edges[eid].cap -= bottleneck
			g.edges[g.edges[eid].rev].cap += bottleneck
			v = g.edges[g.edges[eid].rev].to
		}

		totalCost += bottleneck * dist[sink]
		remaining -= bottleneck
	}

	return totalCost
}

// TransportCost solves the balanced transportation problem between supply
// and demand (equal total mass) over the given cost matrix, returning the
// minimum total transport cost. Complexity is small-instance friendly:
// O((n+m) * E) Bellman-Ford augmentations for an n×m cost matrix.
func TransportCost(cost [][]float64, supply, demand []float64) float64 {
	n := len(supply)
	m := len(demand)
	if n == 0 || m == 0 {
		return 0
	}

	source := 0
	sink := n + m + 1
	g := newMcfGraph(n + m + 2)

	total := 0.0
	for i, s := range supply {
		g.addEdge(source, 1+i, s, 0)
		total += s
	}
	for j, d := range demand {
		g.addEdge(1+n+j, sink, d, 0)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			g.addEdge(1+i, 1+n+j, math.Inf(1), cost[i][j])
		}
	}

	return g.minCostFlow(source, sink, total)
}
