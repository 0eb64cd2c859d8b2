package services

import (
	"container/heap"
	"context"
	"log"
	"math"

	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/ports"
)

// Pathfinder computes shortest paths over the campus location graph
// using Dijkstra's algorithm.
//
// An optional PathCache sits in front of the search. Cache errors are
// logged and treated as misses so a degraded cache never breaks routing.
type Pathfinder struct {
	graph *domain.LocationGraph
	cache ports.PathCache
}

// NewPathfinder builds a Pathfinder over graph. cache may be nil.
func NewPathfinder(graph *domain.LocationGraph, cache ports.PathCache) *Pathfinder {
	return &Pathfinder{graph: graph, cache: cache}
}

// frontierItem is one priority-queue entry: a node reachable at a known
// cumulative distance. Stale entries are skipped via the visited set.
type frontierItem struct {
	name   string
	meters float64
}

// frontier is a min-heap of frontierItems ordered by cumulative distance,
// with ties broken by lexical node name to keep search order, and
// therefore returned paths, deterministic.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].meters != f[j].meters {
		return f[i].meters < f[j].meters
	}
	return f[i].name < f[j].name
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// FindShortestPath returns the shortest path from start to end and its
// length in meters.
//
// Unreachable pairs and unknown names are a normal outcome, not an
// error: the result is (nil, +Inf) and callers must check for an empty
// path. start == end short-circuits to ([start], 0).
func (p *Pathfinder) FindShortestPath(ctx context.Context, start, end string) ([]string, float64) {
	if !p.graph.HasLocation(start) || !p.graph.HasLocation(end) {
		return nil, math.Inf(1)
	}

	if start == end {
		return []string{start}, 0
	}

	if cached, ok := p.cacheGet(ctx, start, end); ok {
		return cached.Path, cached.Meters
	}

	dist := map[string]float64{start: 0}
	prev := map[string]string{}
	visited := map[string]struct{}{}

	pq := &frontier{{name: start, meters: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(frontierItem)

		if _, ok := visited[current.name]; ok {
			continue
		}
		visited[current.name] = struct{}{}

		if current.name == end {
			path := reconstructPath(prev, start, end)
			p.cachePut(ctx, start, end, ports.PathResult{Path: path, Meters: current.meters})
			return path, current.meters
		}

		for neighbor, edgeMeters := range p.graph.Neighbors(current.name) {
			if _, ok := visited[neighbor]; ok {
				continue
			}

			next := current.meters + edgeMeters
			if best, ok := dist[neighbor]; !ok || next < best {
				dist[neighbor] = next
				prev[neighbor] = current.name
				heap.Push(pq, frontierItem{name: neighbor, meters: next})
			}
		}
	}

	return nil, math.Inf(1)
}

// reconstructPath walks the predecessor links from end back to start and
// reverses the result.
func reconstructPath(prev map[string]string, start, end string) []string {
	path := []string{end}
	for node := end; node != start; {
		node = prev[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPathToMultiple visits every destination starting from start using
// the nearest-neighbor heuristic: repeatedly route to the closest
// unvisited destination. Optionally routes back to start at the end.
//
// This is an approximation. It does not guarantee the minimal total
// distance for three or more destinations; it trades optimality for
// determinism and O(n^2) pathfinding calls.
func (p *Pathfinder) FindPathToMultiple(ctx context.Context, start string, destinations []string, returnToStart bool) ([]string, float64) {
	remaining := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		if d != start {
			remaining[d] = struct{}{}
		}
	}

	if len(remaining) == 0 {
		if returnToStart && len(destinations) > 0 {
			return []string{start, start}, 0
		}
		return []string{start}, 0
	}

	path := []string{start}
	total := 0.0
	current := start

	for len(remaining) > 0 {
		nearest := ""
		nearestMeters := math.Inf(1)
		var nearestPath []string

		for dest := range remaining {
			subPath, meters := p.FindShortestPath(ctx, current, dest)
			if meters < nearestMeters || (meters == nearestMeters && dest < nearest) {
				nearest = dest
				nearestMeters = meters
				nearestPath = subPath
			}
		}

		if nearest == "" || math.IsInf(nearestMeters, 1) {
			// Remaining destinations are unreachable; return the partial tour.
			break
		}

		path = append(path, nearestPath[1:]...)
		total += nearestMeters
		current = nearest
		delete(remaining, nearest)
	}

	if returnToStart && current != start {
		returnPath, returnMeters := p.FindShortestPath(ctx, current, start)
		if len(returnPath) > 1 {
			path = append(path, returnPath[1:]...)
			total += returnMeters
		}
	}

	return path, total
}

// PathDistance sums the leg weights of an explicit path. Consecutive
// stops without a direct edge contribute their shortest-path distance
// instead.
func (p *Pathfinder) PathDistance(ctx context.Context, path []string) float64 {
	if len(path) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		if meters, ok := p.graph.Distance(path[i], path[i+1]); ok {
			total += meters
			continue
		}
		_, meters := p.FindShortestPath(ctx, path[i], path[i+1])
		total += meters
	}
	return total
}

// Instructions renders a path as per-leg navigation instructions with
// distance and planar heading, for the execution layer.
func (p *Pathfinder) Instructions(path []string) []domain.LegInstruction {
	if len(path) < 2 {
		return nil
	}

	out := make([]domain.LegInstruction, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]

		meters, ok := p.graph.Distance(from, to)
		if !ok {
			meters = 0
		}

		out = append(out, domain.LegInstruction{
			Step:       i + 1,
			From:       from,
			To:         to,
			Meters:     meters,
			HeadingDeg: p.heading(from, to),
		})
	}
	return out
}

// heading computes the planar bearing in degrees from one location to
// another, 0 along +X, counter-clockwise positive.
func (p *Pathfinder) heading(from, to string) float64 {
	a, okA := p.graph.Location(from)
	b, okB := p.graph.Location(to)
	if !okA || !okB {
		return 0
	}

	dx := b.Coordinates.X - a.Coordinates.X
	dy := b.Coordinates.Y - a.Coordinates.Y
	return math.Atan2(dy, dx) * 180 / math.Pi
}

func (p *Pathfinder) cacheGet(ctx context.Context, origin, destination string) (ports.PathResult, bool) {
	if p.cache == nil {
		return ports.PathResult{}, false
	}

	result, ok, err := p.cache.Get(ctx, origin, destination)
	if err != nil {
		log.Printf("path cache get failed: origin=%q destination=%q err=%v", origin, destination, err)
		return ports.PathResult{}, false
	}
	return result, ok
}

func (p *Pathfinder) cachePut(ctx context.Context, origin, destination string, result ports.PathResult) {
	if p.cache == nil {
		return
	}

	if err := p.cache.Put(ctx, origin, destination, result); err != nil {
		log.Printf("path cache put failed: origin=%q destination=%q err=%v", origin, destination, err)
	}
}
