package render

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrResourceCycle is returned when a dependency cycle between
	// resources is found. It always indicates a misconfiguration of the
	// relationship calculators on the resources involved.
	ErrResourceCycle = errors.New("resource cycle detected")
)

// resource is the behaviour graph needs from the nodes it orders.
type resource[R any] interface {
	identity() string
	implicitlyOrdered() bool
	relationTo(context.Context, R) (ResourceRelationship, bool)
	sortKey() (int, string)
	describe() string
	markup(context.Context, *template.Template, any) (string, error)
}

// graph is a directed acyclic graph of resources, used to ensure ordering
// constraints of CSS and JS assets are met.
//
// Nodes point to their dependencies, and dependencies are always walked
// first: with an edge from 1->2, 2 appears before 1.
type graph[R resource[R]] struct {
	nodes []R

	// edgesFrom is keyed by the dependent node and holds what it depends
	// on. edgesTo is the reverse index.
	edgesFrom map[int]map[int]struct{}
	edgesTo   map[int]map[int]struct{}
}

func newGraph[R resource[R]]() *graph[R] {
	return &graph[R]{
		edgesFrom: map[int]map[int]struct{}{},
		edgesTo:   map[int]map[int]struct{}{},
	}
}

// add appends res to the graph unless a resource with the same identity is
// already present. It returns the position of the new node, or -1.
func (g *graph[R]) add(res R) int {
	if slices.ContainsFunc(g.nodes, func(existing R) bool {
		return existing.identity() == res.identity()
	}) {
		return -1
	}
	g.nodes = append(g.nodes, res)
	return len(g.nodes) - 1
}

// dependOn records that node must be rendered after dep.
func (g *graph[R]) dependOn(node, dep int) {
	if g.edgesFrom[node] == nil {
		g.edgesFrom[node] = map[int]struct{}{}
	}
	if g.edgesTo[dep] == nil {
		g.edgesTo[dep] = map[int]struct{}{}
	}
	g.edgesFrom[node][dep] = struct{}{}
	g.edgesTo[dep][node] = struct{}{}
}

// addSequence adds resources declared together by one Component. Each
// implicitly ordered resource depends on the previous one, so declaration
// order survives rendering.
func (g *graph[R]) addSequence(resources []R) {
	last := -1
	for _, res := range resources {
		pos := g.add(res)
		if pos < 0 || !res.implicitlyOrdered() {
			continue
		}
		if last >= 0 {
			g.dependOn(pos, last)
		}
		last = pos
	}
}

// applyRelations consults every relationship calculator against every other
// node in the graph.
func (g *graph[R]) applyRelations(ctx context.Context) {
	for pos, res := range g.nodes {
		for otherPos, other := range g.nodes {
			if pos == otherPos {
				continue
			}
			rel, ok := res.relationTo(ctx, other)
			if !ok {
				continue
			}
			switch rel {
			case ResourceRelationshipAfter:
				g.dependOn(pos, otherPos)
			case ResourceRelationshipBefore:
				g.dependOn(otherPos, pos)
			case ResourceRelationshipNeutral:
				// no dependency implied
			}
		}
	}
}

func (g *graph[R]) less(a, b int) int {
	firstRank, firstKey := g.nodes[a].sortKey()
	secondRank, secondKey := g.nodes[b].sortKey()
	if firstRank != secondRank {
		return firstRank - secondRank
	}
	return strings.Compare(firstKey, secondKey)
}

// walk returns the nodes in dependency order. Among nodes that are ready at
// the same time, links sort before inline blocks and then by key, so output
// is deterministic. walk consumes the graph's edges.
func (g *graph[R]) walk() ([]R, error) {
	ready := make([]int, 0, len(g.nodes))
	results := make([]R, 0, len(g.nodes))
	for pos := range g.nodes {
		if len(g.edgesFrom[pos]) < 1 {
			delete(g.edgesFrom, pos)
			ready = append(ready, pos)
		}
	}
	slices.SortFunc(ready, g.less)
	for len(ready) > 0 {
		pos := ready[0]
		ready = ready[1:]
		results = append(results, g.nodes[pos])
		var changed bool
		for child := range g.edgesTo[pos] {
			delete(g.edgesFrom[child], pos)
			if len(g.edgesFrom[child]) < 1 {
				delete(g.edgesFrom, child)
				ready = append(ready, child)
				changed = true
			}
		}
		delete(g.edgesTo, pos)
		if changed {
			slices.SortFunc(ready, g.less)
		}
	}
	if len(g.edgesFrom) > 0 {
		return results, fmt.Errorf("%w: %s", ErrResourceCycle, g.describeCycle())
	}
	return results, nil
}

func (g *graph[R]) describeCycle() string {
	var edges, ids []string
	for from, deps := range g.edgesFrom {
		var vals []string
		for dep := range deps {
			vals = append(vals, strconv.Itoa(dep))
		}
		slices.Sort(vals)
		edges = append(edges, fmt.Sprintf("%d:%s", from, strings.Join(vals, ",")))
	}
	slices.Sort(edges)
	for _, node := range g.nodes {
		ids = append(ids, node.describe())
	}
	return fmt.Sprintf("edges_from=[%s], resources=[%s]", strings.Join(edges, "; "), strings.Join(ids, ", "))
}

// renderGraph walks the graph and concatenates each resource's markup.
func renderGraph[R resource[R]](ctx context.Context, g *graph[R], tmpl *template.Template, data any) (template.HTML, error) {
	ordered, err := g.walk()
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for _, res := range ordered {
		markup, err := res.markup(ctx, tmpl, data)
		if err != nil {
			return "", err
		}
		out.WriteString(markup)
	}
	return template.HTML(out.String()), nil // #nosec G203
}
