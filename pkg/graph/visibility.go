package graph

import (
	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// VisibilityMode selects how depth and filters combine into the visible
// node set.
type VisibilityMode string

const (
	// VisibilityPure shows the filtered set verbatim, ignoring depth.
	VisibilityPure VisibilityMode = "pure"
	// VisibilityFocused shows the depth-limited neighborhood of one node.
	VisibilityFocused VisibilityMode = "focused"
	// VisibilityConnected expands every filtered node by the depth limit.
	VisibilityConnected VisibilityMode = "connected"
)

type bfsEntry struct {
	id    string
	depth int
}

// buildAdjacency maps each endpoint to its neighbors in both directions, so
// traversal treats directed edges as undirected hops.
func buildAdjacency(edges []common.GraphEdge) map[string][]string {
	adjacency := make(map[string][]string, len(edges)*2)
	for _, edge := range edges {
		adjacency[edge.Source] = append(adjacency[edge.Source], edge.Target)
		adjacency[edge.Target] = append(adjacency[edge.Target], edge.Source)
	}
	return adjacency
}

// GetNodesWithinDepth returns every node reachable from focusID within
// maxDepth undirected hops, including focusID itself.
//
// Depths at or below zero yield the singleton {focusID}, as does an
// unreachable or isolated focus. An empty focusID is not special-cased:
// callers get a singleton set containing the empty id.
func GetNodesWithinDepth(focusID string, edges []common.GraphEdge, maxDepth int) map[string]struct{} {
	if maxDepth < 0 {
		maxDepth = 0
	}

	visible := map[string]struct{}{focusID: {}}
	if maxDepth == 0 {
		return visible
	}

	adjacency := buildAdjacency(edges)

	queue := []bfsEntry{{id: focusID, depth: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.depth >= maxDepth {
			continue
		}
		for _, neighbor := range adjacency[current.id] {
			if _, ok := visible[neighbor]; ok {
				continue
			}
			visible[neighbor] = struct{}{}
			queue = append(queue, bfsEntry{id: neighbor, depth: current.depth + 1})
		}
	}

	return visible
}

// restrictEdges keeps only edges whose both endpoints are in ids.
func restrictEdges(edges []common.GraphEdge, ids map[string]struct{}) []common.GraphEdge {
	restricted := make([]common.GraphEdge, 0, len(edges))
	for _, edge := range edges {
		_, sourceOK := ids[edge.Source]
		_, targetOK := ids[edge.Target]
		if sourceOK && targetOK {
			restricted = append(restricted, edge)
		}
	}
	return restricted
}

func copyIDSet(ids map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// GetVisibleNodeIDs computes the visible node set for the given mode.
//
// A non-positive connectionDepth, an unrecognized mode, or a focused mode
// without a focus node all fall back to returning filteredNodeIDs
// unchanged.
func GetVisibleNodeIDs(
	mode VisibilityMode,
	filteredNodeIDs map[string]struct{},
	edges []common.GraphEdge,
	focusNodeID string,
	connectionDepth int,
	respectFilters bool,
) map[string]struct{} {
	if connectionDepth <= 0 {
		return copyIDSet(filteredNodeIDs)
	}

	switch mode {
	case VisibilityPure:
		return copyIDSet(filteredNodeIDs)

	case VisibilityFocused:
		if focusNodeID == "" {
			return copyIDSet(filteredNodeIDs)
		}
		traversable := edges
		if respectFilters {
			traversable = restrictEdges(edges, filteredNodeIDs)
		}
		// The focus node is always part of the BFS result, so it stays
		// visible even when the filter excludes it.
		visible := GetNodesWithinDepth(focusNodeID, traversable, connectionDepth)
		if !respectFilters {
			for id := range filteredNodeIDs {
				visible[id] = struct{}{}
			}
		}
		return visible

	case VisibilityConnected:
		visible := copyIDSet(filteredNodeIDs)
		restricted := restrictEdges(edges, filteredNodeIDs)
		for id := range filteredNodeIDs {
			for reachable := range GetNodesWithinDepth(id, restricted, connectionDepth) {
				visible[reachable] = struct{}{}
			}
		}
		return visible

	default:
		return copyIDSet(filteredNodeIDs)
	}
}
