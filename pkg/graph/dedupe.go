package graph

import (
	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// dedupeByKey keeps the first occurrence of each key in a single pass.
func dedupeByKey[T any](items []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}

// DeduplicateNodes removes nodes with repeated ids, keeping the first
// occurrence.
func DeduplicateNodes(nodes []common.GraphNode) []common.GraphNode {
	return dedupeByKey(nodes, func(n common.GraphNode) string { return n.ID })
}

// DeduplicateEdges removes edges with repeated ids, keeping the first
// occurrence.
func DeduplicateEdges(edges []common.GraphEdge) []common.GraphEdge {
	return dedupeByKey(edges, func(e common.GraphEdge) string { return e.ID })
}

// DeduplicateEdgesByPair removes edges that repeat a (source, target) pair,
// keeping the first occurrence. Direction matters: a->b and b->a are
// distinct pairs and both survive.
func DeduplicateEdgesByPair(edges []common.GraphEdge) []common.GraphEdge {
	return dedupeByKey(edges, func(e common.GraphEdge) string {
		return e.Source + "|" + e.Target
	})
}

// FilterNodesByIncludedIDs returns the nodes whose id is in ids, preserving
// order. An empty or nil set yields an empty result.
func FilterNodesByIncludedIDs(nodes []common.GraphNode, ids map[string]struct{}) []common.GraphNode {
	result := make([]common.GraphNode, 0, len(nodes))
	for _, node := range nodes {
		if _, ok := ids[node.ID]; ok {
			result = append(result, node)
		}
	}
	return result
}

// FilterEdgesByIncludedIDs returns the edges whose id is in ids, preserving
// order. An empty or nil set yields an empty result.
func FilterEdgesByIncludedIDs(edges []common.GraphEdge, ids map[string]struct{}) []common.GraphEdge {
	result := make([]common.GraphEdge, 0, len(edges))
	for _, edge := range edges {
		if _, ok := ids[edge.ID]; ok {
			result = append(result, edge)
		}
	}
	return result
}

// ExtractNodeIDs collects the node ids into a set.
func ExtractNodeIDs(nodes []common.GraphNode) map[string]struct{} {
	ids := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		ids[node.ID] = struct{}{}
	}
	return ids
}

// ExtractEdgeIDs collects the edge ids into a set.
func ExtractEdgeIDs(edges []common.GraphEdge) map[string]struct{} {
	ids := make(map[string]struct{}, len(edges))
	for _, edge := range edges {
		ids[edge.ID] = struct{}{}
	}
	return ids
}
