package graph

import (
	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// MergeAndDeduplicateNodes concatenates the node lists in argument order and
// removes id duplicates across the whole concatenation, keeping the first
// occurrence.
func MergeAndDeduplicateNodes(lists ...[]common.GraphNode) []common.GraphNode {
	total := 0
	for _, list := range lists {
		total += len(list)
	}
	merged := make([]common.GraphNode, 0, total)
	for _, list := range lists {
		merged = append(merged, list...)
	}
	return DeduplicateNodes(merged)
}

// MergeAndDeduplicateEdges concatenates the edge lists in argument order and
// removes id duplicates across the whole concatenation, keeping the first
// occurrence.
func MergeAndDeduplicateEdges(lists ...[]common.GraphEdge) []common.GraphEdge {
	total := 0
	for _, list := range lists {
		total += len(list)
	}
	merged := make([]common.GraphEdge, 0, total)
	for _, list := range lists {
		merged = append(merged, list...)
	}
	return DeduplicateEdges(merged)
}
