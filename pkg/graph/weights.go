package graph

import (
	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// edgeWeights is the fixed weight table per relationship kind. "owner" is a
// legacy spelling of ownership that still appears in older content exports.
var edgeWeights = map[common.RelationshipKind]float64{
	common.RelRequirement:       10,
	common.RelReward:            8,
	common.RelOwnership:         6,
	common.RelChain:             15,
	common.RelTimeline:          5,
	common.RelCollaboration:     4,
	"owner":                     6,
	common.RelContainer:         3,
	common.RelDependency:        10,
	common.RelRelation:          4,
	common.RelPuzzleGrouping:    12,
	common.RelVirtualDependency: 7,
}

const defaultEdgeWeight = 1

// CalculateEdgeWeight returns the weight for a relationship kind. Unknown
// kinds get the default weight.
func CalculateEdgeWeight(kind common.RelationshipKind) float64 {
	if weight, ok := edgeWeights[kind]; ok {
		return weight
	}
	return defaultEdgeWeight
}
