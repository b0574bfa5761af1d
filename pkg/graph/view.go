package graph

import (
	"github.com/maxepunk/alnretool/backend/internal/util"
	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// ViewState is the snapshot of the UI filter state consumed on every
// visibility recomputation. The engine does not own this state; the caller
// supplies a fresh snapshot per call.
type ViewState struct {
	SearchTerm      string
	SelectedNodeID  string
	FocusNodeID     string
	ConnectionDepth int
	VisibilityMode  VisibilityMode
	RespectFilters  bool
}

// ResolveVisibleNodes combines the mode-based visible set with the selected
// node's neighborhood.
//
// Selection outranks filtering: whatever the filters produced, a selected
// node and its neighborhood are unioned in, never replaced. The
// neighborhood uses the configured depth, floored at one hop so selecting a
// node always reveals its direct neighbors.
func ResolveVisibleNodes(state ViewState, filteredNodeIDs map[string]struct{}, edges []common.GraphEdge) map[string]struct{} {
	visible := GetVisibleNodeIDs(
		state.VisibilityMode,
		filteredNodeIDs,
		edges,
		state.FocusNodeID,
		state.ConnectionDepth,
		state.RespectFilters,
	)

	if state.SelectedNodeID != "" {
		depth := util.Max(state.ConnectionDepth, 1)
		for id := range GetNodesWithinDepth(state.SelectedNodeID, edges, depth) {
			visible[id] = struct{}{}
		}
	}

	return visible
}
