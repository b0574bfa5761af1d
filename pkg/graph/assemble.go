package graph

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/maxepunk/alnretool/backend/pkg/common"
	"github.com/maxepunk/alnretool/backend/pkg/logger"
)

// BuildGraph runs relationship processing and node collection over the
// supplied collections and returns the assembled, deduplicated graph.
// This is the composition root the rendering layer calls.
//
// Edge production and node collection touch disjoint state (the processor's
// session and the collector respectively), so they run concurrently. The
// result is identical to running them sequentially.
func BuildGraph(
	ctx context.Context,
	data common.EntityCollections,
	transformer NodeTransformer,
	params ProcessorParams,
) (*common.Graph, error) {
	var nodes []common.GraphNode
	var edges []common.GraphEdge

	eg, gCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		select {
		case <-gCtx.Done():
			return gCtx.Err()
		default:
			processor := NewProcessor(params)
			edges = processor.ProcessAllRelationships(data)
			return nil
		}
	})

	eg.Go(func() error {
		select {
		case <-gCtx.Done():
			return gCtx.Err()
		default:
			collector := NewNodeCollector(transformer, params.IncludedNodeIDs)
			nodes = collector.CollectSpecificEntities(data)
			return nil
		}
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	graph := &common.Graph{
		Nodes: DeduplicateNodes(nodes),
		Edges: DeduplicateEdges(edges),
	}

	logger.Debug("[Graph] Assembly completed",
		"nodes", len(graph.Nodes), "edges", len(graph.Edges))

	return graph, nil
}
