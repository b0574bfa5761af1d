package main

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/maxepunk/alnretool/backend/internal/util"
	"github.com/maxepunk/alnretool/backend/pkg/common"
	"github.com/maxepunk/alnretool/backend/pkg/graph"
	"github.com/maxepunk/alnretool/backend/pkg/logger"
	"github.com/maxepunk/alnretool/backend/pkg/logger/console"
)

// labelTransformer is the default entity-to-node mapping for the harness.
// The production UI injects its own transformer with richer payloads.
type labelTransformer struct{}

func (labelTransformer) CharacterNodes(characters []common.Character) []common.GraphNode {
	nodes := make([]common.GraphNode, 0, len(characters))
	for _, character := range characters {
		nodes = append(nodes, common.GraphNode{
			ID:   character.ID,
			Type: common.KindCharacter,
			Data: common.NodeData{Label: character.Name, Entity: character},
		})
	}
	return nodes
}

func (labelTransformer) ElementNodes(elements []common.Element) []common.GraphNode {
	nodes := make([]common.GraphNode, 0, len(elements))
	for _, element := range elements {
		nodes = append(nodes, common.GraphNode{
			ID:   element.ID,
			Type: common.KindElement,
			Data: common.NodeData{Label: element.Name, Entity: element},
		})
	}
	return nodes
}

func (labelTransformer) PuzzleNodes(puzzles []common.Puzzle) []common.GraphNode {
	nodes := make([]common.GraphNode, 0, len(puzzles))
	for _, puzzle := range puzzles {
		nodes = append(nodes, common.GraphNode{
			ID:   puzzle.ID,
			Type: common.KindPuzzle,
			Data: common.NodeData{Label: puzzle.Name, Entity: puzzle},
		})
	}
	return nodes
}

func (labelTransformer) TimelineNodes(events []common.TimelineEvent) []common.GraphNode {
	nodes := make([]common.GraphNode, 0, len(events))
	for _, event := range events {
		nodes = append(nodes, common.GraphNode{
			ID:   event.ID,
			Type: common.KindTimeline,
			Data: common.NodeData{Label: event.Name, Entity: event},
		})
	}
	return nodes
}

func main() {
	util.LoadEnv()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	bundlePath := util.GetEnv("CONTENT_BUNDLE")
	if len(os.Args) > 1 {
		bundlePath = os.Args[1]
	}
	if bundlePath == "" {
		logger.Fatal("No content bundle given, pass a path or set CONTENT_BUNDLE")
	}

	raw, err := os.ReadFile(bundlePath)
	if err != nil {
		logger.Fatal("Could not read content bundle", "path", bundlePath, "err", err)
	}

	var data common.EntityCollections
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Fatal("Could not decode content bundle", "path", bundlePath, "err", err)
	}

	logger.Info("Content bundle loaded",
		"characters", len(data.Characters),
		"elements", len(data.Elements),
		"puzzles", len(data.Puzzles),
		"timeline", len(data.Timeline))

	params := graph.ProcessorParams{
		DisableBidirectional: !util.GetEnvBool("GRAPH_BIDIRECTIONAL", true),
		MinWeight:            util.GetEnvFloat("GRAPH_MIN_WEIGHT", 0),
	}

	g, err := graph.BuildGraph(context.Background(), data, labelTransformer{}, params)
	if err != nil {
		logger.Fatal("Could not build graph", "err", err)
	}

	logger.Info("Graph assembled", "nodes", len(g.Nodes), "edges", len(g.Edges))

	// Components are computed over the materialized edges; the bidirectional
	// flag is already folded into mirrored-pair suppression at this point.
	records := make([]common.RelationshipRecord, 0, len(g.Edges))
	for _, edge := range g.Edges {
		records = append(records, common.RelationshipRecord{
			Kind:          edge.RelationshipType,
			Source:        edge.Source,
			Target:        edge.Target,
			Weight:        edge.Weight,
			Bidirectional: true,
		})
	}

	nodeIDs := make([]string, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		nodeIDs = append(nodeIDs, node.ID)
	}

	processor := graph.NewProcessor(params)
	components := processor.FindConnectedComponents(nodeIDs, records)
	logger.Info("Connected components", "count", len(components))

	focus := util.GetEnv("FOCUS_NODE")
	if focus == "" {
		return
	}

	depth := util.GetEnvInt("GRAPH_CONNECTION_DEPTH", 1)
	mode := graph.VisibilityMode(util.GetEnvString("VISIBILITY_MODE", string(graph.VisibilityFocused)))

	visible := graph.GetVisibleNodeIDs(mode, graph.ExtractNodeIDs(g.Nodes), g.Edges, focus, depth, true)

	ids := make([]string, 0, len(visible))
	for id := range visible {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	logger.Info("Visible nodes", "mode", mode, "focus", focus, "depth", depth, "count", len(ids))
	for _, id := range ids {
		logger.Info("  visible", "id", id)
	}
}
