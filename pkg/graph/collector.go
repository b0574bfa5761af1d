package graph

import (
	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// NodeTransformer converts entities into graph nodes. It owns label
// derivation and the node payload shape; the collector stays ignorant of
// both. Implementations must map input slices 1:1, preserving order.
type NodeTransformer interface {
	CharacterNodes(characters []common.Character) []common.GraphNode
	ElementNodes(elements []common.Element) []common.GraphNode
	PuzzleNodes(puzzles []common.Puzzle) []common.GraphNode
	TimelineNodes(events []common.TimelineEvent) []common.GraphNode
}

// NodeCollector selects entities and turns them into graph nodes through an
// injected transformer. An optional inclusion set restricts which entities
// are collected; nil means no restriction.
type NodeCollector struct {
	transformer     NodeTransformer
	includedNodeIDs map[string]struct{}
}

// NewNodeCollector creates a collector around the given transformer.
// includedNodeIDs may be nil.
func NewNodeCollector(transformer NodeTransformer, includedNodeIDs map[string]struct{}) *NodeCollector {
	return &NodeCollector{
		transformer:     transformer,
		includedNodeIDs: includedNodeIDs,
	}
}

// SetIncludedNodeIDs replaces the inclusion filter. Passing nil clears it.
// The change applies to subsequent collection calls only.
func (c *NodeCollector) SetIncludedNodeIDs(ids map[string]struct{}) {
	c.includedNodeIDs = ids
}

func (c *NodeCollector) included(id string) bool {
	if c.includedNodeIDs == nil {
		return true
	}
	_, ok := c.includedNodeIDs[id]
	return ok
}

// CollectCharacterNodes filters characters through the inclusion set and
// delegates to the transformer. Input order is preserved.
func (c *NodeCollector) CollectCharacterNodes(characters []common.Character) []common.GraphNode {
	selected := make([]common.Character, 0, len(characters))
	for _, character := range characters {
		if c.included(character.ID) {
			selected = append(selected, character)
		}
	}
	return c.transformer.CharacterNodes(selected)
}

// CollectElementNodes filters elements through the inclusion set and
// delegates to the transformer.
func (c *NodeCollector) CollectElementNodes(elements []common.Element) []common.GraphNode {
	selected := make([]common.Element, 0, len(elements))
	for _, element := range elements {
		if c.included(element.ID) {
			selected = append(selected, element)
		}
	}
	return c.transformer.ElementNodes(selected)
}

// CollectPuzzleNodes filters puzzles through the inclusion set and delegates
// to the transformer.
func (c *NodeCollector) CollectPuzzleNodes(puzzles []common.Puzzle) []common.GraphNode {
	selected := make([]common.Puzzle, 0, len(puzzles))
	for _, puzzle := range puzzles {
		if c.included(puzzle.ID) {
			selected = append(selected, puzzle)
		}
	}
	return c.transformer.PuzzleNodes(selected)
}

// CollectTimelineNodes filters timeline events through the inclusion set and
// delegates to the transformer.
func (c *NodeCollector) CollectTimelineNodes(events []common.TimelineEvent) []common.GraphNode {
	selected := make([]common.TimelineEvent, 0, len(events))
	for _, event := range events {
		if c.included(event.ID) {
			selected = append(selected, event)
		}
	}
	return c.transformer.TimelineNodes(selected)
}

// CollectFromIDs resolves ids against the collection matching kind,
// preserving the order of ids. Unresolved ids and ids failing the inclusion
// filter are dropped.
func (c *NodeCollector) CollectFromIDs(data common.EntityCollections, ids []string, kind common.EntityKind) []common.GraphNode {
	switch kind {
	case common.KindCharacter:
		index := make(map[string]int, len(data.Characters))
		for i := range data.Characters {
			index[data.Characters[i].ID] = i
		}
		selected := make([]common.Character, 0, len(ids))
		for _, id := range ids {
			if i, ok := index[id]; ok && c.included(id) {
				selected = append(selected, data.Characters[i])
			}
		}
		return c.transformer.CharacterNodes(selected)
	case common.KindElement:
		index := make(map[string]int, len(data.Elements))
		for i := range data.Elements {
			index[data.Elements[i].ID] = i
		}
		selected := make([]common.Element, 0, len(ids))
		for _, id := range ids {
			if i, ok := index[id]; ok && c.included(id) {
				selected = append(selected, data.Elements[i])
			}
		}
		return c.transformer.ElementNodes(selected)
	case common.KindPuzzle:
		index := make(map[string]int, len(data.Puzzles))
		for i := range data.Puzzles {
			index[data.Puzzles[i].ID] = i
		}
		selected := make([]common.Puzzle, 0, len(ids))
		for _, id := range ids {
			if i, ok := index[id]; ok && c.included(id) {
				selected = append(selected, data.Puzzles[i])
			}
		}
		return c.transformer.PuzzleNodes(selected)
	case common.KindTimeline:
		index := make(map[string]int, len(data.Timeline))
		for i := range data.Timeline {
			index[data.Timeline[i].ID] = i
		}
		selected := make([]common.TimelineEvent, 0, len(ids))
		for _, id := range ids {
			if i, ok := index[id]; ok && c.included(id) {
				selected = append(selected, data.Timeline[i])
			}
		}
		return c.transformer.TimelineNodes(selected)
	default:
		return []common.GraphNode{}
	}
}

// CollectAll collects every entity across all collections that passes the
// inclusion filter. Without a filter it returns the empty slice: "collect
// everything unfiltered" is treated as "collect nothing" here to avoid
// accidental full-graph materialization.
func (c *NodeCollector) CollectAll(data common.EntityCollections) []common.GraphNode {
	if c.includedNodeIDs == nil {
		return []common.GraphNode{}
	}
	return c.CollectSpecificEntities(data)
}

// CollectSpecificEntities collects only the supplied collections, always in
// the order characters, elements, puzzles, timeline.
func (c *NodeCollector) CollectSpecificEntities(data common.EntityCollections) []common.GraphNode {
	nodes := make([]common.GraphNode, 0)
	if data.Characters != nil {
		nodes = append(nodes, c.CollectCharacterNodes(data.Characters)...)
	}
	if data.Elements != nil {
		nodes = append(nodes, c.CollectElementNodes(data.Elements)...)
	}
	if data.Puzzles != nil {
		nodes = append(nodes, c.CollectPuzzleNodes(data.Puzzles)...)
	}
	if data.Timeline != nil {
		nodes = append(nodes, c.CollectTimelineNodes(data.Timeline)...)
	}
	return nodes
}
