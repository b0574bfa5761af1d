package graph

import (
	"fmt"

	"github.com/maxepunk/alnretool/backend/pkg/common"
	"github.com/maxepunk/alnretool/backend/pkg/logger"
)

// ProcessCharacterRelationships emits relation records for a character's
// connections and ownership records for its owned elements.
//
// Connections that point at characters missing from allCharacters are
// skipped: content is allowed to be reference-incomplete during authoring,
// so a dangling id is not an error.
func (p *Processor) ProcessCharacterRelationships(character common.Character, allCharacters []common.Character) []common.RelationshipRecord {
	characterIndex := make(map[string]int, len(allCharacters))
	for i := range allCharacters {
		characterIndex[allCharacters[i].ID] = i
	}

	records := make([]common.RelationshipRecord, 0)
	bidirectional := !p.disableBidirectional

	for _, targetID := range character.ConnectionIDs {
		idx, ok := characterIndex[targetID]
		if !ok {
			logger.Debug("[Graph] Skipping unresolved character connection",
				"session", p.session.id, "source", character.ID, "target", targetID)
			continue
		}
		if !p.included(targetID) {
			continue
		}
		if !p.register(common.RelRelation, character.ID, targetID, bidirectional) {
			continue
		}

		target := allCharacters[idx]
		records = append(records, common.RelationshipRecord{
			Kind:          common.RelRelation,
			Source:        character.ID,
			Target:        targetID,
			Label:         fmt.Sprintf("%s ↔ %s", character.Name, target.Name),
			Weight:        CalculateEdgeWeight(common.RelRelation),
			Bidirectional: bidirectional,
		})
	}

	for _, elementID := range character.OwnedElementIDs {
		if !p.included(elementID) {
			continue
		}
		if !p.register(common.RelOwnership, character.ID, elementID, false) {
			continue
		}

		records = append(records, common.RelationshipRecord{
			Kind:   common.RelOwnership,
			Source: character.ID,
			Target: elementID,
			Label:  "owns",
			Weight: CalculateEdgeWeight(common.RelOwnership),
		})
	}

	return records
}

// ProcessPuzzleRelationships emits dependency records for sub-puzzles,
// requirement records for puzzle elements, and reward records for rewards.
func (p *Processor) ProcessPuzzleRelationships(puzzle common.Puzzle) []common.RelationshipRecord {
	records := make([]common.RelationshipRecord, 0)

	for _, subPuzzleID := range puzzle.SubPuzzleIDs {
		if !p.included(subPuzzleID) {
			continue
		}
		if !p.register(common.RelDependency, puzzle.ID, subPuzzleID, false) {
			continue
		}
		records = append(records, common.RelationshipRecord{
			Kind:   common.RelDependency,
			Source: puzzle.ID,
			Target: subPuzzleID,
			Label:  "depends on",
			Weight: CalculateEdgeWeight(common.RelDependency),
		})
	}

	for _, elementID := range puzzle.PuzzleElementIDs {
		if !p.included(elementID) {
			continue
		}
		if !p.register(common.RelRequirement, puzzle.ID, elementID, false) {
			continue
		}
		records = append(records, common.RelationshipRecord{
			Kind:   common.RelRequirement,
			Source: puzzle.ID,
			Target: elementID,
			Label:  "requires",
			Weight: CalculateEdgeWeight(common.RelRequirement),
		})
	}

	for _, rewardID := range puzzle.RewardIDs {
		if !p.included(rewardID) {
			continue
		}
		if !p.register(common.RelReward, puzzle.ID, rewardID, false) {
			continue
		}
		records = append(records, common.RelationshipRecord{
			Kind:   common.RelReward,
			Source: puzzle.ID,
			Target: rewardID,
			Label:  "rewards",
			Weight: CalculateEdgeWeight(common.RelReward),
		})
	}

	return records
}

// ProcessElementRelationships emits requirement and reward records for the
// puzzles an element references.
//
// The element stores these references from its own perspective, but the
// emitted records are sourced from the puzzle: requirement and reward edges
// always run puzzle -> element. Consumers rely on that orientation, so the
// inversion here is load-bearing.
func (p *Processor) ProcessElementRelationships(element common.Element, allPuzzles []common.Puzzle) []common.RelationshipRecord {
	puzzleIndex := make(map[string]struct{}, len(allPuzzles))
	for i := range allPuzzles {
		puzzleIndex[allPuzzles[i].ID] = struct{}{}
	}

	records := make([]common.RelationshipRecord, 0)

	for _, puzzleID := range element.RequiredForPuzzleIDs {
		if _, ok := puzzleIndex[puzzleID]; !ok {
			logger.Debug("[Graph] Skipping unresolved puzzle reference",
				"session", p.session.id, "element", element.ID, "puzzle", puzzleID)
			continue
		}
		if !p.included(puzzleID) || !p.included(element.ID) {
			continue
		}
		if !p.register(common.RelRequirement, puzzleID, element.ID, false) {
			continue
		}
		records = append(records, common.RelationshipRecord{
			Kind:   common.RelRequirement,
			Source: puzzleID,
			Target: element.ID,
			Label:  "requires",
			Weight: CalculateEdgeWeight(common.RelRequirement),
		})
	}

	for _, puzzleID := range element.RewardedByPuzzleIDs {
		if _, ok := puzzleIndex[puzzleID]; !ok {
			logger.Debug("[Graph] Skipping unresolved puzzle reference",
				"session", p.session.id, "element", element.ID, "puzzle", puzzleID)
			continue
		}
		if !p.included(puzzleID) || !p.included(element.ID) {
			continue
		}
		if !p.register(common.RelReward, puzzleID, element.ID, false) {
			continue
		}
		records = append(records, common.RelationshipRecord{
			Kind:   common.RelReward,
			Source: puzzleID,
			Target: element.ID,
			Label:  "rewards",
			Weight: CalculateEdgeWeight(common.RelReward),
		})
	}

	return records
}

// ProcessTimelineRelationships emits timeline records linking an event to
// each involved character.
func (p *Processor) ProcessTimelineRelationships(event common.TimelineEvent) []common.RelationshipRecord {
	records := make([]common.RelationshipRecord, 0)

	for _, characterID := range event.CharactersInvolvedIDs {
		if !p.included(characterID) {
			continue
		}
		if !p.register(common.RelTimeline, event.ID, characterID, false) {
			continue
		}
		records = append(records, common.RelationshipRecord{
			Kind:   common.RelTimeline,
			Source: event.ID,
			Target: characterID,
			Label:  "involves",
			Weight: CalculateEdgeWeight(common.RelTimeline),
		})
	}

	return records
}

// ProcessAllRelationships runs every extractor over the supplied collections
// and converts the combined records into edges.
//
// Extraction order is fixed (characters, puzzles, elements, timeline) so
// that dedup collisions between entity passes resolve reproducibly.
func (p *Processor) ProcessAllRelationships(data common.EntityCollections) []common.GraphEdge {
	records := make([]common.RelationshipRecord, 0)

	for _, character := range data.Characters {
		records = append(records, p.ProcessCharacterRelationships(character, data.Characters)...)
	}
	for _, puzzle := range data.Puzzles {
		records = append(records, p.ProcessPuzzleRelationships(puzzle)...)
	}
	for _, element := range data.Elements {
		records = append(records, p.ProcessElementRelationships(element, data.Puzzles)...)
	}
	for _, event := range data.Timeline {
		records = append(records, p.ProcessTimelineRelationships(event)...)
	}

	logger.Debug("[Graph] Relationship pass completed",
		"session", p.session.id, "records", len(records))

	return p.CreateEdgesFromRelationships(records)
}
