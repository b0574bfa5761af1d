package graph

import (
	"reflect"
	"testing"

	"github.com/maxepunk/alnretool/backend/pkg/common"
)

func TestCalculateEdgeWeight(t *testing.T) {
	tests := []struct {
		name string
		kind common.RelationshipKind
		want float64
	}{
		{"requirement", common.RelRequirement, 10},
		{"reward", common.RelReward, 8},
		{"ownership", common.RelOwnership, 6},
		{"chain", common.RelChain, 15},
		{"timeline", common.RelTimeline, 5},
		{"collaboration", common.RelCollaboration, 4},
		{"legacy owner", "owner", 6},
		{"container", common.RelContainer, 3},
		{"dependency", common.RelDependency, 10},
		{"relation", common.RelRelation, 4},
		{"puzzle grouping", common.RelPuzzleGrouping, 12},
		{"virtual dependency", common.RelVirtualDependency, 7},
		{"unknown kind", "unknown-kind", 1},
		{"empty kind", "", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateEdgeWeight(tc.kind)
			if got != tc.want {
				t.Fatalf("CalculateEdgeWeight(%q) = %v, want %v", tc.kind, got, tc.want)
			}
		})
	}
}

func TestProcessCharacterRelationships(t *testing.T) {
	alice := common.Character{ID: "alice", Name: "Alice", ConnectionIDs: []string{"bob", "ghost"}}
	bob := common.Character{ID: "bob", Name: "Bob", ConnectionIDs: []string{"alice"}}
	cast := []common.Character{alice, bob}

	t.Run("connections resolve and label both names", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{})
		records := p.ProcessCharacterRelationships(alice, cast)

		want := []common.RelationshipRecord{
			{
				Kind:          common.RelRelation,
				Source:        "alice",
				Target:        "bob",
				Label:         "Alice ↔ Bob",
				Weight:        4,
				Bidirectional: true,
			},
		}
		if !reflect.DeepEqual(records, want) {
			t.Errorf("records = %#v, want %#v", records, want)
		}
	})

	t.Run("mirrored pair is suppressed", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{})
		first := p.ProcessCharacterRelationships(alice, cast)
		second := p.ProcessCharacterRelationships(bob, cast)

		if len(first) != 1 {
			t.Fatalf("first pass records = %d, want 1", len(first))
		}
		if len(second) != 0 {
			t.Errorf("reverse connection produced %d records, want 0", len(second))
		}
	})

	t.Run("mirrored pair survives when bidirectional is off", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{DisableBidirectional: true})
		first := p.ProcessCharacterRelationships(alice, cast)
		second := p.ProcessCharacterRelationships(bob, cast)

		if len(first) != 1 || first[0].Bidirectional {
			t.Fatalf("first pass = %#v, want one unidirectional record", first)
		}
		if len(second) != 1 {
			t.Errorf("reverse connection produced %d records, want 1", len(second))
		}
	})

	t.Run("repeat pass yields nothing until cache clear", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{})
		first := p.ProcessCharacterRelationships(alice, cast)
		repeat := p.ProcessCharacterRelationships(alice, cast)

		if len(first) == 0 {
			t.Fatal("first pass produced no records")
		}
		if len(repeat) != 0 {
			t.Errorf("repeat pass produced %d records, want 0", len(repeat))
		}

		p.ClearCache()
		fresh := p.ProcessCharacterRelationships(alice, cast)
		if !reflect.DeepEqual(fresh, first) {
			t.Errorf("after ClearCache records = %#v, want %#v", fresh, first)
		}
	})

	t.Run("inclusion filter drops excluded targets", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{
			IncludedNodeIDs: map[string]struct{}{"alice": {}},
		})
		records := p.ProcessCharacterRelationships(alice, cast)
		if len(records) != 0 {
			t.Errorf("records = %#v, want none (bob excluded)", records)
		}
	})

	t.Run("owned elements become ownership records", func(t *testing.T) {
		owner := common.Character{ID: "carol", Name: "Carol", OwnedElementIDs: []string{"watch", "letter"}}
		p := NewProcessor(ProcessorParams{})
		records := p.ProcessCharacterRelationships(owner, []common.Character{owner})

		want := []common.RelationshipRecord{
			{Kind: common.RelOwnership, Source: "carol", Target: "watch", Label: "owns", Weight: 6},
			{Kind: common.RelOwnership, Source: "carol", Target: "letter", Label: "owns", Weight: 6},
		}
		if !reflect.DeepEqual(records, want) {
			t.Errorf("records = %#v, want %#v", records, want)
		}
	})
}

func TestProcessPuzzleRelationships(t *testing.T) {
	puzzle := common.Puzzle{
		ID:               "vault",
		Name:             "Vault",
		SubPuzzleIDs:     []string{"dial"},
		PuzzleElementIDs: []string{"key"},
		RewardIDs:        []string{"deed"},
	}

	p := NewProcessor(ProcessorParams{})
	records := p.ProcessPuzzleRelationships(puzzle)

	want := []common.RelationshipRecord{
		{Kind: common.RelDependency, Source: "vault", Target: "dial", Label: "depends on", Weight: 10},
		{Kind: common.RelRequirement, Source: "vault", Target: "key", Label: "requires", Weight: 10},
		{Kind: common.RelReward, Source: "vault", Target: "deed", Label: "rewards", Weight: 8},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %#v, want %#v", records, want)
	}
}

func TestProcessElementRelationships(t *testing.T) {
	vault := common.Puzzle{ID: "vault", Name: "Vault"}
	safe := common.Puzzle{ID: "safe", Name: "Safe"}
	puzzles := []common.Puzzle{vault, safe}

	key := common.Element{
		ID:                   "key",
		Name:                 "Brass Key",
		RequiredForPuzzleIDs: []string{"vault", "missing"},
		RewardedByPuzzleIDs:  []string{"safe"},
	}

	p := NewProcessor(ProcessorParams{})
	records := p.ProcessElementRelationships(key, puzzles)

	// Edges run from the puzzle even though the element declared the link.
	want := []common.RelationshipRecord{
		{Kind: common.RelRequirement, Source: "vault", Target: "key", Label: "requires", Weight: 10},
		{Kind: common.RelReward, Source: "safe", Target: "key", Label: "rewards", Weight: 8},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %#v, want %#v", records, want)
	}
}

func TestProcessElementRelationshipsDedupesAgainstPuzzlePass(t *testing.T) {
	vault := common.Puzzle{ID: "vault", Name: "Vault", PuzzleElementIDs: []string{"key"}}
	key := common.Element{ID: "key", Name: "Brass Key", RequiredForPuzzleIDs: []string{"vault"}}

	p := NewProcessor(ProcessorParams{})
	puzzleRecords := p.ProcessPuzzleRelationships(vault)
	elementRecords := p.ProcessElementRelationships(key, []common.Puzzle{vault})

	if len(puzzleRecords) != 1 {
		t.Fatalf("puzzle pass records = %d, want 1", len(puzzleRecords))
	}
	if len(elementRecords) != 0 {
		t.Errorf("element pass re-emitted %d records for the same triple, want 0", len(elementRecords))
	}
}

func TestProcessElementRelationshipsInclusionFilter(t *testing.T) {
	vault := common.Puzzle{ID: "vault", Name: "Vault", PuzzleElementIDs: []string{"key"}}
	key := common.Element{ID: "key", Name: "Brass Key", RequiredForPuzzleIDs: []string{"vault"}}
	puzzles := []common.Puzzle{vault}

	t.Run("excluded element is dropped on both declaration sides", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{
			IncludedNodeIDs: idSet("vault"),
		})

		puzzleRecords := p.ProcessPuzzleRelationships(vault)
		elementRecords := p.ProcessElementRelationships(key, puzzles)

		if len(puzzleRecords) != 0 {
			t.Errorf("puzzle-declared records = %#v, want none (key excluded)", puzzleRecords)
		}
		if len(elementRecords) != 0 {
			t.Errorf("element-declared records = %#v, want none (key excluded)", elementRecords)
		}
	})

	t.Run("excluded puzzle is dropped from the element pass", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{
			IncludedNodeIDs: idSet("key"),
		})
		records := p.ProcessElementRelationships(key, puzzles)
		if len(records) != 0 {
			t.Errorf("records = %#v, want none (vault excluded)", records)
		}
	})

	t.Run("both endpoints included emits the record", func(t *testing.T) {
		p := NewProcessor(ProcessorParams{
			IncludedNodeIDs: idSet("vault", "key"),
		})
		records := p.ProcessElementRelationships(key, puzzles)
		want := []common.RelationshipRecord{
			{Kind: common.RelRequirement, Source: "vault", Target: "key", Label: "requires", Weight: 10},
		}
		if !reflect.DeepEqual(records, want) {
			t.Errorf("records = %#v, want %#v", records, want)
		}
	})
}

func TestProcessTimelineRelationships(t *testing.T) {
	event := common.TimelineEvent{
		ID:                    "gala",
		Name:                  "The Gala",
		CharactersInvolvedIDs: []string{"alice", "bob"},
	}

	p := NewProcessor(ProcessorParams{})
	records := p.ProcessTimelineRelationships(event)

	want := []common.RelationshipRecord{
		{Kind: common.RelTimeline, Source: "gala", Target: "alice", Label: "involves", Weight: 5},
		{Kind: common.RelTimeline, Source: "gala", Target: "bob", Label: "involves", Weight: 5},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %#v, want %#v", records, want)
	}
}

func TestCreateEdgesFromRelationships(t *testing.T) {
	records := []common.RelationshipRecord{
		{Kind: common.RelRequirement, Source: "vault", Target: "key", Label: "requires", Weight: 10},
		{Kind: common.RelContainer, Source: "crate", Target: "key", Weight: 3},
	}

	tests := []struct {
		name      string
		minWeight float64
		wantIDs   []string
	}{
		{"no threshold keeps all", 0, []string{"requirement-vault-key", "container-crate-key"}},
		{"threshold drops light records", 5, []string{"requirement-vault-key"}},
		{"threshold above all yields empty", 20, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProcessor(ProcessorParams{MinWeight: tc.minWeight})
			edges := p.CreateEdgesFromRelationships(records)

			ids := make([]string, 0, len(edges))
			for _, edge := range edges {
				ids = append(ids, edge.ID)
			}
			if !reflect.DeepEqual(ids, tc.wantIDs) {
				t.Errorf("edge ids = %v, want %v", ids, tc.wantIDs)
			}
		})
	}
}

func TestProcessAllRelationships(t *testing.T) {
	data := common.EntityCollections{
		Characters: []common.Character{
			{ID: "alice", Name: "Alice", ConnectionIDs: []string{"bob"}, OwnedElementIDs: []string{"key"}},
			{ID: "bob", Name: "Bob", ConnectionIDs: []string{"alice"}},
		},
		Elements: []common.Element{
			{ID: "key", Name: "Brass Key", RequiredForPuzzleIDs: []string{"vault"}},
		},
		Puzzles: []common.Puzzle{
			{ID: "vault", Name: "Vault", PuzzleElementIDs: []string{"key"}, RewardIDs: []string{"deed"}},
		},
		Timeline: []common.TimelineEvent{
			{ID: "gala", Name: "The Gala", CharactersInvolvedIDs: []string{"alice"}},
		},
	}

	p := NewProcessor(ProcessorParams{})
	edges := p.ProcessAllRelationships(data)

	wantIDs := []string{
		"relation-alice-bob",
		"ownership-alice-key",
		"requirement-vault-key",
		"reward-vault-deed",
		"timeline-gala-alice",
	}

	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.ID)
	}
	if !reflect.DeepEqual(ids, wantIDs) {
		t.Errorf("edge ids = %v, want %v", ids, wantIDs)
	}
}

func TestProcessAllRelationshipsEmptyCollections(t *testing.T) {
	p := NewProcessor(ProcessorParams{})
	edges := p.ProcessAllRelationships(common.EntityCollections{})
	if len(edges) != 0 {
		t.Errorf("edges = %#v, want none", edges)
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	if s.ID() == "" {
		t.Fatal("session id is empty")
	}

	s.mark(common.RelRelation, "a", "b")
	if !s.seen(common.RelRelation, "a", "b") {
		t.Fatal("triple not registered")
	}

	s.Reset()
	if s.seen(common.RelRelation, "a", "b") {
		t.Error("triple survived Reset")
	}
}
