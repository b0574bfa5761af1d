package common

// EntityKind identifies which of the four content variants a node was
// derived from.
type EntityKind string

const (
	KindCharacter EntityKind = "character"
	KindElement   EntityKind = "element"
	KindPuzzle    EntityKind = "puzzle"
	KindTimeline  EntityKind = "timeline"
)

// Character is a cast member of the scenario. Connections link it to other
// characters; OwnedElementIDs list the physical or digital props it owns.
//
// All entity types are read-only reference data: the graph engine never
// mutates them, and any of their reference slices may point at entities
// that do not (yet) exist in the content set.
type Character struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ConnectionIDs   []string `json:"connections"`
	OwnedElementIDs []string `json:"ownedElementIds"`
}

// Puzzle is a challenge in the scenario. Sub-puzzles are prerequisites,
// puzzle elements are required inputs, and rewards are granted on solve.
type Puzzle struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	SubPuzzleIDs     []string `json:"subPuzzleIds"`
	PuzzleElementIDs []string `json:"puzzleElementIds"`
	RewardIDs        []string `json:"rewardIds"`
}

// Element is a prop, document, or other artifact. Its puzzle references are
// stored from the element's own perspective; the engine re-orients them so
// requirement and reward edges always run from the puzzle.
type Element struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	RequiredForPuzzleIDs []string `json:"requiredForPuzzleIds"`
	RewardedByPuzzleIDs  []string `json:"rewardedByPuzzleIds"`
}

// TimelineEvent is a beat in the scenario's backstory involving one or more
// characters.
type TimelineEvent struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	CharactersInvolvedIDs []string `json:"charactersInvolvedIds"`
}

// EntityCollections carries the content set (or any subset of it) between
// the repository, the relationship processor, and the node collector.
// A nil slice means the collection was not supplied.
type EntityCollections struct {
	Characters []Character     `json:"characters,omitempty"`
	Elements   []Element       `json:"elements,omitempty"`
	Puzzles    []Puzzle        `json:"puzzles,omitempty"`
	Timeline   []TimelineEvent `json:"timeline,omitempty"`
}

// RelationshipKind is the closed set of typed links the processor can emit.
// Each kind maps to a fixed edge weight.
type RelationshipKind string

const (
	RelRequirement       RelationshipKind = "requirement"
	RelReward            RelationshipKind = "reward"
	RelOwnership         RelationshipKind = "ownership"
	RelRelation          RelationshipKind = "relation"
	RelChain             RelationshipKind = "chain"
	RelDependency        RelationshipKind = "dependency"
	RelTimeline          RelationshipKind = "timeline"
	RelCollaboration     RelationshipKind = "collaboration"
	RelContainer         RelationshipKind = "container"
	RelPuzzleGrouping    RelationshipKind = "puzzle-grouping"
	RelVirtualDependency RelationshipKind = "virtual-dependency"
)

// RelationshipRecord is the intermediate description of a link between two
// entities, produced by the processor before edge materialization.
type RelationshipRecord struct {
	Kind          RelationshipKind `json:"type"`
	Source        string           `json:"source"`
	Target        string           `json:"target"`
	Label         string           `json:"label,omitempty"`
	Weight        float64          `json:"weight"`
	Bidirectional bool             `json:"bidirectional"`
	Metadata      map[string]any   `json:"metadata,omitempty"`
}

// GraphEdge is a materialized edge consumed by the rendering layer.
// Its ID is unique per (type, source, target) triple.
type GraphEdge struct {
	ID               string           `json:"id"`
	Source           string           `json:"source"`
	Target           string           `json:"target"`
	RelationshipType RelationshipKind `json:"relationshipType"`
	Weight           float64          `json:"weight"`
	Label            string           `json:"label,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
}

// Position is screen placement owned by the rendering layer. Nodes are
// created at the origin; layout happens downstream.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the payload attached to a graph node. Entity holds the source
// entity in whatever shape the injected transformer chose.
type NodeData struct {
	Label  string `json:"label"`
	Entity any    `json:"entity"`
}

// GraphNode is a materialized node consumed by the rendering layer.
type GraphNode struct {
	ID       string     `json:"id"`
	Type     EntityKind `json:"type"`
	Data     NodeData   `json:"data"`
	Position Position   `json:"position"`
}

// Graph is the assembled, deduplicated node and edge set.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
