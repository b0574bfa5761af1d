package graph

import (
	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// FindConnectedComponents partitions nodeIDs into connected subgraphs under
// the given records. Adjacency honors each record's Bidirectional flag, and
// records touching ids outside nodeIDs are ignored. Isolated nodes form
// singleton components.
func (p *Processor) FindConnectedComponents(nodeIDs []string, records []common.RelationshipRecord) []map[string]struct{} {
	inScope := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		inScope[id] = struct{}{}
	}

	adjacency := make(map[string][]string, len(nodeIDs))
	for _, record := range records {
		_, sourceOK := inScope[record.Source]
		_, targetOK := inScope[record.Target]
		if !sourceOK || !targetOK {
			continue
		}
		adjacency[record.Source] = append(adjacency[record.Source], record.Target)
		if record.Bidirectional {
			adjacency[record.Target] = append(adjacency[record.Target], record.Source)
		}
	}

	visited := make(map[string]struct{}, len(nodeIDs))
	components := make([]map[string]struct{}, 0)

	for _, start := range nodeIDs {
		if _, done := visited[start]; done {
			continue
		}

		component := make(map[string]struct{})
		stack := []string{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, done := visited[id]; done {
				continue
			}
			visited[id] = struct{}{}
			component[id] = struct{}{}
			stack = append(stack, adjacency[id]...)
		}

		components = append(components, component)
	}

	return components
}

// CalculateRelationshipStrength sums the weights of every record connecting
// a and b in either direction. Unrelated pairs score 0.
func (p *Processor) CalculateRelationshipStrength(a, b string, records []common.RelationshipRecord) float64 {
	strength := float64(0)
	for _, record := range records {
		if (record.Source == a && record.Target == b) ||
			(record.Source == b && record.Target == a) {
			strength += record.Weight
		}
	}
	return strength
}
