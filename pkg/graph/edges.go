package graph

import (
	"fmt"

	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// EdgeID builds the canonical edge identifier for a relationship triple.
func EdgeID(kind common.RelationshipKind, source, target string) string {
	return fmt.Sprintf("%s-%s-%s", kind, source, target)
}

// CreateEdgesFromRelationships materializes records into edges, dropping any
// record whose weight is below the processor's minimum. Records map 1:1 to
// edges; duplicate triples were already rejected during registration.
func (p *Processor) CreateEdgesFromRelationships(records []common.RelationshipRecord) []common.GraphEdge {
	edges := make([]common.GraphEdge, 0, len(records))
	for _, record := range records {
		if record.Weight < p.minWeight {
			continue
		}
		edges = append(edges, common.GraphEdge{
			ID:               EdgeID(record.Kind, record.Source, record.Target),
			Source:           record.Source,
			Target:           record.Target,
			RelationshipType: record.Kind,
			Weight:           record.Weight,
			Label:            record.Label,
			Metadata:         record.Metadata,
		})
	}
	return edges
}
