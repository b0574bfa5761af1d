package graph

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/maxepunk/alnretool/backend/pkg/common"
)

// Session is the dedup registry for one relationship-processing pass.
// It records every (kind, source, target) triple that has been emitted so
// repeated or mirrored registrations are rejected. Sessions are not
// synchronized; use one session per concurrent pass.
type Session struct {
	id        string
	processed map[string]struct{}
}

// NewSession creates an empty session for a fresh processing pass.
func NewSession() *Session {
	return &Session{
		id:        gonanoid.Must(),
		processed: make(map[string]struct{}),
	}
}

// ID returns the session's identifier, used in diagnostics.
func (s *Session) ID() string {
	return s.id
}

// Reset discards all registered triples, keeping the session usable for a
// new pass.
func (s *Session) Reset() {
	s.processed = make(map[string]struct{})
}

func relationshipKey(kind common.RelationshipKind, source, target string) string {
	return string(kind) + ":" + source + ":" + target
}

func (s *Session) mark(kind common.RelationshipKind, source, target string) {
	s.processed[relationshipKey(kind, source, target)] = struct{}{}
}

func (s *Session) seen(kind common.RelationshipKind, source, target string) bool {
	_, ok := s.processed[relationshipKey(kind, source, target)]
	return ok
}

// Processor extracts typed relationship records from the content entities
// and materializes them into graph edges.
//
// A Processor owns one Session at a time. Reprocessing the same content
// requires ClearCache (or a fresh Processor), otherwise every relationship
// is rejected as already registered.
type Processor struct {
	disableBidirectional bool
	includedNodeIDs      map[string]struct{}
	minWeight            float64
	session              *Session
}

// ProcessorParams defines the configuration for creating a Processor.
//
// DisableBidirectional turns off bidirectional records and mirrored-pair
// suppression for character connections. IncludedNodeIDs, when non-nil,
// restricts relationship targets to the given set. MinWeight drops records
// below the threshold during edge creation.
type ProcessorParams struct {
	DisableBidirectional bool
	IncludedNodeIDs      map[string]struct{}
	MinWeight            float64
}

// NewProcessor creates a Processor with a fresh session.
func NewProcessor(params ProcessorParams) *Processor {
	return &Processor{
		disableBidirectional: params.DisableBidirectional,
		includedNodeIDs:      params.IncludedNodeIDs,
		minWeight:            params.MinWeight,
		session:              NewSession(),
	}
}

// Session returns the processor's current session.
func (p *Processor) Session() *Session {
	return p.session
}

// ClearCache replaces the processor's session with a fresh one, allowing an
// independent reprocessing pass.
func (p *Processor) ClearCache() {
	p.session = NewSession()
}

// included reports whether the id passes the inclusion filter. A nil filter
// means no restriction.
func (p *Processor) included(id string) bool {
	if p.includedNodeIDs == nil {
		return true
	}
	_, ok := p.includedNodeIDs[id]
	return ok
}

// register records the triple and reports whether it was new. When
// bidirectional processing is on, a mirrored triple counts as a duplicate.
func (p *Processor) register(kind common.RelationshipKind, source, target string, bidirectional bool) bool {
	if p.session.seen(kind, source, target) {
		return false
	}
	if bidirectional && p.session.seen(kind, target, source) {
		return false
	}
	p.session.mark(kind, source, target)
	return true
}
