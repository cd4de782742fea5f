package flow

import (
	"fmt"
	"strconv"

	"github.com/aretw0/grievanceflow/pkg/domain"
)

// EdgeIDStrategy selects how edge ids are produced.
type EdgeIDStrategy string

const (
	// EdgeIDDerived composes the id from source, handle and target (see dsl.EdgeID).
	// Ids do not depend on emission order, so subgraphs can be built independently.
	EdgeIDDerived EdgeIDStrategy = "derived"
	// EdgeIDSequential renumbers the final edge list e1..eN in emission order,
	// for importers that expect the legacy numbering.
	EdgeIDSequential EdgeIDStrategy = "sequential"
)

// EdgeIDStrategies lists the accepted strategies.
var EdgeIDStrategies = []EdgeIDStrategy{EdgeIDDerived, EdgeIDSequential}

// Valid reports whether s is a known strategy.
func (s EdgeIDStrategy) Valid() bool {
	return s == EdgeIDDerived || s == EdgeIDSequential
}

// ParseEdgeIDStrategy converts a flag value into a strategy.
func ParseEdgeIDStrategy(v string) (EdgeIDStrategy, error) {
	s := EdgeIDStrategy(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown edge id strategy %q (want derived or sequential)", v)
	}
	return s, nil
}

func renumber(edges []domain.Edge) {
	for i := range edges {
		edges[i].ID = "e" + strconv.Itoa(i+1)
	}
}
