package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quakeforge/logictree/pkg/domain"
)

// NodeFromYAML decodes a raw uncertainty node from a YAML document, the way
// an external format parser would deliver it. It fails the test on malformed
// input.
func NodeFromYAML(t *testing.T, doc string) *domain.Node {
	t.Helper()

	var node domain.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &node), "failed to decode node fixture")
	return &node
}

// TwoLevelTree builds the reference enumeration scenario: root set with
// b1 (0.6) and b2 (0.4), where b1 conditions a child set with c1 (0.7) and
// c2 (0.3). Expected paths: (0.42 [b1 c1]), (0.18 [b1 c2]), (0.40 [b2]).
func TwoLevelTree(t *testing.T) *domain.BranchSet {
	t.Helper()

	child := &domain.BranchSet{
		UncertaintyType: domain.MaxMagGRRelative,
		Branches: []*domain.Branch{
			{SetID: "bs2", ID: "c1", Weight: 0.7, Value: 0.2},
			{SetID: "bs2", ID: "c2", Weight: 0.3, Value: -0.2},
		},
	}
	return &domain.BranchSet{
		UncertaintyType: domain.SourceModel,
		Branches: []*domain.Branch{
			{SetID: "bs1", ID: "b1", Weight: 0.6, Value: "model_a.xml", Child: child},
			{SetID: "bs1", ID: "b2", Weight: 0.4, Value: "model_b.xml"},
		},
	}
}
