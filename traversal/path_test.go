package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathfinder/traversal"
)

func TestReconstructPath(t *testing.T) {
	t.Parallel()

	link := func(p string) traversal.Link[string] {
		return traversal.Link[string]{Parent: p, HasParent: true}
	}

	tests := []struct {
		name    string
		parents traversal.ParentMap[string]
		end     string
		want    []string
	}{
		{"chain", traversal.ParentMap[string]{"S": {}, "A": link("S"), "B": link("A")}, "B", []string{"S", "A", "B"}},
		{"start only", traversal.ParentMap[string]{"S": {}}, "S", []string{"S"}},
		{"branch", traversal.ParentMap[string]{"S": {}, "A": link("S"), "B": link("S"), "C": link("B")}, "C", []string{"S", "B", "C"}},
		{"missing end", traversal.ParentMap[string]{"S": {}}, "X", nil},
		{"empty map", traversal.ParentMap[string]{}, "X", nil},
		{"dangling", traversal.ParentMap[string]{"A": link("Z")}, "A", nil},
		{"cycle", traversal.ParentMap[string]{"A": link("B"), "B": link("A")}, "A", nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, traversal.ReconstructPath(tc.parents, tc.end))
		})
	}
}
