// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_edge_list.go - EdgeList(list): explicit graphs from "A-B,B-C,D".
//
// Grammar:
//   list  := item ("," item)*
//   item  := id | id "-" id
// Whitespace around ids is ignored. A lone id adds an isolated vertex.
// Items are applied left to right, so list order is adjacency order.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
)

const methodEdgeList = "EdgeList"

// EdgeList returns a Constructor that adds the vertices and edges named in list.
// Parsing happens before any mutation: a malformed item, a self-loop or an
// edge named twice (in either orientation) yields ErrBadEdgeList and leaves
// g untouched. An edge already present in g from an earlier constructor is
// reported the same way when it is reached.
func EdgeList(list string) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		items, err := parseEdgeList(list)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it[1] == "" {
				if err := g.AddVertex(it[0]); err != nil {
					return fmt.Errorf("%s: vertex %s: %v: %w", methodEdgeList, it[0], err, ErrBadEdgeList)
				}
				continue
			}
			if err := g.AddEdge(it[0], it[1]); err != nil {
				return fmt.Errorf("%s: %s-%s: %v: %w", methodEdgeList, it[0], it[1], err, ErrBadEdgeList)
			}
		}
		return nil
	}
}

// parseEdgeList splits list into (u, v) pairs; v is empty for lone vertices.
func parseEdgeList(list string) ([][2]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("%s: empty list: %w", methodEdgeList, ErrBadEdgeList)
	}
	raw := strings.Split(list, ",")
	out := make([][2]string, 0, len(raw))
	seen := make(map[[2]string]bool, len(raw))
	for _, item := range raw {
		parts := strings.Split(item, "-")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		switch {
		case len(parts) == 1 && parts[0] != "":
			out = append(out, [2]string{parts[0], ""})
		case len(parts) == 2 && parts[0] != "" && parts[1] != "":
			u, v := parts[0], parts[1]
			if u == v {
				return nil, fmt.Errorf("%s: self-loop %q: %w", methodEdgeList, item, ErrBadEdgeList)
			}
			if seen[[2]string{u, v}] || seen[[2]string{v, u}] {
				return nil, fmt.Errorf("%s: duplicate edge %q: %w", methodEdgeList, item, ErrBadEdgeList)
			}
			seen[[2]string{u, v}] = true
			out = append(out, [2]string{u, v})
		default:
			return nil, fmt.Errorf("%s: bad item %q: %w", methodEdgeList, item, ErrBadEdgeList)
		}
	}
	return out, nil
}
