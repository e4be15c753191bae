// SPDX-License-Identifier: MIT

package traversal

// ReconstructPath walks parent links from end back to the node without a
// parent, then reverses the walk so the result runs start → end.
//
// It returns nil when end has no entry in parents, when a link points at a
// node missing from parents, or when the links form a cycle (the walk is
// bounded by len(parents)). An engine only produces well-formed maps; these
// guards matter for hand-built ones.
//
// Complexity: O(L) for a path of L nodes.
func ReconstructPath[K comparable](parents ParentMap[K], end K) []K {
	link, ok := parents[end]
	if !ok {
		return nil
	}

	path := []K{end}
	for link.HasParent {
		if len(path) >= len(parents) {
			return nil // cycle
		}
		cur := link.Parent
		if link, ok = parents[cur]; !ok {
			return nil // dangling link
		}
		path = append(path, cur)
	}

	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
