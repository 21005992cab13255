// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_binary_tree.go - implementation of BinaryTree(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertex i (0-based) hangs under vertex (i-1)/2: the array layout of a
//     binary heap, which is how the tree editor places new nodes.
//   • Adds vertices via cfg.idFn in ascending index order, labelled by
//     cfg.labelFn when configured; vertex 0 is the root.
//   • Emits edges parent→child in ascending child order, so every vertex
//     lists its left child before its right child.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import "github.com/katalvlaran/algoviz/core"

const (
	methodBinaryTree   = "BinaryTree"
	minBinaryTreeNodes = 1
)

// BinaryTree returns a Constructor that builds a heap-shaped binary tree.
func BinaryTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minBinaryTreeNodes {
			return tooFew(methodBinaryTree, n, minBinaryTreeNodes)
		}
		ids, err := addVertices(g, cfg, methodBinaryTree, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodBinaryTree, ids[ParentIndex(i)], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// ParentIndex returns the heap parent of child index i (i ≥ 1).
func ParentIndex(i int) int {
	return (i - 1) / 2
}
