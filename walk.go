// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mmark

// BlockCursor describes a block encountered during [WalkBlocks].
type BlockCursor struct {
	Block  *Block[[]Inline]
	Parent *Block[[]Inline] // nil at the document root
}

// WalkBlocksOptions is the set of parameters to [WalkBlocks].
type WalkBlocksOptions struct {
	// If Pre is not nil, it is called for each block before its
	// children are traversed (pre-order). If Pre returns false, no
	// children are traversed, and Post is not called for that block.
	Pre func(c *BlockCursor) bool
	// If Post is not nil, it is called for each block after its
	// children are traversed (post-order). If Post returns false,
	// traversal is terminated and WalkBlocks returns immediately.
	Post func(c *BlockCursor) bool
}

// childBlocks returns b's contained blocks in traversal order,
// flattening OrderedList/UnorderedList items into a single sequence.
func childBlocks(b *Block[[]Inline]) []Block[[]Inline] {
	switch b.Kind {
	case BlockquoteKind:
		return b.Children
	case OrderedListKind, UnorderedListKind:
		var out []Block[[]Inline]
		for _, item := range b.Items {
			out = append(out, item...)
		}
		return out
	default:
		return nil
	}
}

// WalkBlocks traverses a block tree recursively, starting with each of
// roots in turn, calling Pre and Post from opts.
func WalkBlocks(roots []Block[[]Inline], opts *WalkBlocksOptions) {
	type frame struct {
		block  *Block[[]Inline]
		parent *Block[[]Inline]
		post   bool
	}

	var stack []frame
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{block: &roots[i]})
	}
	cursor := new(BlockCursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.post {
			if opts.Post != nil {
				cursor.Block, cursor.Parent = curr.block, curr.parent
				if !opts.Post(cursor) {
					break
				}
			}
			continue
		}

		if opts.Pre != nil {
			cursor.Block, cursor.Parent = curr.block, curr.parent
			if !opts.Pre(cursor) {
				continue
			}
		}
		curr.post = true
		stack = append(stack, curr)
		children := childBlocks(curr.block)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{block: &children[i], parent: curr.block})
		}
	}
}

// WalkInlines traverses an inline tree recursively, calling visit for
// each inline in pre-order. If visit returns false, the inline's
// children are skipped.
func WalkInlines(roots []Inline, visit func(in *Inline) bool) {
	var stack []*Inline
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, &roots[i])
	}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(curr) {
			continue
		}
		for i := len(curr.Children) - 1; i >= 0; i-- {
			stack = append(stack, &curr.Children[i])
		}
	}
}
