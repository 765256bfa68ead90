// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "errors"

// ErrLostComment means a comment could not be assigned to any node — the
// programmer error spec.md §7 describes as unreachable on well-formed input
// (the give_to_child fail-safe is the path intended to prevent it).
var ErrLostComment = errors.New("ast: comment could not be attached to any node")

// standalonePolicy controls how items_and_comments_by_item treats a
// standalone comment that doesn't land "inside" any item (spec.md §4.4
// Phase A).
type standalonePolicy int

const (
	// policyGiveToChild attaches an unmatched trailing comment to the last
	// item (the fail-safe); it never creates a new item.
	policyGiveToChild standalonePolicy = iota
	// policyInsert turns a standalone comment that precedes an item (and is
	// not claimed by the standalone-for-node predicate) into its own item,
	// in source position.
	policyInsert
)

// standaloneForNode is the caller-supplied predicate from spec.md §4.4 Phase
// A's third bullet: lets a list claim a standalone comment for the item it
// precedes based on the comment's original indentation, even though
// position alone would otherwise make it a new sibling item.
type standaloneForNode func(item Node, c *Comment) bool

// isEndOfLineCommentFor reports whether comment is node's own end-of-line
// comment: it must end on or before node's last line, and walking items
// backwards from the end, the first one whose position covers comment's
// start line must be node itself (spec.md §4.4 Phase A, second bullet).
func isEndOfLineCommentFor(node Node, comment *Comment, items []Node) bool {
	var lastForLine func(line int) Node
	lastForLine = func(line int) Node {
		for i := len(items) - 1; i >= 0; i-- {
			at := items[i]
			if at.Pos().Covers(line) {
				return at
			}
			if at == node {
				return nil
			}
		}
		return nil
	}
	return comment.Pos().EndLine <= node.Pos().EndLine && lastForLine(comment.Pos().StartLine) == node
}

// itemsAndCommentsByItem is spec.md §4.4 Phase A: it walks items and
// comments in source order and returns the (possibly comment-augmented)
// item list plus a mapping of item -> comments assigned to it.
func itemsAndCommentsByItem(items []Node, comments []*Comment, policy standalonePolicy, isStandaloneFor standaloneForNode) ([]Node, map[Node][]*Comment) {
	var newItems []Node
	byItem := map[Node][]*Comment{}
	itemIndex := 0
	itemCount := len(items)

	isStandaloneCommentBefore := func(c *Comment, node Node) bool {
		return c.IsStandalone() && c.Pos().StartLine < node.Pos().StartLine
	}

	for _, c := range comments {
		assigned := false
		for itemIndex < itemCount {
			item := items[itemIndex]
			if policy == policyInsert && isStandaloneCommentBefore(c, item) {
				break
			}

			isLastOrStandaloneBeforeNext := itemCount <= itemIndex+1 ||
				(c.IsStandalone() && c.Pos().StartLine < items[itemIndex+1].Pos().StartLine)

			matches := c.Pos().EndLine < item.Pos().EndLine ||
				isEndOfLineCommentFor(item, c, items) ||
				(policy == policyInsert && isLastOrStandaloneBeforeNext && isStandaloneFor != nil && isStandaloneFor(item, c))

			if matches {
				byItem[item] = append(byItem[item], c)
				assigned = true
				break
			}
			newItems = append(newItems, item)
			itemIndex++
		}
		if !assigned {
			if policy == policyGiveToChild && itemCount > 0 && itemIndex >= itemCount {
				last := items[itemCount-1]
				byItem[last] = append(byItem[last], c)
			} else {
				newItems = append(newItems, c)
			}
		}
	}
	newItems = append(newItems, items[itemIndex:]...)
	return newItems, byItem
}

// forwardOrAdopt walks the forwarding chain starting at target: as long as a
// node's ForwardsTo is set, the comments move to the next parent using that
// node's own forwarding priority; the first node that doesn't forward
// adopts them (assigning Priority, demoting disallowed end-of-line comments,
// and appending).
func forwardOrAdopt(target Node, comments []*Comment, priority ForwardPriority, parents []Node) error {
	if fp := target.ForwardsTo(); fp != PriorityNone {
		if len(parents) == 0 {
			return ErrLostComment
		}
		return forwardOrAdopt(parents[len(parents)-1], comments, fp, parents[:len(parents)-1])
	}
	for _, c := range comments {
		c.Priority = int(priority)
		if !target.AllowsEndOfLineComments() && c.IsEndOfLine() {
			c.AffinityKind = NextNode
		}
	}
	target.SetComments(append(target.Comments(), comments...))
	return nil
}

// DefaultAddComments is the generic Node.AddComments behaviour (spec.md
// §4.4 Phase B combined with the recursive delegation every non-list,
// non-leaf node performs): a forwarding node hands everything to its
// parent; a childless node adopts directly; a node with children splits the
// comments across them (give_to_child policy) and recurses.
func DefaultAddComments(self Node, comments []*Comment, parents []Node) error {
	if len(comments) == 0 {
		return nil
	}
	if self.ForwardsTo() != PriorityNone {
		if len(parents) == 0 {
			return ErrLostComment
		}
		return forwardOrAdopt(parents[len(parents)-1], comments, self.ForwardsTo(), parents[:len(parents)-1])
	}

	children := self.Children()
	if len(children) == 0 {
		return forwardOrAdopt(self, comments, PriorityNone, parents)
	}

	newParents := append(append([]Node{}, parents...), self)
	_, byItem := itemsAndCommentsByItem(children, comments, policyGiveToChild, nil)
	for _, child := range children {
		cs := byItem[child]
		if len(cs) == 0 {
			continue
		}
		if err := child.AddComments(cs, newParents); err != nil {
			return err
		}
	}
	return nil
}
