package client

import (
	"slices"

	"github.com/google/uuid"
	"github.com/limbo/tendril/pkg/entity"
)

// CommentTree is the reply structure of one post, built once per fetch.
// Children and Roots are ordered by creation time.
type CommentTree struct {
	Roots    []uuid.UUID
	Children map[uuid.UUID][]uuid.UUID
	byID     map[uuid.UUID]*entity.Comment
}

// BuildCommentTree indexes comments by parent. A reply whose parent is not in the
// list is placed among the roots.
func BuildCommentTree(comments []*entity.Comment) *CommentTree {
	sorted := slices.Clone(comments)
	slices.SortStableFunc(sorted, func(a, b *entity.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	tree := &CommentTree{
		Roots:    make([]uuid.UUID, 0),
		Children: make(map[uuid.UUID][]uuid.UUID),
		byID:     make(map[uuid.UUID]*entity.Comment, len(sorted)),
	}
	for _, c := range sorted {
		tree.byID[c.ID] = c
	}
	for _, c := range sorted {
		if c.ParentID != nil {
			if _, ok := tree.byID[*c.ParentID]; ok && *c.ParentID != c.ID {
				tree.Children[*c.ParentID] = append(tree.Children[*c.ParentID], c.ID)
				continue
			}
		}
		tree.Roots = append(tree.Roots, c.ID)
	}
	return tree
}

func (t *CommentTree) Comment(id uuid.UUID) (*entity.Comment, bool) {
	c, ok := t.byID[id]
	return c, ok
}

func (t *CommentTree) TopLevel() []*entity.Comment {
	return t.resolve(t.Roots)
}

func (t *CommentTree) Replies(id uuid.UUID) []*entity.Comment {
	return t.resolve(t.Children[id])
}

func (t *CommentTree) Len() int {
	return len(t.byID)
}

func (t *CommentTree) resolve(ids []uuid.UUID) []*entity.Comment {
	out := make([]*entity.Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.byID[id])
	}
	return out
}
