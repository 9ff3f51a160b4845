package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	ID       int64
	ParentID *int64
	Children []*node
}

func ptr(v int64) *int64 { return &v }

func build(nodes []*node) []*node {
	return BuildTree(nodes,
		func(n *node) int64 { return n.ID },
		func(n *node) *int64 { return n.ParentID },
		func(p, c *node) { p.Children = append(p.Children, c) },
	)
}

func TestBuildTree(t *testing.T) {
	nodes := []*node{
		{ID: 1},
		{ID: 2, ParentID: ptr(1)},
		{ID: 3, ParentID: ptr(2)},
		{ID: 4, ParentID: ptr(1)},
		{ID: 5, ParentID: ptr(99)},
		{ID: 6},
	}

	roots := build(nodes)

	require.Len(t, roots, 3)
	assert.Equal(t, int64(1), roots[0].ID)
	assert.Equal(t, int64(5), roots[1].ID, "orphan becomes a root")
	assert.Equal(t, int64(6), roots[2].ID)

	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, int64(2), roots[0].Children[0].ID)
	assert.Equal(t, int64(4), roots[0].Children[1].ID)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, int64(3), roots[0].Children[0].Children[0].ID)
}

func TestBuildTree_Empty(t *testing.T) {
	assert.Empty(t, build(nil))
}

func TestCreatesCycle(t *testing.T) {
	// 1 <- 2 <- 3, 4 standalone
	parents := map[int64]*int64{1: nil, 2: ptr(1), 3: ptr(2), 4: nil}

	assert.True(t, CreatesCycle(parents, 1, 1), "self parent")
	assert.True(t, CreatesCycle(parents, 1, 3), "under own grandchild")
	assert.True(t, CreatesCycle(parents, 2, 3), "under own child")
	assert.False(t, CreatesCycle(parents, 3, 1))
	assert.False(t, CreatesCycle(parents, 1, 4))
	assert.False(t, CreatesCycle(parents, 4, 3))
}

func TestCreatesCycle_BrokenData(t *testing.T) {
	parents := map[int64]*int64{1: ptr(2), 2: ptr(1), 3: nil}
	assert.True(t, CreatesCycle(parents, 3, 1))
}
