package bintree

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNode_GetUnknownKey(t *testing.T) {
	n := newNode(42, 56)
	require.Nil(t, n.getRef(36))
	_, has := n.get(21)
	require.False(t, has)
}

func TestNode_GetRef(t *testing.T) {
	n := newNode(42, 56)
	p := n.getRef(42)
	require.NotNil(t, p)
	require.Equal(t, 56, *p)
	require.Same(t, &n.value, p)
}

func TestNode_InsertSides(t *testing.T) {
	n := newNode(42, 20)
	n.insert(66, 56, false)
	n.insert(33, 10, false)
	require.NotNil(t, n.left)
	require.Equal(t, 33, n.left.key)
	require.NotNil(t, n.right)
	require.Equal(t, 66, n.right.key)

	v, has := n.get(66)
	require.True(t, has)
	require.Equal(t, 56, v)
	v, has = n.get(33)
	require.True(t, has)
	require.Equal(t, 10, v)
}

func TestNode_MutateThroughRef(t *testing.T) {
	n := newNode(42, 20)
	n.insert(13, 10, false)
	p := n.getRef(13)
	require.NotNil(t, p)
	*p = 56
	v, has := n.get(13)
	require.True(t, has)
	require.Equal(t, 56, v)
}

func TestNode_InsertLegacy(t *testing.T) {
	n := newNode(42, 20)
	n.insert(66, 1, true)
	n.insert(77, 2, true)
	// the second greater key replaced the first right leaf
	require.Equal(t, 77, n.right.key)
	require.Nil(t, n.right.right)
	require.Equal(t, 2, n.count())

	n.insert(11, 3, true)
	n.insert(90, 4, true)
	// left exists, so 90 went down the left side below 11
	require.Equal(t, 11, n.left.key)
	require.NotNil(t, n.left.right)
	require.Equal(t, 90, n.left.right.key)
}

func TestNode_CountAndHeight(t *testing.T) {
	var empty *node
	require.Equal(t, 0, empty.count())
	require.Equal(t, 0, empty.height())

	n := newNode(50, 0)
	for _, k := range []int{30, 70, 20, 40, 60, 80, 10} {
		n.insert(k, k, false)
	}
	require.Equal(t, 8, n.count())
	require.Equal(t, 4, n.height())
}
