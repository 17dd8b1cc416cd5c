// Package bintree implements an unbalanced binary search tree from int keys to int values.
//
// A Tree is not safe for concurrent use.
package bintree

type Option func(options *Options)

// WithLegacyRouting makes Insert route greater keys by inspecting the left child,
// which is how the first releases behaved. Keys inserted this way may become
// unreachable, so it only exists for compatibility.
func WithLegacyRouting() Option {
	return func(options *Options) {
		options.LegacyRouting = true
	}
}

type Options struct {
	LegacyRouting bool
}

func New(options ...Option) (tree *Tree) {
	opt := Options{
		LegacyRouting: false,
	}
	if options != nil && len(options) > 0 {
		for _, option := range options {
			option(&opt)
		}
	}
	tree = &Tree{
		options:  opt,
		root:     nil,
		borrowed: false,
	}
	return
}

type Tree struct {
	options  Options
	root     *node
	borrowed bool
}

// Insert stores value under key, overwriting the previous value of an existing key.
func (tree *Tree) Insert(key int, value int) {
	if tree.root == nil {
		tree.root = newNode(key, value)
		return
	}
	tree.root.insert(key, value, tree.options.LegacyRouting)
}

func (tree *Tree) Get(key int) (value int, has bool) {
	if tree.root == nil {
		return
	}
	value, has = tree.root.get(key)
	return
}

// GetRef returns a read-only reference to the value stored under key.
func (tree *Tree) GetRef(key int) (ref Ref, has bool) {
	if tree.root == nil {
		return
	}
	p := tree.root.getRef(key)
	if p == nil {
		return
	}
	ref, has = Ref{value: p}, true
	return
}

// GetMut returns a pointer to the value stored under key, writes through it update the tree.
// The caller must not keep more than one such pointer, and must not hold it across another
// mutating call. Use Borrow to have that checked.
func (tree *Tree) GetMut(key int) (value *int, has bool) {
	if tree.root == nil {
		return
	}
	value = tree.root.getRef(key)
	has = value != nil
	return
}

func (tree *Tree) Empty() bool {
	return tree.root == nil
}

// Len walks the tree and returns the number of reachable keys.
func (tree *Tree) Len() int {
	return tree.root.count()
}

func (tree *Tree) Height() int {
	return tree.root.height()
}
