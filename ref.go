package bintree

import (
	"fmt"
	"github.com/aacfactory/errors"
)

// Ref is a read-only view of a stored value. It reads through to the tree,
// so later updates of the key are visible.
type Ref struct {
	value *int
}

func (ref Ref) Value() int {
	return *ref.value
}

// Borrow checks out an exclusive mutable reference to the value stored under key.
// Only one MutRef may be outstanding per tree; it is returned to the tree by Release.
func (tree *Tree) Borrow(key int) (ref *MutRef, has bool, err error) {
	if tree.borrowed {
		err = errors.ServiceError("bintree borrow failed").WithCause(ErrBorrowed).WithMeta("key", fmt.Sprint(key))
		return
	}
	value, found := tree.GetMut(key)
	if !found {
		return
	}
	tree.borrowed = true
	ref = &MutRef{
		tree:  tree,
		key:   key,
		value: value,
	}
	has = true
	return
}

func (tree *Tree) Borrowed() bool {
	return tree.borrowed
}

type MutRef struct {
	tree     *Tree
	key      int
	value    *int
	released bool
}

func (ref *MutRef) Key() int {
	return ref.key
}

func (ref *MutRef) Value() int {
	return *ref.value
}

func (ref *MutRef) Set(value int) (err error) {
	if ref.released {
		err = errors.ServiceError("bintree set borrowed value failed").WithCause(ErrReleased).WithMeta("key", fmt.Sprint(ref.key))
		return
	}
	*ref.value = value
	return
}

func (ref *MutRef) Release() {
	if ref.released {
		return
	}
	ref.released = true
	ref.tree.borrowed = false
}
