package bintree

type node struct {
	key   int
	value int
	left  *node
	right *node
}

func newNode(key int, value int) *node {
	return &node{
		key:   key,
		value: value,
	}
}

func (n *node) get(key int) (value int, has bool) {
	p := n.getRef(key)
	if p == nil {
		return
	}
	value, has = *p, true
	return
}

// getRef returns the address of the value stored under key, nil when absent.
func (n *node) getRef(key int) *int {
	for n != nil {
		switch {
		case key == n.key:
			return &n.value
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

func (n *node) insert(key int, value int, legacy bool) {
	for {
		if key == n.key {
			n.value = value
			return
		}
		if key < n.key {
			if n.left == nil {
				n.left = newNode(key, value)
				return
			}
			n = n.left
			continue
		}
		if legacy {
			// greater keys look at the left slot: an empty left replaces the right
			// subtree with the new leaf, otherwise the descent continues left.
			if n.left == nil {
				n.right = newNode(key, value)
				return
			}
			n = n.left
			continue
		}
		if n.right == nil {
			n.right = newNode(key, value)
			return
		}
		n = n.right
	}
}

func (n *node) count() (size int) {
	if n == nil {
		return
	}
	stack := []*node{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		if x.left != nil {
			stack = append(stack, x.left)
		}
		if x.right != nil {
			stack = append(stack, x.right)
		}
	}
	return
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	h := 0
	level := []*node{n}
	for len(level) > 0 {
		h++
		next := make([]*node, 0, len(level)*2)
		for _, x := range level {
			if x.left != nil {
				next = append(next, x.left)
			}
			if x.right != nil {
				next = append(next, x.right)
			}
		}
		level = next
	}
	return h
}
