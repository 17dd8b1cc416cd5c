package bintree

import (
	"fmt"
	"github.com/aacfactory/errors"
	"github.com/valyala/bytebufferpool"
	"io"
	"strconv"
)

type dumpItem struct {
	n      *node
	prefix string
	branch string
	side   string
}

// String returns the tree diagram written by Fprint. It panics if Fprint fails.
func (tree *Tree) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := tree.Fprint(buf); err != nil {
		panic(err)
	}
	return buf.String()
}

// Fprint writes the shape of the tree to w, one key per line, children below their parent.
// An empty tree writes nothing.
//
//	42 => 56
//	├─ L 11 => 22
//	└─ R 111 => 222
//	   └─ R 200 => 1
func (tree *Tree) Fprint(w io.Writer) (err error) {
	if w == nil {
		err = errors.ServiceError("bintree print failed").WithCause(fmt.Errorf("writer is nil"))
		return
	}
	if tree.root == nil {
		return
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	stack := []dumpItem{{n: tree.root}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		_, _ = buf.WriteString(item.prefix)
		_, _ = buf.WriteString(item.branch)
		if item.side != "" {
			_, _ = buf.WriteString(item.side)
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(strconv.Itoa(item.n.key))
		_, _ = buf.WriteString(" => ")
		_, _ = buf.WriteString(strconv.Itoa(item.n.value))
		_ = buf.WriteByte('\n')

		indent := item.prefix
		switch item.branch {
		case "├─ ":
			indent += "│  "
		case "└─ ":
			indent += "   "
		}
		// right is pushed first so left is printed first
		if item.n.right != nil {
			stack = append(stack, dumpItem{n: item.n.right, prefix: indent, branch: "└─ ", side: "R"})
		}
		if item.n.left != nil {
			branch := "└─ "
			if item.n.right != nil {
				branch = "├─ "
			}
			stack = append(stack, dumpItem{n: item.n.left, prefix: indent, branch: branch, side: "L"})
		}
	}

	if _, writeErr := w.Write(buf.Bytes()); writeErr != nil {
		err = errors.ServiceError("bintree print failed").WithCause(writeErr)
		return
	}
	return
}
