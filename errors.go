package bintree

import "fmt"

var (
	ErrBorrowed = fmt.Errorf("value is already borrowed")
	ErrReleased = fmt.Errorf("reference was released")
)
