package engine

import (
	"io/fs"
	"os"
	"path/filepath"
)

// NodeKind distinguishes leaves from internal nodes of the traversal.
type NodeKind int

const (
	File NodeKind = iota + 1
	Dir
)

func (k NodeKind) String() string {
	switch k {
	case File:
		return "file"
	case Dir:
		return "dir"
	default:
		return "unknown"
	}
}

// Node is one visited path. Size is set for files only.
type Node struct {
	Path  string
	Kind  NodeKind
	Size  int64
	Depth int
}

// VisitFunc is called for every node in traversal order. Returning an
// error stops the walk and Walk returns that error.
type VisitFunc func(Node) error

// frame is a pending path on the work stack. parent links form the chain of
// ancestor directories used for cycle detection.
type frame struct {
	path   string
	depth  int
	parent *frame
	info   fs.FileInfo // set once the frame is visited as a directory
}

func (f *frame) hasAncestor(info fs.FileInfo) bool {
	for p := f.parent; p != nil; p = p.parent {
		if p.info != nil && os.SameFile(p.info, info) {
			return true
		}
	}
	return false
}

// Walk visits root and, if root is a directory, all of its descendants
// depth-first with siblings in lexicographic order. Symlinks are followed.
// Entries that are neither regular files nor directories are skipped below
// the root; a root of that type is ErrInvalidPathType.
//
// Traversal uses an explicit stack, so tree depth is not bounded by the
// goroutine stack. Children are pushed in reverse order so pops run
// left to right.
func Walk(root string, visit VisitFunc) error {
	return walk(root, nil, visit)
}

// walk is Walk with an optional before hook, called with every path popped
// from the stack ahead of its stat. It sees paths that later fail or are
// skipped.
func walk(root string, before func(path string), visit VisitFunc) error {
	stack := []*frame{{path: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if before != nil {
			before(f.path)
		}
		info, err := os.Stat(f.path)
		if err != nil {
			return classify("stat", f.path, err)
		}

		switch {
		case info.IsDir():
			if f.hasAncestor(info) {
				return &PathError{Op: "walk", Path: f.path, Kind: ErrIO, Err: errSymlinkCycle}
			}
			f.info = info
			if err := visit(Node{Path: f.path, Kind: Dir, Depth: f.depth}); err != nil {
				return err
			}

			// os.ReadDir returns entries sorted by filename.
			entries, err := os.ReadDir(f.path)
			if err != nil {
				return classify("readdir", f.path, err)
			}
			for i := len(entries) - 1; i >= 0; i-- {
				stack = append(stack, &frame{
					path:   filepath.Join(f.path, entries[i].Name()),
					depth:  f.depth + 1,
					parent: f,
				})
			}

		case info.Mode().IsRegular():
			if err := visit(Node{Path: f.path, Kind: File, Size: info.Size(), Depth: f.depth}); err != nil {
				return err
			}

		default:
			if f.parent == nil {
				return &PathError{Op: "stat", Path: f.path, Kind: ErrInvalidPathType, Err: errNotRegular}
			}
		}
	}
	return nil
}
