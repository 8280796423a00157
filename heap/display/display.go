// Package display prints list contents the way the demo programs show them.
package display

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	asciitree "github.com/thediveo/go-asciitree"
)

const Header = "Linked List:"

func IntLine(v int) string {
	return strconv.Itoa(v)
}

// TextLine shows a text value with its length in bytes.
func TextLine(s string) string {
	return fmt.Sprintf("%s, %d", s, len(s))
}

// Print writes Header followed by one line per value.
func Print[T any](w io.Writer, values iter.Seq[T], line func(T) string) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for v := range values {
		if _, err := fmt.Fprintln(w, line(v)); err != nil {
			return err
		}
	}
	return nil
}

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

// Tree renders the chain with every node nested under the node that owns
// it, so the depth of a value equals its position.
func Tree[T any](values iter.Seq[T], line func(T) string) string {
	var nodes []treeNode
	i := 0
	for v := range values {
		nodes = append(nodes, treeNode{
			Label: line(v),
			Props: []string{fmt.Sprintf("index: %d", i)},
		})
		i++
	}
	// link from the tail backwards
	for j := len(nodes) - 1; j > 0; j-- {
		nodes[j-1].Children = []treeNode{nodes[j]}
	}
	root := treeNode{Label: Header}
	if len(nodes) > 0 {
		root.Children = []treeNode{nodes[0]}
	}
	return asciitree.RenderFancy(root)
}

func PrintTree[T any](w io.Writer, values iter.Seq[T], line func(T) string) error {
	out := Tree(values, line)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
