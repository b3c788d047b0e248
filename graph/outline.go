package graph

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"racevis/machine"
)

// A node of the path tree obtained by unfolding the transition graph from
// the initial state. States shared between branches appear once per path.
type unfoldNode struct {
	id       int
	children []*unfoldNode
}

// WriteOutline unfolds the transition graph of m from the initial state into
// a path tree and writes it to w in Newick notation. Every scenario path
// through the machine appears as one root-to-leaf path of the tree.
func WriteOutline(w io.Writer, m machine.Machine) error {
	root := unfold(m)
	_, err := fmt.Fprintln(w, newick(root, true))
	return err
}

func unfold(m machine.Machine) *unfoldNode {
	root := &unfoldNode{id: 0}
	grow(m, root, map[int]bool{0: true})
	return root
}

func grow(m machine.Machine, node *unfoldNode, onPath map[int]bool) {
	states := m.States()
	for _, t := range m.Transitions() {
		if t.From != states[node.id] {
			continue
		}
		childId := slices.Index(states, t.To)
		if childId < 0 || onPath[childId] {
			// Unknown endpoint or a cycle back into the current path
			continue
		}
		child := &unfoldNode{id: childId}
		node.children = append(node.children, child)
		onPath[childId] = true
		grow(m, child, onPath)
		delete(onPath, childId)
	}
}

func newick(node *unfoldNode, root bool) string {
	out := strings.Builder{}
	if len(node.children) > 0 {
		out.WriteString("(")
		for i, child := range node.children {
			if i > 0 {
				out.WriteString(",")
			}
			out.WriteString(newick(child, false))
		}
		out.WriteString(")")
	}
	out.WriteString(fmt.Sprintf("\"S%v\"", node.id))
	if root {
		out.WriteString(";")
	}
	return out.String()
}
