package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dbsmedya/goeclat/internal/eclat"
)

// latticeNode is one node of the prefix tree built from the result
// set: the item at this depth, the support of the itemset formed by
// the path down to it, and its extensions.
type latticeNode struct {
	item     string
	support  int
	children map[string]*latticeNode
}

// RenderLattice draws the frequent itemsets as an ASCII prefix tree.
// Every root-to-node path is one frequent itemset; children extend
// their parent with a lexically larger item, so each itemset appears
// exactly once.
//
//	bread (5)
//	+-- butter (3)
//	|   +-- milk (2)
//	+-- milk (4)
func RenderLattice(w io.Writer, itemsets []eclat.FrequentItemset[string]) error {
	root := &latticeNode{children: make(map[string]*latticeNode)}

	for _, fi := range itemsets {
		node := root
		for _, item := range fi.Items {
			child, ok := node.children[item]
			if !ok {
				child = &latticeNode{item: item, children: make(map[string]*latticeNode)}
				node.children[item] = child
			}
			node = child
		}
		node.support = fi.Support
	}

	for _, child := range sortedChildren(root) {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", child.item, child.support); err != nil {
			return err
		}
		if err := renderSubtree(w, child, ""); err != nil {
			return err
		}
	}
	return nil
}

func renderSubtree(w io.Writer, node *latticeNode, indent string) error {
	children := sortedChildren(node)
	for i, child := range children {
		connector := "+-- "
		childIndent := indent + "|   "
		if i == len(children)-1 {
			childIndent = indent + "    "
		}
		line := indent + connector + child.item
		if _, err := fmt.Fprintf(w, "%s (%d)\n", line, child.support); err != nil {
			return err
		}
		if err := renderSubtree(w, child, childIndent); err != nil {
			return err
		}
	}
	return nil
}

func sortedChildren(node *latticeNode) []*latticeNode {
	out := make([]*latticeNode, 0, len(node.children))
	for _, child := range node.children {
		out = append(out, child)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].item, out[j].item) < 0
	})
	return out
}
