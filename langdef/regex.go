package langdef

import (
	"sort"
	"strings"
)

// regexNode is one node of a parsed token pattern. Trees are built once per
// rule by the parser and consumed by the NFA builder after class expansion.
type regexNode interface {
	// pattern renders the node in definition-language syntax, for error
	// messages and tests.
	pattern() string
}

type literalNode struct {
	char rune
}

type classRefNode struct {
	name string
}

// charSetNode replaces classRefNode after class expansion: the resolved set
// members, ascending. Feeds directly into NFA construction, one labeled edge
// per member.
type charSetNode struct {
	chars []rune
}

type concatNode struct {
	items []regexNode
}

type altNode struct {
	items []regexNode
}

type starNode struct {
	item regexNode
}

type plusNode struct {
	item regexNode
}

type optNode struct {
	item regexNode
}

func (n literalNode) pattern() string {
	return string(n.char)
}

func (n classRefNode) pattern() string {
	return "[" + n.name + "]"
}

func (n charSetNode) pattern() string {
	return "[" + string(n.chars) + "]"
}

func (n concatNode) pattern() string {
	var b strings.Builder
	for _, item := range n.items {
		b.WriteString(item.pattern())
	}
	return b.String()
}

func (n altNode) pattern() string {
	parts := make([]string, len(n.items))
	for i, item := range n.items {
		parts[i] = item.pattern()
	}
	return "(" + strings.Join(parts, "|") + ")"
}

func (n starNode) pattern() string {
	return n.item.pattern() + "*"
}

func (n plusNode) pattern() string {
	return n.item.pattern() + "+"
}

func (n optNode) pattern() string {
	return n.item.pattern() + "?"
}

// expandClasses rewrites every class reference in a pattern to the referenced
// class's resolved member set. Classes are resolved by the parser, so lookup
// cannot fail here.
func expandClasses(n regexNode, classes map[string][]rune) regexNode {
	switch node := n.(type) {
	case classRefNode:
		return charSetNode{classes[node.name]}
	case concatNode:
		items := make([]regexNode, len(node.items))
		for i, item := range node.items {
			items[i] = expandClasses(item, classes)
		}
		return concatNode{items}
	case altNode:
		items := make([]regexNode, len(node.items))
		for i, item := range node.items {
			items[i] = expandClasses(item, classes)
		}
		return altNode{items}
	case starNode:
		return starNode{expandClasses(node.item, classes)}
	case plusNode:
		return plusNode{expandClasses(node.item, classes)}
	case optNode:
		return optNode{expandClasses(node.item, classes)}
	default:
		return n
	}
}

func sortedRunes(set map[rune]bool) []rune {
	result := make([]rune, 0, len(set))
	for r := range set {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
