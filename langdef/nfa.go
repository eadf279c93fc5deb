package langdef

// nfa is the combined Thompson automaton for all rules of a definition:
// one synthetic entry node with epsilon edges to every rule fragment.
// Fragment accept nodes keep their owning rule for priority resolution.
type nfa struct {
	edges    [][]nfaEdge // labeled transitions per node
	eps      [][]int     // epsilon transitions per node
	accepts  map[int]*tokenRule
	alphabet map[rune]bool
	entry    int
}

type nfaEdge struct {
	c   rune
	dst int
}

type nfaBuilder struct {
	n *nfa
}

func (b *nfaBuilder) newNode() int {
	b.n.edges = append(b.n.edges, nil)
	b.n.eps = append(b.n.eps, nil)
	return len(b.n.edges) - 1
}

func (b *nfaBuilder) addEdge(u, v int, c rune) {
	b.n.edges[u] = append(b.n.edges[u], nfaEdge{c, v})
	b.n.alphabet[c] = true
}

func (b *nfaBuilder) addEps(u, v int) {
	b.n.eps[u] = append(b.n.eps[u], v)
}

// fragment builds the Thompson fragment for one pattern node and returns its
// start and accept node ids.
func (b *nfaBuilder) fragment(n regexNode) (start, end int) {
	switch node := n.(type) {
	case literalNode:
		start = b.newNode()
		end = b.newNode()
		b.addEdge(start, end, node.char)

	case charSetNode:
		start = b.newNode()
		end = b.newNode()
		for _, c := range node.chars {
			b.addEdge(start, end, c)
		}

	case concatNode:
		start, end = b.fragment(node.items[0])
		for _, item := range node.items[1:] {
			s, e := b.fragment(item)
			b.addEps(end, s)
			end = e
		}

	case altNode:
		start = b.newNode()
		end = b.newNode()
		for _, item := range node.items {
			s, e := b.fragment(item)
			b.addEps(start, s)
			b.addEps(e, end)
		}

	case starNode:
		s, e := b.fragment(node.item)
		start = b.newNode()
		end = b.newNode()
		b.addEps(start, s)
		b.addEps(start, end)
		b.addEps(e, s)
		b.addEps(e, end)

	case plusNode:
		s, e := b.fragment(node.item)
		start = b.newNode()
		end = b.newNode()
		b.addEps(start, s)
		b.addEps(e, s)
		b.addEps(e, end)

	case optNode:
		s, e := b.fragment(node.item)
		start = b.newNode()
		end = b.newNode()
		b.addEps(start, s)
		b.addEps(start, end)
		b.addEps(e, end)

	default:
		panic("unexpanded pattern node in NFA construction")
	}
	return
}

// buildNfa expands class references in every rule pattern and merges the
// per-rule Thompson fragments under one entry node.
func buildNfa(r *parseResult) *nfa {
	b := &nfaBuilder{&nfa{
		accepts:  make(map[int]*tokenRule),
		alphabet: make(map[rune]bool),
	}}
	b.n.entry = b.newNode()

	for _, rule := range r.rules {
		start, end := b.fragment(expandClasses(rule.pattern, r.classes))
		b.addEps(b.n.entry, start)
		b.n.accepts[end] = rule
	}
	return b.n
}
