package langdef

import (
	"sort"

	"github.com/mkarev/lexgen/internal/ints"
	"github.com/mkarev/lexgen/machine"
)

// determinize converts the combined NFA to a DFA by subset construction.
// A DFA state whose node set holds several accept nodes resolves the tag of
// the rule with the smallest declaration index; ignore rules resolve to
// machine.IgnoreTag. The empty node set is never materialized: a missing
// transition is the reject signal.
func determinize(n *nfa) *machine.Dfa {
	nodeCnt := len(n.edges)
	alphabet := make([]rune, 0, len(n.alphabet))
	for c := range n.alphabet {
		alphabet = append(alphabet, c)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	closure := func(set *ints.Set) {
		stack := set.ToSlice()
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range n.eps[u] {
				if !set.Contains(v) {
					set.Add(v)
					stack = append(stack, v)
				}
			}
		}
	}

	start := ints.NewSet(nodeCnt).Add(n.entry)
	closure(start)

	stateSets := []*ints.Set{start}
	stateIds := map[string]int{start.Key(): 0}
	transitions := []machine.TransitionMap{{}}

	for id := 0; id < len(stateSets); id++ {
		set := stateSets[id]
		nodes := set.ToSlice()
		for _, c := range alphabet {
			target := ints.NewSet(nodeCnt)
			for _, u := range nodes {
				for _, edge := range n.edges[u] {
					if edge.c == c {
						target.Add(edge.dst)
					}
				}
			}
			if target.IsEmpty() {
				continue
			}
			closure(target)

			key := target.Key()
			targetId, seen := stateIds[key]
			if !seen {
				targetId = len(stateSets)
				stateIds[key] = targetId
				stateSets = append(stateSets, target)
				transitions = append(transitions, machine.TransitionMap{})
			}
			transitions[id][string(c)] = targetId
		}
	}

	d := &machine.Dfa{
		Entry:     0,
		States:    transitions,
		Accepting: make(map[int]int),
		TagNames:  make(map[int]string),
	}

	for id, set := range stateSets {
		var resolved *tokenRule
		for node, rule := range n.accepts {
			if set.Contains(node) && (resolved == nil || rule.index < resolved.index) {
				resolved = rule
			}
		}
		if resolved == nil {
			continue
		}
		if resolved.ignored {
			d.Accepting[id] = machine.IgnoreTag
		} else {
			d.Accepting[id] = resolved.index
		}
	}

	for _, rule := range rulesOf(n) {
		if !rule.ignored {
			d.TagNames[rule.index] = rule.name
			d.RuleNames = append(d.RuleNames, rule.name)
		}
	}
	return d
}

func rulesOf(n *nfa) []*tokenRule {
	rules := make([]*tokenRule, 0, len(n.accepts))
	for _, rule := range n.accepts {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].index < rules[j].index })
	return rules
}
