package langdef

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mkarev/lexgen/machine"
)

// nonAcceptingTag is the partition marker for states without a resolved tag.
// Real tags are machine.IgnoreTag or rule declaration indices, all >= -1.
const nonAcceptingTag = -2

// Minimize returns an equivalent automaton with indistinguishable states
// merged. The accepted language and the tag resolved for every input are
// unchanged; only the state count may drop. The input automaton is not
// modified.
func Minimize(d *machine.Dfa) *machine.Dfa {
	stateCnt := len(d.States)

	symbolSet := make(map[string]bool)
	for _, tm := range d.States {
		for s := range tm {
			symbolSet[s] = true
		}
	}
	symbols := make([]string, 0, len(symbolSet))
	for s := range symbolSet {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	// Initial partition: states grouped by resolved tag. Refine by successor
	// groups until stable; a missing transition acts as an implicit dead group.
	group := make([]int, stateCnt)
	groupCnt := 0
	tagGroups := make(map[int]int)
	for id := 0; id < stateCnt; id++ {
		tag, accepting := d.Accepting[id]
		if !accepting {
			tag = nonAcceptingTag
		}
		g, has := tagGroups[tag]
		if !has {
			g = groupCnt
			groupCnt++
			tagGroups[tag] = g
		}
		group[id] = g
	}

	for {
		sigGroups := make(map[string]int)
		newGroup := make([]int, stateCnt)
		newCnt := 0
		for id := 0; id < stateCnt; id++ {
			var b strings.Builder
			b.WriteString(strconv.Itoa(group[id]))
			for _, s := range symbols {
				g := -1
				if target, has := d.States[id][s]; has {
					g = group[target]
				}
				b.WriteByte(' ')
				b.WriteString(strconv.Itoa(g))
			}
			sig := b.String()
			g, has := sigGroups[sig]
			if !has {
				g = newCnt
				newCnt++
				sigGroups[sig] = g
			}
			newGroup[id] = g
		}

		group = newGroup
		if newCnt == groupCnt {
			break
		}
		groupCnt = newCnt
	}

	states := make([]machine.TransitionMap, groupCnt)
	accepting := make(map[int]int)
	for id := 0; id < stateCnt; id++ {
		g := group[id]
		if states[g] != nil {
			continue
		}
		tm := make(machine.TransitionMap, len(d.States[id]))
		for s, target := range d.States[id] {
			tm[s] = group[target]
		}
		states[g] = tm
		if tag, acc := d.Accepting[id]; acc {
			accepting[g] = tag
		}
	}

	tagNames := make(map[int]string, len(d.TagNames))
	for tag, name := range d.TagNames {
		tagNames[tag] = name
	}

	return &machine.Dfa{
		Entry:     group[d.Entry],
		States:    states,
		Accepting: accepting,
		TagNames:  tagNames,
		RuleNames: append([]string(nil), d.RuleNames...),
	}
}
