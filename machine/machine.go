// Package machine defines the serializable automaton produced by langdef
// and consumed by the lexer runtime. It is the sole artifact crossing the
// generation boundary and is stable under JSON round-trips.
package machine

import (
	"encoding/json"
	"fmt"
)

const (
	// IgnoreTag marks an accepting state whose match is consumed but never
	// emitted as a token.
	IgnoreTag = -1

	// NoState is returned by Step when a state has no transition on a symbol.
	NoState = -1
)

// TransitionMap maps a single-character symbol to the next state id.
// Absence of a key means the state rejects that symbol.
type TransitionMap map[string]int

// Dfa is a deterministic finite automaton with token tags on accepting states.
type Dfa struct {
	// Entry is the id of the start state.
	Entry int `json:"entry"`

	// States holds one transition map per state, indexed by state id.
	States []TransitionMap `json:"states"`

	// Accepting maps a state id to the token tag it resolves, IgnoreTag for
	// ignore-rule matches. States absent from the map are not accepting.
	Accepting map[int]int `json:"accepting"`

	// TagNames maps every non-ignore token tag to its declared rule name.
	TagNames map[int]string `json:"tagToIdentity"`

	// RuleNames lists the emitting rule names in declaration order.
	RuleNames []string `json:"ruleNames,omitempty"`
}

// Step returns the state reached from state on symbol c, or NoState.
func (d *Dfa) Step(state int, c rune) int {
	next, has := d.States[state][string(c)]
	if !has {
		return NoState
	}
	return next
}

// Tag returns the token tag resolved by state, if it is accepting.
func (d *Dfa) Tag(state int) (tag int, accepting bool) {
	tag, accepting = d.Accepting[state]
	return
}

// Marshal encodes the automaton as an indented JSON document.
func (d *Dfa) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal decodes an automaton from its JSON document and validates
// internal references.
func Unmarshal(content []byte) (*Dfa, error) {
	d := &Dfa{}
	e := json.Unmarshal(content, d)
	if e != nil {
		return nil, e
	}

	e = d.validate()
	if e != nil {
		return nil, e
	}
	return d, nil
}

func (d *Dfa) validate() error {
	stateCnt := len(d.States)
	if d.Entry < 0 || d.Entry >= stateCnt {
		return fmt.Errorf("machine: entry state %d out of range", d.Entry)
	}
	for id, tm := range d.States {
		for symbol, next := range tm {
			if len([]rune(symbol)) != 1 {
				return fmt.Errorf("machine: state %d: symbol %q is not a single character", id, symbol)
			}
			if next < 0 || next >= stateCnt {
				return fmt.Errorf("machine: state %d: transition on %q to unknown state %d", id, symbol, next)
			}
		}
	}
	for id, tag := range d.Accepting {
		if id < 0 || id >= stateCnt {
			return fmt.Errorf("machine: accepting entry for unknown state %d", id)
		}
		if tag != IgnoreTag {
			if _, has := d.TagNames[tag]; !has {
				return fmt.Errorf("machine: state %d resolves unknown tag %d", id, tag)
			}
		}
	}
	return nil
}
