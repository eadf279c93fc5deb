package machine

import (
	"strings"
	"testing"
)

func sample() *Dfa {
	return &Dfa{
		Entry: 0,
		States: []TransitionMap{
			{"a": 1, "b": 2},
			{"a": 1},
			{},
		},
		Accepting: map[int]int{1: 0, 2: IgnoreTag},
		TagNames:  map[int]string{0: "Word"},
		RuleNames: []string{"Word"},
	}
}

func TestStep(t *testing.T) {
	d := sample()
	if next := d.Step(0, 'a'); next != 1 {
		t.Fatalf("expecting state 1, got %d", next)
	}
	if next := d.Step(1, 'b'); next != NoState {
		t.Fatalf("expecting NoState, got %d", next)
	}
}

func TestTag(t *testing.T) {
	d := sample()
	tag, acc := d.Tag(1)
	if !acc || tag != 0 {
		t.Fatalf("expecting tag 0, got %d, %v", tag, acc)
	}
	tag, acc = d.Tag(2)
	if !acc || tag != IgnoreTag {
		t.Fatalf("expecting ignore tag, got %d, %v", tag, acc)
	}
	if _, acc = d.Tag(0); acc {
		t.Fatalf("entry state must not accept")
	}
}

func TestRoundTrip(t *testing.T) {
	d := sample()
	content, e := d.Marshal()
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	loaded, e := Unmarshal(content)
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	if loaded.Entry != d.Entry || len(loaded.States) != len(d.States) {
		t.Fatalf("shape mismatch after round-trip")
	}
	for id, tm := range d.States {
		for symbol, next := range tm {
			if loaded.States[id][symbol] != next {
				t.Errorf("state %d: transition on %q lost", id, symbol)
			}
		}
	}
	for id, tag := range d.Accepting {
		if loaded.Accepting[id] != tag {
			t.Errorf("state %d: accepting tag lost", id)
		}
	}
	if loaded.TagNames[0] != "Word" {
		t.Errorf("tag name lost")
	}
}

func TestUnmarshalRejectsBroken(t *testing.T) {
	samples := []struct {
		name, doc string
	}{
		{"bad entry", `{"entry": 5, "states": [{}], "accepting": {}, "tagToIdentity": {}}`},
		{"bad target", `{"entry": 0, "states": [{"a": 7}], "accepting": {}, "tagToIdentity": {}}`},
		{"bad symbol", `{"entry": 0, "states": [{"ab": 0}], "accepting": {}, "tagToIdentity": {}}`},
		{"unknown tag", `{"entry": 0, "states": [{}], "accepting": {"0": 4}, "tagToIdentity": {}}`},
		{"not json", `]`},
	}

	for _, s := range samples {
		_, e := Unmarshal([]byte(s.doc))
		if e == nil {
			t.Errorf("%s: expecting an error", s.name)
		}
	}
}

func TestMarshalDocumentKeys(t *testing.T) {
	content, e := sample().Marshal()
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	doc := string(content)
	for _, key := range []string{`"entry"`, `"states"`, `"accepting"`, `"tagToIdentity"`} {
		if !strings.Contains(doc, key) {
			t.Errorf("document lacks %s key", key)
		}
	}
}
