package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// State is the whole application state: the chore list in insertion order.
// Duplicates are allowed; records have no identity beyond content and position.
type State struct {
	Chores []Chore `json:"chores"`
}

// DefaultState is what a first run (or unreadable persisted data) starts with.
func DefaultState() State {
	return State{Chores: []Chore{
		{Name: "Staubsaugen", Due: "Today", Owner: Linus},
		{Name: "Bad", Due: "Tomorrow", Owner: Linus},
		{Name: "Boden", Due: "Tomorrow", Owner: Johannes},
	}}
}

// ByOwner returns the chores of one owner, keeping their relative order.
// The receiver is not modified.
func (s State) ByOwner(o Owner) []Chore {
	var out []Chore
	for _, c := range s.Chores {
		if c.Owner == o {
			out = append(out, c)
		}
	}
	return out
}

// UnmarshalJSON keeps the default chore list when the key is missing entirely.
func (s *State) UnmarshalJSON(b []byte) error {
	var raw struct {
		Chores *[]Chore `json:"chores"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Chores == nil {
		*s = DefaultState()
		return nil
	}
	s.Chores = *raw.Chores
	if s.Chores == nil {
		s.Chores = []Chore{}
	}
	return nil
}

// Decode parses persisted bytes strictly.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return s, nil
}

// Load is best-effort: no data and bad data both yield DefaultState.
func Load(data []byte) State {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultState()
	}
	s, err := Decode(data)
	if err != nil {
		return DefaultState()
	}
	return s
}

// Save serializes the full list. Output is deterministic for a given state.
func Save(s State) ([]byte, error) {
	if s.Chores == nil {
		s.Chores = []Chore{}
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
