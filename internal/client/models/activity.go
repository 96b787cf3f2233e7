package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity is one extracurricular activity as returned by the server.
// The client never mutates it; a fresh snapshot replaces the old one
// after every fetch.
type Activity struct {
	Name            string
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft derives the remaining capacity. The server guarantees the
// participant list never exceeds MaxParticipants.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// RosterSnapshot is the full activity roster in the order the server
// listed it. A snapshot is immutable: it is discarded wholesale and
// replaced by the next fetch, never patched in place.
type RosterSnapshot struct {
	Activities []Activity
}

// UnmarshalJSON decodes the /activities object while preserving the
// server's key order, which encoding/json's map decoding would lose.
func (s *RosterSnapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	var activities []Activity
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected activity name, got %v", tok)
		}

		var a Activity
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("decoding activity %q: %w", name, err)
		}
		a.Name = name
		activities = append(activities, a)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	s.Activities = activities
	return nil
}

// Get returns the named activity, if present.
func (s *RosterSnapshot) Get(name string) (Activity, bool) {
	for _, a := range s.Activities {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

// Names lists activity names in display order.
func (s *RosterSnapshot) Names() []string {
	names := make([]string, 0, len(s.Activities))
	for _, a := range s.Activities {
		names = append(names, a.Name)
	}
	return names
}
