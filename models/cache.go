// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Collection names a reference collection held in the local cache.
type Collection string

const (
	CollectionUsers      Collection = "users"
	CollectionSections   Collection = "sections"
	CollectionActivities Collection = "activities"
)

// Collections lists every reference collection in the order they are fetched.
var Collections = []Collection{CollectionUsers, CollectionSections, CollectionActivities}

// Entity is a single reference record (user, section or activity) as
// returned by the backend. Raw keeps the full JSON object so fields the
// client does not model are not lost on a round trip through the cache.
type Entity struct {
	ID   string          `json:"-"`
	Name string          `json:"-"`
	Raw  json.RawMessage `json:"-"`
}

// entityHeader is the subset of backend fields every reference record
// carries. The backend uses either "nom" or "name" and numeric or string ids.
type entityHeader struct {
	ID     json.RawMessage `json:"id"`
	Name   string          `json:"name"`
	Nom    string          `json:"nom"`
	Prenom string          `json:"prenom"`
}

// UnmarshalJSON decodes a backend record, extracting ID and Name and keeping
// the original bytes in Raw.
func (e *Entity) UnmarshalJSON(b []byte) error {
	var h entityHeader
	if err := json.Unmarshal(b, &h); err != nil {
		return fmt.Errorf("decode entity: %w", err)
	}

	e.ID = rawID(h.ID)
	switch {
	case h.Name != "":
		e.Name = h.Name
	case h.Prenom != "" && h.Nom != "":
		e.Name = h.Prenom + " " + h.Nom
	default:
		e.Name = h.Nom
	}
	e.Raw = append(e.Raw[:0], b...)

	return nil
}

// MarshalJSON writes the original backend bytes back out.
func (e Entity) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}

	return json.Marshal(map[string]string{"id": e.ID, "name": e.Name})
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return string(raw)
}

// CacheSnapshot is the locally persisted copy of every reference collection.
// A snapshot is only ever replaced as a whole.
type CacheSnapshot struct {
	Users      []Entity  `json:"users"`
	Sections   []Entity  `json:"sections"`
	Activities []Entity  `json:"activities"`
	Timestamp  time.Time `json:"timestamp"`
}

// Get returns the entities held for collection c.
func (s *CacheSnapshot) Get(c Collection) []Entity {
	switch c {
	case CollectionUsers:
		return s.Users
	case CollectionSections:
		return s.Sections
	case CollectionActivities:
		return s.Activities
	default:
		return nil
	}
}

// Set replaces the entities held for collection c.
func (s *CacheSnapshot) Set(c Collection, entities []Entity) {
	switch c {
	case CollectionUsers:
		s.Users = entities
	case CollectionSections:
		s.Sections = entities
	case CollectionActivities:
		s.Activities = entities
	}
}

// Find returns the entity with the given id in collection c.
func (s *CacheSnapshot) Find(c Collection, id string) (Entity, bool) {
	for _, e := range s.Get(c) {
		if e.ID == id {
			return e, true
		}
	}

	return Entity{}, false
}
