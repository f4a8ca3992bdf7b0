package model

import (
	"encoding/json"
	"time"
)

const (
	PushEvent        = "PushEvent"
	PullRequestEvent = "PullRequestEvent"
	CreateEvent      = "CreateEvent"
	DeleteEvent      = "DeleteEvent"

	UnknownEvent   = "UnknownEvent"
	UnknownRepo    = "unknown repository"
	UnknownRefType = "unknown"
)

// allowedEvents is the set of event types that get printed. Everything else
// returned by the API is skipped. Read only through IsAllowed.
var allowedEvents = map[string]struct{}{
	PushEvent:        {},
	PullRequestEvent: {},
	CreateEvent:      {},
	DeleteEvent:      {},
}

func IsAllowed(kind string) bool {
	_, ok := allowedEvents[kind]
	return ok
}

// Event is one element of the /users/:username/events response. A nil field
// means the key was absent, null or not a string.
type Event struct {
	Type    *string
	Repo    *string
	RefType *string
}

// UnmarshalJSON never fails on shape: non-object elements and mistyped
// fields decode to an Event with the affected fields left nil.
func (e *Event) UnmarshalJSON(data []byte) error {
	*e = Event{}
	var obj map[string]json.RawMessage
	if json.Unmarshal(data, &obj) != nil {
		return nil
	}
	e.Type = stringField(obj, "type")
	e.RefType = stringField(obj, "ref_type")
	if repo := objectField(obj, "repo"); repo != nil {
		e.Repo = stringField(repo, "name")
	}
	return nil
}

func stringField(obj map[string]json.RawMessage, key string) *string {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	var s *string
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return s
}

func objectField(obj map[string]json.RawMessage, key string) map[string]json.RawMessage {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	var inner map[string]json.RawMessage
	if json.Unmarshal(raw, &inner) != nil {
		return nil
	}
	return inner
}

func (e Event) Kind() string {
	if e.Type == nil {
		return UnknownEvent
	}
	return *e.Type
}

func (e Event) RepoName() string {
	if e.Repo == nil {
		return UnknownRepo
	}
	return *e.Repo
}

// Ref returns the event's top-level ref_type. payload.ref_type is not read.
func (e Event) Ref() string {
	if e.RefType == nil {
		return UnknownRefType
	}
	return *e.RefType
}

// Summary is a retained event together with the line printed for it.
type Summary struct {
	Type    string `json:"type"`
	Repo    string `json:"repo"`
	RefType string `json:"ref_type,omitempty"`
	Line    string `json:"line"`
}

// HistoryEntry is a Summary recorded by the history store.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FetchedAt time.Time `json:"fetched_at"`
	Summary
}
