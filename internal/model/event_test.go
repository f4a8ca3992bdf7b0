package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Defaults(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{}`), &e))

	assert.Equal(t, UnknownEvent, e.Kind())
	assert.Equal(t, UnknownRepo, e.RepoName())
	assert.Equal(t, UnknownRefType, e.Ref())
}

func TestEvent_Fields(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "CreateEvent",
		"ref_type": "branch",
		"repo": {"id": 1, "name": "alice/repo1"},
		"payload": {"ref_type": "tag"}
	}`), &e))

	assert.Equal(t, CreateEvent, e.Kind())
	assert.Equal(t, "alice/repo1", e.RepoName())
	assert.Equal(t, "branch", e.Ref())
}

func TestEvent_RefIgnoresPayload(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"DeleteEvent","payload":{"ref_type":"tag"}}`), &e))
	assert.Equal(t, UnknownRefType, e.Ref())
}

func TestEvent_LenientShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind string
		repo string
	}{
		{"not an object", `42`, UnknownEvent, UnknownRepo},
		{"null type", `{"type": null}`, UnknownEvent, UnknownRepo},
		{"numeric type", `{"type": 7, "repo": {"name": "a/b"}}`, UnknownEvent, "a/b"},
		{"repo is a string", `{"type": "PushEvent", "repo": "a/b"}`, PushEvent, UnknownRepo},
		{"repo without name", `{"type": "PushEvent", "repo": {}}`, PushEvent, UnknownRepo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Event
			require.NoError(t, json.Unmarshal([]byte(tt.in), &e))
			assert.Equal(t, tt.kind, e.Kind())
			assert.Equal(t, tt.repo, e.RepoName())
		})
	}
}

func TestIsAllowed(t *testing.T) {
	for _, k := range []string{PushEvent, PullRequestEvent, CreateEvent, DeleteEvent} {
		assert.True(t, IsAllowed(k), k)
	}
	for _, k := range []string{"IssuesEvent", "WatchEvent", UnknownEvent, "pushevent", ""} {
		assert.False(t, IsAllowed(k), k)
	}
}
