package events

import (
	"encoding/json"
	"fmt"
	"githubActivity/internal/model"
	"io"
)

// Format decodes an events body and writes one line per whitelisted event,
// in array order, as each is rendered. A body that is not an array or has no
// elements gets the "no recent events" line instead. It returns the
// summaries it wrote.
func Format(w io.Writer, username string, body []byte) ([]model.Summary, error) {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}
	elems, ok := root.([]any)
	if !ok || len(elems) == 0 {
		fmt.Fprintln(w, "No recent GitHub events found for "+username)
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}

	summaries := make([]model.Summary, 0, len(raw))
	for _, elem := range raw {
		var e model.Event
		_ = json.Unmarshal(elem, &e)
		s, ok := Summary(e)
		if !ok {
			continue
		}
		fmt.Fprintln(w, s.Line)
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// Summary renders one event, reporting false for types outside
// the allowed event types.
func Summary(e model.Event) (model.Summary, bool) {
	kind := e.Kind()
	if !model.IsAllowed(kind) {
		return model.Summary{}, false
	}
	s := model.Summary{Type: kind, Repo: e.RepoName()}
	switch kind {
	case model.PushEvent:
		s.Line = "Pushed commit(s) to " + s.Repo
	case model.PullRequestEvent:
		s.Line = "Opened a pull request in " + s.Repo
	case model.CreateEvent:
		s.RefType = e.Ref()
		s.Line = "Created " + s.RefType + " in " + s.Repo
	case model.DeleteEvent:
		s.RefType = e.Ref()
		s.Line = "Deleted " + s.RefType + " in " + s.Repo
	}
	return s, true
}
