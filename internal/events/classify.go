package events

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound      = errors.New("Error: 404 Not Found — GitHub user not found.")
	ErrRateLimitExceeded = errors.New("Error: 403 Forbidden — request rejected by GitHub API. \n" +
		"You may have exceeded the unauthenticated rate limit (60 requests per hour).")
)

type Class int

const (
	// ClassEvents means the body holds the events array.
	ClassEvents Class = iota
	// ClassWarning means an unexpected status; the body is ignored.
	ClassWarning
)

func Classify(status int) (Class, error) {
	switch status {
	case http.StatusOK:
		return ClassEvents, nil
	case http.StatusNotFound:
		return 0, ErrUserNotFound
	case http.StatusForbidden:
		return 0, ErrRateLimitExceeded
	default:
		return ClassWarning, nil
	}
}
