package command

import (
	"fmt"
	"strings"
)

const (
	Name  = "github-activity"
	Usage = "Usage: " + Name + " <username>"
)

type Kind int

const (
	KindInvalidCommand Kind = iota + 1
	KindTooManyArguments
	KindMissingArgument
)

// Error is a validation failure for one input line.
type Error struct {
	Kind  Kind
	Token string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidCommand:
		return fmt.Sprintf("Error: command not found: '%s'.\n%s", e.Token, Usage)
	case KindTooManyArguments:
		return "Error: too many arguments.\n" + Usage
	default:
		return "Error: missing username.\n" + Usage
	}
}

// Is matches on Kind only, so errors.Is(err, ErrInvalidCommand) holds for any
// offending token.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidCommand   = &Error{Kind: KindInvalidCommand}
	ErrTooManyArguments = &Error{Kind: KindTooManyArguments}
	ErrMissingArgument  = &Error{Kind: KindMissingArgument}
)

// Parse validates one input line and returns the username it names.
func Parse(line string) (string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", ErrMissingArgument
	}
	if tokens[0] != Name {
		return "", &Error{Kind: KindInvalidCommand, Token: tokens[0]}
	}
	if len(tokens) > 2 {
		return "", ErrTooManyArguments
	}
	if len(tokens) != 2 {
		return "", ErrMissingArgument
	}
	return strings.TrimSpace(tokens[1]), nil
}
