package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("returns username", func(t *testing.T) {
		username, err := Parse("github-activity alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("collapses repeated whitespace", func(t *testing.T) {
		username, err := Parse("  github-activity \t  alice  ")
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("invalid command echoes token", func(t *testing.T) {
		tests := []struct {
			line  string
			token string
		}{
			{"gh alice", "gh"},
			{"GITHUB-ACTIVITY alice", "GITHUB-ACTIVITY"},
			{"  activity", "activity"},
			{"foo bar baz", "foo"},
		}
		for _, tt := range tests {
			_, err := Parse(tt.line)
			require.Error(t, err, tt.line)
			assert.True(t, errors.Is(err, ErrInvalidCommand), tt.line)

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.token, cerr.Token)
			assert.Equal(t, "Error: command not found: '"+tt.token+"'.\n"+Usage, err.Error())
		}
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := Parse("github-activity")
		assert.ErrorIs(t, err, ErrMissingArgument)
		assert.Equal(t, "Error: missing username.\nUsage: github-activity <username>", err.Error())
	})

	t.Run("too many arguments wins over missing", func(t *testing.T) {
		for _, line := range []string{"github-activity alice bob", "github-activity a b c d"} {
			_, err := Parse(line)
			assert.ErrorIs(t, err, ErrTooManyArguments, line)
			assert.False(t, errors.Is(err, ErrMissingArgument))
		}
	})
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindInvalidCommand, Token: "ls"}
	assert.Equal(t, "Error: command not found: 'ls'.\nUsage: github-activity <username>", err.Error())
	assert.Equal(t, "Error: too many arguments.\nUsage: github-activity <username>", ErrTooManyArguments.Error())
}
