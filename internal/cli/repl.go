package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"githubActivity/internal/command"
	"githubActivity/internal/events"
	"githubActivity/internal/logger"
	"io"
	"strings"

	"go.uber.org/zap"
)

const Prompt = "> "

// REPL reads one command per line and runs a lookup for it. Errors are
// printed and the loop carries on; only end of input or ctx ends it.
type REPL struct {
	in      io.Reader
	out     io.Writer
	service events.Service
}

func NewREPL(in io.Reader, out io.Writer, s events.Service) *REPL {
	return &REPL{in: in, out: out, service: s}
}

func (r *REPL) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(r.out, Prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			r.Handle(ctx, line)
		}
	}
}

// Handle runs a single input line.
func (r *REPL) Handle(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	username, err := command.Parse(line)
	if err == nil {
		err = r.service.Lookup(ctx, r.out, username)
	}
	if err != nil {
		r.report(err)
	}
}

func (r *REPL) report(err error) {
	var cmdErr *command.Error
	switch {
	case errors.As(err, &cmdErr):
		logger.Lg.Info("invalid_command", zap.Int("kind", int(cmdErr.Kind)), zap.String("token", cmdErr.Token))
		fmt.Fprintln(r.out, err.Error())
	case errors.Is(err, events.ErrUserNotFound), errors.Is(err, events.ErrRateLimitExceeded):
		logger.Lg.Info("lookup_rejected", zap.Error(err))
		fmt.Fprintln(r.out, err.Error())
	default:
		logger.Lg.Warn("lookup_failed", zap.Error(err))
		fmt.Fprintln(r.out, "Error: "+err.Error())
	}
}
