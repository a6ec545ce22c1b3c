package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const prompt = "> "

// Run reads commands from in until quit, EOF or cancellation, writing answers to out.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return errors.Wrap(scanner.Err(), "read command")
		}

		cmd, err := ParseCommand(scanner.Text())
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			fmt.Fprintf(out, "error: %s (type help)\n", err)
			continue
		}

		res := s.Dispatch(ctx, cmd)
		Print(out, res)
		if res.Outcome == OutcomeQuit {
			return nil
		}
	}
}

// Print writes a result the way the terminal shows it.
func Print(out io.Writer, res Result) {
	if res.Message == "" {
		return
	}
	if res.OK() {
		fmt.Fprintln(out, res.Message)
		return
	}
	fmt.Fprintf(out, "error [%s]: %s\n", res.Outcome, res.Message)
}
