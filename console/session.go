// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/commgraph/query"
)

// Prompt is printed before every read.
const Prompt = "Email address of the individual (or EXIT to quit): "

// ExitCommand ends the loop, compared case-insensitively.
const ExitCommand = "EXIT"

// Looker resolves an address to its profile.
type Looker interface {
	Lookup(id string) (query.Profile, bool)
}

// Session is an interactive lookup loop over a Looker.
type Session struct {
	looker Looker
}

// NewSession returns a Session answering from l.
func NewSession(l Looker) *Session {
	return &Session{looker: l}
}

// Run prompts, reads one line at a time from in and answers on out until
// EXIT, end of input or ctx cancellation. Lookups use the trimmed line
// exactly as typed. Only read and write failures are returned.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	br := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := io.WriteString(out, Prompt); err != nil {
			return fmt.Errorf("console: write prompt: %w", err)
		}
		line, err := br.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("console: read: %w", err)
			}
			// A final line without a newline is still answered.
			if line == "" {
				return nil
			}
		}

		addr := strings.TrimSpace(line)
		if strings.EqualFold(addr, ExitCommand) {
			return nil
		}
		if err := s.answer(out, addr); err != nil {
			return fmt.Errorf("console: write answer: %w", err)
		}
	}
}

func (s *Session) answer(out io.Writer, addr string) error {
	p, ok := s.looker.Lookup(addr)
	if !ok {
		_, err := fmt.Fprintf(out, "Email address (%s) not found in the dataset.\n", addr)
		return err
	}
	_, err := fmt.Fprintf(out,
		"* %s has sent messages to %d others\n"+
			"* %s has received messages from %d others\n"+
			"* %s is in a team with %d individuals\n",
		p.Address, p.Sent,
		p.Address, p.Received,
		p.Address, p.TeamSize,
	)

	return err
}
