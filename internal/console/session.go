// Package console runs the interactive notification session: menu, choice,
// message prompt and a single send.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/notifyflow/notifyflow/internal/logging"
	"github.com/notifyflow/notifyflow/internal/metrics"
	"github.com/notifyflow/notifyflow/internal/notify"
)

var (
	// ErrMalformedChoice means the menu answer was not an integer.
	ErrMalformedChoice = errors.New("menu choice is not a number")
	// ErrNoMessage means input ended before a message line was read.
	ErrNoMessage = errors.New("no notification message provided")
)

const (
	menuHeader    = "Choose notification method:"
	invalidChoice = "Invalid choice. Exiting..."
	messagePrompt = "Enter notification message:"
)

// Session reads answers from In and writes prompts and notification output
// to Out.
type Session struct {
	In  io.Reader
	Out io.Writer

	r *bufio.Reader
}

// NewSession returns a Session bound to in and out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{In: in, Out: out}
}

// Run performs one session. An unknown menu number prints the invalid choice
// line and returns nil without sending anything.
func (s *Session) Run(ctx context.Context) error {
	s.r = bufio.NewReader(s.In)

	if err := s.printMenu(); err != nil {
		return err
	}
	choice, err := s.readChoice()
	if err != nil {
		return err
	}

	factory, err := notify.FactoryFor(choice, s.Out)
	if errors.Is(err, notify.ErrInvalidChoice) {
		metrics.IncInvalidChoice()
		logging.Get().Info().Int("choice", choice).Msg("invalid menu choice")
		_, err = fmt.Fprintln(s.Out, invalidChoice)
		return err
	}
	if err != nil {
		return err
	}
	logging.Get().Debug().Str("channel", notify.Channel(choice).String()).Msg("channel selected")

	m := notify.NewManager(factory)
	m.AddObserver(&notify.EventLogger{Out: s.Out})
	m.AddObserver(&notify.AuditLogger{Out: s.Out})

	if _, err := fmt.Fprintln(s.Out, messagePrompt); err != nil {
		return err
	}
	message, err := s.readMessage()
	if err != nil {
		return err
	}
	return m.SendNotification(ctx, message)
}

func (s *Session) printMenu() error {
	if _, err := fmt.Fprintln(s.Out, menuHeader); err != nil {
		return err
	}
	for _, c := range notify.Channels() {
		if _, err := fmt.Fprintf(s.Out, "%d. %s\n", int(c), c); err != nil {
			return err
		}
	}
	return nil
}

// readChoice reads the next whitespace-delimited token and parses it as an
// int. The delimiter after the token is left unread.
func (s *Session) readChoice() (int, error) {
	tok, err := s.readToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedChoice, tok)
	}
	return n, nil
}

func (s *Session) readToken() (string, error) {
	var b strings.Builder
	for {
		r, _, err := s.r.ReadRune()
		if err == io.EOF {
			if b.Len() == 0 {
				return "", fmt.Errorf("%w: input ended", ErrMalformedChoice)
			}
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			_ = s.r.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// readMessage discards whatever followed the choice on its line and returns
// the next full line without its line terminator.
func (s *Session) readMessage() (string, error) {
	if _, err := s.r.ReadString('\n'); err != nil && err != io.EOF {
		return "", err
	}
	line, err := s.r.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ErrNoMessage
		}
	} else if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
