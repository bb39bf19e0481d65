package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/adivina/internal/engine"
	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/session"
)

var (
	// errEOF stops a play when input runs out.
	errEOF = errors.New("input closed")

	// errInterrupted stops a play when its context is canceled, e.g. on
	// Ctrl+C.
	errInterrupted = errors.New("interrupted")
)

type inputLine struct {
	text string
	err  error
}

// pending is the call the engine expects next.
type pending int

const (
	pendingNone pending = iota
	pendingAnswer
	pendingConfirm
	pendingLearn
	pendingEnd
)

// Console plays the game over a line-oriented reader and writer, e.g. a
// terminal without a TUI or a scripted test.
type Console struct {
	svc *session.Service
	in  *bufio.Reader
	out io.Writer
	log *zap.SugaredLogger

	// Lines are read on a goroutine so a prompt can be interrupted.
	readOnce sync.Once
	lines    chan inputLine

	next       pending
	wrongGuess string
	end        engine.Event
}

var _ engine.Handler = (*Console)(nil)

// New creates a Console.
func New(svc *session.Service, in io.Reader, out io.Writer, log *zap.SugaredLogger) *Console {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Console{
		svc:   svc,
		in:    bufio.NewReader(in),
		out:   out,
		log:   log,
		lines: make(chan inputLine),
	}
}

// Run plays games until the player declines another one, input ends or
// ctx is canceled. An unfinished play is recorded as abandoned.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := c.PlayOnce(ctx); err != nil {
			if stopped(err) {
				fmt.Fprintln(c.out)
				return nil
			}
			return err
		}

		again, err := c.askYesNo(ctx, "¿Quieres jugar de nuevo? (s/n)")
		if stopped(err) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(c.out, "¡Hasta la próxima!")
			return nil
		}
	}
}

// PlayOnce plays a single game.
func (c *Console) PlayOnce(ctx context.Context) error {
	p, err := c.svc.NewPlay()
	if err != nil {
		return err
	}
	c.next = pendingNone
	c.wrongGuess = ""

	fmt.Fprintln(c.out, "Piensa en un personaje y responde con s (sí) o n (no).")

	ev, err := p.Engine.Start()
	for {
		if err != nil {
			var ie *engine.InputError
			if !errors.As(err, &ie) {
				return c.fail(ctx, p, err)
			}
			c.log.Debugw("learn input rejected", "field", ie.Field)
		}
		engine.Dispatch(ev, c)

		switch c.next {
		case pendingAnswer:
			yes, rerr := c.askYesNo(ctx, "")
			if rerr != nil {
				return c.abandon(ctx, p, rerr)
			}
			ev, err = p.Engine.Answer(yes)

		case pendingConfirm:
			yes, rerr := c.askYesNo(ctx, "")
			if rerr != nil {
				return c.abandon(ctx, p, rerr)
			}
			if yes {
				fmt.Fprintln(c.out, "¡Genial! ¡Lo adiviné!")
			}
			ev, err = p.Engine.Confirm(yes)

		case pendingLearn:
			name, question, yes, rerr := c.askLearn(ctx)
			if rerr != nil {
				return c.abandon(ctx, p, rerr)
			}
			ev, err = p.Engine.Learn(name, question, yes)

		case pendingEnd:
			// A finished play is saved even if ctx was canceled meanwhile.
			if _, ferr := c.svc.Finish(context.WithoutCancel(ctx), p, c.end); ferr != nil {
				return fmt.Errorf("finish session: %w", ferr)
			}
			if c.end.Outcome == engine.OutcomeLearned {
				fmt.Fprintln(c.out, "Gracias, ¡he aprendido algo nuevo!")
			}
			return nil

		default:
			return fmt.Errorf("no event to handle: %w", engine.ErrUnexpectedInput)
		}
	}
}

func (c *Console) OnQuestion(text string) {
	fmt.Fprintln(c.out, text)
	c.next = pendingAnswer
}

func (c *Console) OnGuess(name string) {
	fmt.Fprintf(c.out, "¿Tu personaje es %s?\n", name)
	c.next = pendingConfirm
}

func (c *Console) OnLearnRequest(wrongGuess, reason string) {
	if reason != "" {
		fmt.Fprintf(c.out, "No puedo aprender eso: %s.\n", reason)
	}
	c.wrongGuess = wrongGuess
	c.next = pendingLearn
}

func (c *Console) OnSessionEnd(_ *knowledge.Node, ev engine.Event) {
	c.end = ev
	c.next = pendingEnd
}

func (c *Console) askLearn(ctx context.Context) (name, question string, yes bool, err error) {
	prompt := "¡Me rindo! ¿Quién era tu personaje?"
	if c.wrongGuess != "" {
		prompt = fmt.Sprintf("¡Vaya! No era %s. ¿Quién era tu personaje?", c.wrongGuess)
	}
	if name, err = c.askLine(ctx, prompt); err != nil {
		return
	}
	if question, err = c.askLine(ctx, fmt.Sprintf("Escribe una pregunta que distinga a %s de otros:", name)); err != nil {
		return
	}
	yes, err = c.askYesNo(ctx, fmt.Sprintf("¿Cuál sería la respuesta a esa pregunta para %s? (s/n)", name))
	return
}

// askYesNo prompts until the player types a yes or no answer.
func (c *Console) askYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := c.askLine(ctx, prompt)
		if err != nil {
			return false, err
		}
		if yes, ok := ParseAnswer(line); ok {
			return yes, nil
		}
		prompt = "Responde s (sí) o n (no):"
	}
}

func (c *Console) askLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", errInterrupted
	}
	if prompt != "" {
		fmt.Fprintln(c.out, prompt)
	}
	fmt.Fprint(c.out, "> ")

	c.readOnce.Do(func() { go c.readLines() })

	var in inputLine
	select {
	case <-ctx.Done():
		return "", errInterrupted
	case l, ok := <-c.lines:
		if !ok {
			return "", errEOF
		}
		in = l
	}

	line, err := in.text, in.err
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errEOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readLines feeds c.lines until the reader fails, then closes it.
func (c *Console) readLines() {
	for {
		text, err := c.in.ReadString('\n')
		c.lines <- inputLine{text: text, err: err}
		if err != nil {
			close(c.lines)
			return
		}
	}
}

func stopped(err error) bool {
	return errors.Is(err, errEOF) || errors.Is(err, errInterrupted)
}

func (c *Console) abandon(ctx context.Context, p *session.Play, cause error) error {
	if errors.Is(cause, errInterrupted) {
		c.log.Infow("play interrupted", "steps", p.Engine.Steps())
	}
	return errors.Join(cause, c.svc.Abandon(context.WithoutCancel(ctx), p))
}

func (c *Console) fail(ctx context.Context, p *session.Play, cause error) error {
	fmt.Fprintf(c.out, "Error: %v\n", cause)
	return errors.Join(cause, c.svc.Fail(context.WithoutCancel(ctx), p, cause))
}

// ParseAnswer interprets a yes/no reply in Spanish or English.
func ParseAnswer(s string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "si", "sí", "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
