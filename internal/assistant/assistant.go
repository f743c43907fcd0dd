// Package assistant is the line-oriented command interpreter in front of the contact service.
package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/andy/contactbook/internal/config"
	"github.com/andy/contactbook/internal/domain"
	"github.com/andy/contactbook/internal/service"
	"go.uber.org/zap"
)

// Reply is the result of handling one input line
type Reply struct {
	Text string // Empty for blank input
	Quit bool   // Set by close/exit
}

// Assistant dispatches commands to the contact service and renders their results
type Assistant struct {
	contacts service.ContactService
	logger   *zap.Logger
	cfg      config.AssistantConfig
	commands []command
	index    map[string]command
}

// New creates an assistant; a nil logger discards logs
func New(contacts service.ContactService, cfg config.AssistantConfig, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Assistant{
		contacts: contacts,
		logger:   logger,
		cfg:      cfg,
		commands: commandTable(),
		index:    make(map[string]command),
	}
	for _, c := range a.commands {
		a.index[c.name] = c
	}
	return a
}

// Greeting is printed once when a session starts
func (a *Assistant) Greeting() string {
	return a.cfg.Greeting
}

// Prompt is shown before each line on an interactive terminal
func (a *Assistant) Prompt() string {
	return a.cfg.Prompt
}

// Handle runs a single input line. Errors are turned into reply text; none ends the session.
func (a *Assistant) Handle(line string) Reply {
	name, args := Parse(line)
	if name == "" {
		return Reply{}
	}

	cmd, ok := a.index[name]
	if !ok {
		a.logger.Debug("unknown command", zap.String("command", name))
		return Reply{Text: "Invalid command."}
	}
	if cmd.run == nil {
		return Reply{Text: a.cfg.Farewell, Quit: true}
	}

	a.logger.Debug("dispatching command", zap.String("command", name), zap.Int("args", len(args)))

	if len(args) < cmd.minArgs {
		return Reply{Text: a.errorText(name, domain.NewArgument("not enough arguments", nil))}
	}
	text, err := cmd.run(a, args)
	if err != nil {
		return Reply{Text: a.errorText(name, err)}
	}
	return Reply{Text: text}
}

func (a *Assistant) errorText(name string, err error) string {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		a.logger.Debug("validation failed", zap.String("command", name), zap.Error(err))
		return "Error: " + err.Error()
	case domain.KindArgument:
		return "Error: Not enough arguments."
	case domain.KindNotFound:
		return "Contact not found."
	default:
		a.logger.Error("command failed", zap.String("command", name), zap.Error(err))
		return "Error: " + err.Error()
	}
}

// Run reads commands line by line until close/exit, end of input or cancellation.
// The prompt is written before each line only when showPrompt is set.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer, showPrompt bool) error {
	if a.cfg.Greeting != "" {
		fmt.Fprintln(out, a.cfg.Greeting)
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if showPrompt {
			fmt.Fprint(out, a.cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		reply := a.Handle(scanner.Text())
		if reply.Text != "" {
			fmt.Fprintln(out, reply.Text)
		}
		if reply.Quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
