package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/galaplate/creational/console/commands"
	"github.com/galaplate/creational/logger"
)

var ErrCommandNotFound = errors.New("command not found")

type ioSetter interface {
	SetIO(in io.Reader, out io.Writer)
}

// Kernel dispatches console arguments to registered commands.
type Kernel struct {
	in       io.Reader
	out      io.Writer
	commands map[string]commands.Command
	order    []string
}

// NewKernel creates a kernel with every built-in command registered. Nil streams default
// to stdin/stdout.
func NewKernel(in io.Reader, out io.Writer) *Kernel {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	k := &Kernel{
		in:       in,
		out:      out,
		commands: make(map[string]commands.Command),
	}
	k.RegisterCommands()
	return k
}

// Register adds cmd, replacing any command with the same signature.
func (k *Kernel) Register(cmd commands.Command) {
	if s, ok := cmd.(ioSetter); ok {
		s.SetIO(k.in, k.out)
	}

	signature := cmd.GetSignature()
	if _, exists := k.commands[signature]; !exists {
		k.order = append(k.order, signature)
	}
	k.commands[signature] = cmd
}

// Commands returns registered commands in registration order.
func (k *Kernel) Commands() []commands.Command {
	result := make([]commands.Command, 0, len(k.order))
	for _, signature := range k.order {
		result = append(result, k.commands[signature])
	}
	return result
}

// Run executes args[0] with the remaining arguments. No arguments runs "list".
func (k *Kernel) Run(args []string) error {
	signature := "list"
	if len(args) > 0 {
		signature = args[0]
		args = args[1:]
	}

	cmd, exists := k.commands[signature]
	if !exists {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, signature)
	}

	logger.Debug("Running command", map[string]any{"command": signature, "args": args})
	if err := cmd.Execute(args); err != nil {
		logger.Error("Command failed", map[string]any{"command": signature, "error": err.Error()})
		return err
	}
	return nil
}
