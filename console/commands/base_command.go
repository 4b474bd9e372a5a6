package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/galaplate/creational/supports"
)

// Command is a console command registered with the kernel.
type Command interface {
	GetSignature() string
	GetDescription() string
	Execute(args []string) error
}

// BaseCommand provides IO and prompt helpers for all commands.
type BaseCommand struct {
	In        io.Reader
	Out       io.Writer
	reader    *bufio.Reader
	validator supports.XValidator
}

// SetIO replaces the command's input and output streams.
func (b *BaseCommand) SetIO(in io.Reader, out io.Writer) {
	b.In = in
	b.Out = out
	b.reader = nil
}

func (b *BaseCommand) out() io.Writer {
	if b.Out == nil {
		return os.Stdout
	}
	return b.Out
}

func (b *BaseCommand) readLine() string {
	if b.reader == nil {
		in := b.In
		if in == nil {
			in = os.Stdin
		}
		b.reader = bufio.NewReader(in)
	}

	line, _ := b.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// AskText prompts once and returns the trimmed answer, or defaultValue if the answer is empty.
func (b *BaseCommand) AskText(prompt string, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(b.out(), "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(b.out(), "%s: ", prompt)
	}

	input := b.readLine()
	if input == "" {
		return defaultValue
	}
	return input
}

// AskChoice lists choices and reads one answer. The answer is returned as typed; callers
// validate it.
func (b *BaseCommand) AskChoice(prompt string, choices []string) string {
	fmt.Fprintf(b.out(), "%s. Choices: %s >", prompt, strings.Join(choices, ","))
	return b.readLine()
}

// Printf writes formatted output to the command's output stream.
func (b *BaseCommand) Printf(format string, args ...any) {
	fmt.Fprintf(b.out(), format, args...)
}

// Validate runs struct validation on a command request.
func (b *BaseCommand) Validate(req any) error {
	return b.validator.Validate(req)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return strings.TrimSpace(args[i])
	}
	return ""
}
