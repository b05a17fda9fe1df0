package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Resolver turns a prompt and a default into a configuration value.
type Resolver interface {
	Resolve(prompt, def string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(prompt, def string) (string, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(prompt, def string) (string, error) {
	return f(prompt, def)
}

// Defaults resolves every value to its default without asking.
type Defaults struct{}

// Resolve returns def.
func (Defaults) Resolve(_, def string) (string, error) {
	return def, nil
}

// Prompter asks for each value on out and reads one line from in. An empty
// answer, or end of input, selects the default.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Resolve writes prompt and returns the answer, or def when it is empty.
func (p *Prompter) Resolve(prompt, def string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.TrimRight(line, "\r\n")
	if answer == "" {
		return def, nil
	}

	return answer, nil
}
