// Package prompt asks for a line of input until it is acceptable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ErrInvalidInputExhausted is returned when the attempt budget runs out and
// Options.FailOnExhaust is set.
var ErrInvalidInputExhausted = errors.New("Too many invalid attempts!")

// ErrInvalidMaxAttempts is returned for a negative attempt budget.
var ErrInvalidMaxAttempts = errors.New("max attempts cannot be negative")

// Options controls validation of a single Ask call.
type Options struct {
	// Choices lists the accepted answers. Empty accepts anything.
	Choices []string
	// CaseSensitive disables lowercase comparison against Choices.
	CaseSensitive bool
	// MaxAttempts bounds the number of reads; 0 means unbounded.
	MaxAttempts int
	// FailOnExhaust returns ErrInvalidInputExhausted instead of the
	// no-value result when MaxAttempts is reached.
	FailOnExhaust bool
}

// Prompter reads answers from a line source and writes prompts to out.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger Logger
}

// NewPrompter creates a Prompter over the given reader and writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		logger: NopLogger{},
	}
}

// WithLogger sets the logger and returns the Prompter.
func (p *Prompter) WithLogger(l Logger) *Prompter {
	if l == nil {
		l = NopLogger{}
	}
	p.logger = l
	return p
}

// Ask writes prompt and reads lines until one is accepted.
//
// It returns the trimmed input with ok set to true. When the attempt budget
// is spent it returns ok=false and a nil error, or ErrInvalidInputExhausted
// if opts.FailOnExhaust is set. An empty string with ok=true is a valid
// answer.
func (p *Prompter) Ask(prompt string, opts Options) (value string, ok bool, err error) {
	if opts.MaxAttempts < 0 {
		return "", false, fmt.Errorf("%w: %d", ErrInvalidMaxAttempts, opts.MaxAttempts)
	}

	accepted := normalizeChoices(opts.Choices, opts.CaseSensitive)
	attempts := 0

	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", false, err
		}
		attempts++

		if len(opts.Choices) == 0 {
			return line, true, nil
		}

		candidate := line
		if !opts.CaseSensitive {
			candidate = strings.ToLower(candidate)
		}
		if _, match := accepted[candidate]; match {
			return line, true, nil
		}

		p.logger.Debugf("rejected input %q (attempt %d)", line, attempts)
		fmt.Fprintf(p.out, "Invalid input! Please enter one of: %s\n", strings.Join(opts.Choices, ", "))

		if opts.MaxAttempts > 0 && attempts >= opts.MaxAttempts {
			fmt.Fprintln(p.out, "Maximum attempts reached!")
			p.logger.Warnf("no valid input after %d attempts", attempts)
			if opts.FailOnExhaust {
				return "", false, ErrInvalidInputExhausted
			}
			return "", false, nil
		}
	}
}

// readLine writes the prompt and returns the next line without surrounding
// whitespace. A final line without a newline is still returned.
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// normalizeChoices builds a lookup set from a copy of choices; the caller's
// slice is left as is.
func normalizeChoices(choices []string, caseSensitive bool) map[string]struct{} {
	set := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		if !caseSensitive {
			c = strings.ToLower(c)
		}
		set[c] = struct{}{}
	}
	return set
}

var (
	stdinOnce     sync.Once
	stdinPrompter *Prompter
)

// Ask prompts on standard output and reads from standard input. Calls share
// one buffered reader so lines read ahead are not lost between calls.
func Ask(prompt string, opts Options) (string, bool, error) {
	stdinOnce.Do(func() {
		stdinPrompter = NewPrompter(os.Stdin, os.Stdout)
	})
	return stdinPrompter.Ask(prompt, opts)
}
