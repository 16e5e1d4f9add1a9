package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompter asks for values on the terminal. Secrets are read without echo
// when stdin is a tty.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // -1 when stdin is not a terminal
}

func newPrompter(stdin io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(stdin), out: out, fd: -1}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	s, err := p.read(label)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	return s, nil
}

func (p *prompter) secret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	var s string
	if p.fd >= 0 {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", label, err)
		}
		s = string(b)
	} else {
		var err error
		if s, err = p.read(label); err != nil {
			return "", err
		}
	}
	if s == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	return s, nil
}

// read returns one line without its terminator. A final line without a
// newline is accepted.
func (p *prompter) read(label string) (string, error) {
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", fmt.Errorf("read %s: %w", label, err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}
