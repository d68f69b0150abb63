package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	in     io.Reader = os.Stdin
	out    io.Writer = os.Stdout
	reader *bufio.Reader
)

// SetIO replaces stdin and stdout, mainly for tests. It returns a func
// restoring the previous pair.
func SetIO(r io.Reader, w io.Writer) func() {
	prevIn, prevOut, prevReader := in, out, reader
	in, out, reader = r, w, nil
	return func() { in, out, reader = prevIn, prevOut, prevReader }
}

// lineReader shares one buffered reader so piped input is not lost
// between prompts.
func lineReader() *bufio.Reader {
	if reader == nil {
		reader = bufio.NewReader(in)
	}
	return reader
}

func readLine() (string, error) {
	line, err := lineReader().ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptDefault prompts with a default shown in brackets, used when the
// answer is empty.
func PromptDefault(label, def string) (string, error) {
	answer, err := PromptString(fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// PromptPassword prompts user for a password (hidden input). When stdin
// is not a terminal the line is read as is.
func PromptPassword(label string) (string, error) {
	fmt.Fprint(out, label)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytepw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(bytepw), nil
	}

	return readLine()
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	fmt.Fprint(out, label+" (y/n) ")
	line, err := readLine()
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(line))
	return response == "y" || response == "yes", nil
}

// PromptSelect prompts user to select from options
func PromptSelect(label string, options []string) (int, error) {
	fmt.Fprintln(out, label)
	for i, opt := range options {
		fmt.Fprintf(out, "%d) %s\n", i+1, opt)
	}

	fmt.Fprint(out, "Select option: ")
	line, err := readLine()
	if err != nil {
		return -1, err
	}

	var selection int
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d", &selection); err != nil {
		return -1, fmt.Errorf("invalid selection: %w", err)
	}

	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}

	return selection - 1, nil
}

// PromptMultilineString prompts user for multi-line input, ending at
// the first empty line or after maxLines lines.
func PromptMultilineString(label string, maxLines int) (string, error) {
	fmt.Fprintf(out, "%s (Enter an empty line to finish):\n", label)

	var lines []string
	for i := 0; i < maxLines; i++ {
		line, err := readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
