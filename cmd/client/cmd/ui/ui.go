// Package ui prints command results to the terminal.
package ui

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"golang.org/x/term"

	"safetrip/internal/app/client"
)

var (
	Out   io.Writer = os.Stdout
	stdin           = bufio.NewReader(os.Stdin)

	success = color.New(color.FgGreen, color.Bold)
	warning = color.New(color.FgYellow)
	heading = color.New(color.FgCyan, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
)

func Success(format string, args ...any) {
	_, _ = success.Fprintf(Out, "✓ "+format+"\n", args...)
}

func Warn(format string, args ...any) {
	_, _ = warning.Fprintf(Out, "! "+format+"\n", args...)
}

func Danger(format string, args ...any) {
	_, _ = danger.Fprintf(Out, format+"\n", args...)
}

func Heading(format string, args ...any) {
	_, _ = heading.Fprintf(Out, format+"\n", args...)
}

// StaleNotice tells the user the data came from the offline cache.
func StaleNotice(r client.Result) {
	if r.Stale() {
		Warn("server unreachable, showing data saved at %s", r.Entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
}

// JSON pretty prints a raw JSON payload.
func JSON(payload []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		_, err = fmt.Fprintln(Out, string(payload))
		return err
	}
	_, err := fmt.Fprintln(Out, buf.String())
	return err
}

// Prompt reads one line from stdin.
func Prompt(label string) string {
	fmt.Fprint(Out, label+": ")
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// Secret reads a line without echo.
func Secret(label string) (string, error) {
	fmt.Fprint(Out, label+": ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(Out)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return string(raw), nil
}
