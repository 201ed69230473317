// Package render formats window listings for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/1broseidon/swmctrl/internal/platform"
	"golang.org/x/term"
)

const tabWidth = 8

// TextOptions controls plain-text rendering.
type TextOptions struct {
	// Width truncates rows to this many columns; 0 disables truncation.
	Width int
}

type listOutput struct {
	Windows []platform.Window `json:"windows"`
}

// JSON writes {"windows":[...]} followed by a newline. An empty listing
// renders as an empty array, never null.
func JSON(w io.Writer, windows []platform.Window) error {
	if windows == nil {
		windows = []platform.Window{}
	}
	return json.NewEncoder(w).Encode(listOutput{Windows: windows})
}

// Text writes a window count, a header and one tab-separated row per window.
func Text(w io.Writer, windows []platform.Window, opts TextOptions) error {
	if _, err := fmt.Fprintf(w, "Window count: %d\n", len(windows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "window ID\tPID\ttitle"); err != nil {
		return err
	}
	for _, win := range windows {
		prefix := fmt.Sprintf("%d\t%d\t", win.ID, win.PID)
		title := win.Title
		if opts.Width > 0 {
			title = truncate(title, opts.Width-columns(prefix))
		}
		if _, err := fmt.Fprintln(w, prefix+title); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth returns the column count of f when it is a terminal, else 0.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// columns is the display width of s with tabs expanded.
func columns(s string) int {
	col := 0
	for _, r := range s {
		if r == '\t' {
			col += tabWidth - col%tabWidth
			continue
		}
		col++
	}
	return col
}

func truncate(s string, limit int) string {
	if limit < 1 {
		limit = 1
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string([]rune(s)[:limit-1]) + "…"
}
