package client

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-rest-facade/models"
)

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// printer writes results as JSON to out and a styled status line to status.
type printer struct {
	out    io.Writer
	status io.Writer
}

// printResult writes res and returns [ErrCommandFailed] when it is not OK.
func printResult[T any](p printer, name string, res models.Result[T]) error {
	enc := json.NewEncoder(p.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if res.OK {
		fmt.Fprintln(p.status, okStyle.Render("✓ "+name))
		return nil
	}
	fmt.Fprintln(p.status, failStyle.Render("✗ "+name+": "+res.Msg))
	return fmt.Errorf("%w: %s", ErrCommandFailed, res.Msg)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Usage: client [flags] <command> [args]"))
	fmt.Fprintln(w)
	for _, c := range commandList {
		fmt.Fprintf(w, "  %-52s %s\n", c.name+" "+c.args, hintStyle.Render(c.help))
	}
}
