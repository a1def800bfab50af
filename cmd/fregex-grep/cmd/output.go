package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// printer writes one line per match:
//
//	(start, end)
//	name: (start, end)
//
// With color enabled, the matched text follows the offsets.
type printer struct {
	w        io.Writer
	color    bool
	withName bool

	nameStyle   lipgloss.Style
	offsetStyle lipgloss.Style
	textStyle   lipgloss.Style
}

func newPrinter(w io.Writer, color, withName bool) *printer {
	return &printer{
		w:           w,
		color:       color,
		withName:    withName,
		nameStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		offsetStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		textStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (p *printer) print(r result) error {
	for _, m := range r.matches {
		if _, err := io.WriteString(p.w, p.format(r.name, m)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) format(name string, m found) string {
	offsets := fmt.Sprintf("(%d, %d)", m.start, m.end)
	if !p.color {
		if p.withName {
			return name + ": " + offsets
		}
		return offsets
	}

	line := p.offsetStyle.Render(offsets) + " " + p.textStyle.Render(strconv.Quote(m.text))
	if p.withName {
		line = p.nameStyle.Render(name) + ": " + line
	}
	return line
}

// resolveColor maps the --color value to a decision; "auto" colors only a
// terminal.
func resolveColor(flag string, w io.Writer) bool {
	switch flag {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		fi, err := f.Stat()
		return err == nil && fi.Mode()&os.ModeCharDevice != 0
	}
}
