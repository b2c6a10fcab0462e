// Package ui renders the tabular reports of the inspect commands in
// terminal, plain text or JSON form.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/style"
	"github.com/pterm/pterm"
)

// Table is a report: a header row and data rows of the same width
type Table struct {
	Headers []string
	Rows    [][]string

	// StatusColumn names the column whose cells are outcome labels; the
	// terminal renderer colors them
	StatusColumn string
}

// AddRow appends a row
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Renderer is the common interface for all output renderers
type Renderer interface {
	RenderTable(table Table) error
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &terminalRenderer{output: output}, nil
	case FormatText:
		return &textRenderer{output: output}, nil
	case FormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// terminalRenderer draws boxed, colored tables with pterm
type terminalRenderer struct {
	output io.Writer
}

func (r *terminalRenderer) RenderTable(table Table) error {
	status := -1
	headers := make([]string, len(table.Headers))
	for i, h := range table.Headers {
		if h == table.StatusColumn {
			status = i
		}
		headers[i] = style.TitleStyle.Render(h)
	}

	data := pterm.TableData{headers}
	for _, row := range table.Rows {
		cells := make([]string, len(row))
		copy(cells, row)
		if status >= 0 && status < len(cells) {
			cells[status] = style.ForStatus(row[status]).Render(row[status])
		}
		data = append(data, cells)
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintln(r.output, rendered)
	return err
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.MutedStyle.Render(msg))
	return err
}

// textRenderer prints aligned columns without any styling
type textRenderer struct {
	output io.Writer
}

func (r *textRenderer) RenderTable(table Table) error {
	w := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, strings.Join(table.Headers, "\t")); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// jsonRenderer emits one object per row keyed by lower-cased header
type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) RenderTable(table Table) error {
	rows := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		obj := make(map[string]string, len(table.Headers))
		for i, header := range table.Headers {
			if i < len(row) {
				obj[strings.ToLower(header)] = row[i]
			}
		}
		rows = append(rows, obj)
	}
	return r.encoder.Encode(rows)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
