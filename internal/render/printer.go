package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/tabula/tabula/internal/model1"
)

// Printer writes table snapshots as plain text.
type Printer struct {
	w     io.Writer
	title string
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, title string) *Printer {
	return &Printer{w: w, title: title}
}

// Print renders the snapshot, including the loading or empty state.
func (p *Printer) Print(data *model1.TableData) error {
	h := data.Header()
	if len(h) == 0 {
		return fmt.Errorf("nothing to print: empty header")
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	if p.title != "" {
		t.SetTitle(p.title)
	}

	sort := data.SortDescriptor()
	headerRow := make(table.Row, len(h))
	configs := make([]table.ColumnConfig, len(h))
	var dividers bool
	for i, c := range h {
		headerRow[i] = HeaderText(c, sort)
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       toTextAlign(c.Align),
			AlignHeader: toTextAlign(c.Align),
			WidthMin:    c.MinWidth,
			WidthMax:    c.Width,
		}
		dividers = dividers || c.Divider
	}
	t.AppendHeader(headerRow)
	t.SetColumnConfigs(configs)
	if dividers {
		style := t.Style()
		style.Options.SeparateColumns = true
	}

	data.RowEvents().Range(func(_ int, re model1.RowEvent) bool {
		row := make(table.Row, len(re.Row.Fields))
		for i, f := range re.Row.Fields {
			row[i] = f
		}
		t.AppendRow(row)
		return true
	})

	if footer := FooterText(data); footer != "" {
		t.AppendFooter(table.Row{footer})
	}

	t.Render()
	return nil
}

// HeaderText returns the column title with its sort indicator.
func HeaderText(c model1.Column, sort model1.SortDescriptor) string {
	name := c.Name
	if sort.Column == c.ID {
		if sort.Direction == model1.Descending {
			return name + " " + DescIndicator
		}
		return name + " " + AscIndicator
	}
	return name
}

// FooterText describes the table state below the rows, if there is one.
func FooterText(data *model1.TableData) string {
	switch {
	case data.HasError():
		return "Error: " + data.Error()
	case data.State() == model1.StateLoading:
		return LoadingText
	case data.State() == model1.StateLoadingMore:
		return LoadingMoreText
	case data.Empty():
		return NoResultsText
	}
	return ""
}

func toTextAlign(a model1.Align) text.Align {
	switch a {
	case model1.AlignCenter:
		return text.AlignCenter
	case model1.AlignEnd:
		return text.AlignRight
	default:
		return text.AlignLeft
	}
}
