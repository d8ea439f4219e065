package channel

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable renders channels as table
func WriteTable(w io.Writer, channels []Channel) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Name"})
	for _, ch := range channels {
		t.AppendRow(table.Row{ch.ID, ch.Name})
	}
	t.Render()
}
