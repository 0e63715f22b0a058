package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"forgectl/internal/deps"
)

func renderRequirements(statuses []deps.Status) string {
	colorize := shouldColorize(os.Stdout)

	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		state := "missing"
		if status.Available {
			state = "ok"
		}
		if colorize {
			if status.Available {
				state = text.FgGreen.Sprint(state)
			} else {
				state = text.FgRed.Sprint(state)
			}
		}
		rows = append(rows, []string{status.Name, status.Command, state, status.Detail})
	}

	return renderTable([]string{"Requirement", "Command", "Status", "Detail"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
