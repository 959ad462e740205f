package table

import (
	"html"
	"strings"

	"github.com/anny12sstr/converter-analyses/internal/common"
)

// SetCell returns a copy of the table with one cell replaced. The receiver is
// untouched so callers can keep the previous grid state around for undo.
func (s *Structured) SetCell(row, col int, value string) (*Structured, error) {
	if row < 0 || row >= len(s.Rows) {
		return nil, common.Newf(common.KindBadRequest, "row %d out of range", row)
	}
	if col < 0 || col >= len(s.Rows[row]) {
		return nil, common.Newf(common.KindBadRequest, "column %d out of range", col)
	}

	out := &Structured{
		Headers: append([]string(nil), s.Headers...),
		Rows:    make([][]string, len(s.Rows)),
	}
	for i, r := range s.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	out.Rows[row][col] = value
	return out, nil
}

// HTMLFragment serializes the grid back to a bordered HTML table fragment,
// the shape the clipboard export pastes into spreadsheets and editors.
func (s *Structured) HTMLFragment() string {
	var b strings.Builder
	b.WriteString(`<table border="1">`)

	if len(s.Headers) > 0 {
		b.WriteString("<thead><tr>")
		for _, h := range s.Headers {
			b.WriteString("<th>")
			b.WriteString(html.EscapeString(h))
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead>")
	}

	b.WriteString("<tbody>")
	for _, row := range s.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	return b.String()
}
