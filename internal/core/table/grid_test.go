package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anny12sstr/converter-analyses/internal/common"
)

func TestSetCellReturnsUpdatedCopy(t *testing.T) {
	req := require.New(t)

	grid := &Structured{
		Headers: []string{"Test", "Result"},
		Rows:    [][]string{{"Hemoglobin", "13.5"}, {"Glucose", "5.2"}},
	}

	edited, err := grid.SetCell(1, 1, "6.0")
	req.NoError(err)
	req.Equal("6.0", edited.Rows[1][1])

	// the original grid stays untouched
	req.Equal("5.2", grid.Rows[1][1])
}

func TestSetCellOutOfBounds(t *testing.T) {
	req := require.New(t)

	grid := &Structured{Headers: []string{"A"}, Rows: [][]string{{"1"}}}

	_, err := grid.SetCell(3, 0, "x")
	req.Equal(common.KindBadRequest, common.KindOf(err))

	_, err = grid.SetCell(0, 3, "x")
	req.Equal(common.KindBadRequest, common.KindOf(err))
}

func TestHTMLFragmentEscapesCells(t *testing.T) {
	req := require.New(t)

	grid := &Structured{
		Headers: []string{"Test", "Result"},
		Rows:    [][]string{{"CRP <5", "3 & 4"}},
	}

	frag := grid.HTMLFragment()
	req.Contains(frag, "<th>Test</th>")
	req.Contains(frag, "<td>CRP &lt;5</td>")
	req.Contains(frag, "<td>3 &amp; 4</td>")

	// the export is itself a normalized table fragment
	normalized, err := NormalizeHTML(frag, nil)
	req.NoError(err)
	req.Equal(frag, normalized)
}
