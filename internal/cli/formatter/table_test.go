package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"a1", "short"},
			{"b2", "a much longer name"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "short")
	assert.Contains(t, lines[3], "a much longer name")

	// Second column starts at the same offset in every row.
	assert.Equal(t, strings.Index(lines[2], "short"), strings.Index(lines[3], "a much"))
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}
