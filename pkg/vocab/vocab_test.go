package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTableSkipsLeadingBlankLines(t *testing.T) {
	src := "\n ,  ,\nEnglish,Chinese,Level,Unit\nrun,跑,Basic,3\n"

	table, err := ParseTable(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"English", "Chinese", "Level", "Unit"}, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"run", "跑", "Basic", "3"}, table.Rows[0])
}

func TestParseTableEmptyInput(t *testing.T) {
	_, err := ParseTable(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyHeader)

	_, err = ParseTable(strings.NewReader("\n , ,\n\n"))
	assert.ErrorIs(t, err, ErrEmptyHeader)
}

func TestParseTableSkipsBlankRows(t *testing.T) {
	src := "English,Chinese\nrun,跑\n\n , \nwalk,走\n"

	table, err := ParseTable(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "run", table.Rows[0][0])
	assert.Equal(t, "walk", table.Rows[1][0])
}

func TestParseTablePadsShortRows(t *testing.T) {
	src := "English,Chinese,Level,Unit\nrun,跑\n"

	table, err := ParseTable(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"run", "跑", "", ""}, table.Rows[0])
}

func TestParseTableRepairsOverflowRows(t *testing.T) {
	// The Chinese column held an unescaped comma, splitting one logical
	// cell into two. The trailing two columns are fixed, so everything
	// between them and column 0 folds back into one cell.
	src := "English,Chinese,Level,Unit\nrun,to, move,Basic,3\n"

	table, err := ParseTable(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"run", "to, move", "Basic", "3"}, table.Rows[0])
}

func TestParseTableRepairsMultiCommaOverflow(t *testing.T) {
	src := "English,Chinese,Level,Unit\nrun,to,move,quickly,Basic,3\n"

	table, err := ParseTable(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"run", "to,move,quickly", "Basic", "3"}, table.Rows[0])
}

func TestParseTableWidthInvariant(t *testing.T) {
	src := "English,Chinese,Level,Unit\n" +
		"a,one\n" +
		"b,two,three,four\n" +
		"c,x,y,z,w,Basic,3\n"

	table, err := ParseTable(strings.NewReader(src))
	require.NoError(t, err)

	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Header))
	}
}

func TestEnglishIndex(t *testing.T) {
	table := &Table{Header: []string{"Unit", "English", "Chinese"}}

	idx, err := table.EnglishIndex()
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	table = &Table{Header: []string{"Word", "Meaning"}}
	_, err = table.EnglishIndex()
	assert.ErrorIs(t, err, ErrNoEnglishColumn)
}
