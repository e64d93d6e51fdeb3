package utils

import (
	"fmt"
	"testing"

	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T, n int) *grid.Grid {
	t.Helper()
	rows := make([]models.UserRow, n)
	for i := range rows {
		rows[i] = models.UserRow{
			ID:           i,
			Title:        "Mr",
			First:        fmt.Sprintf("First%d", i),
			Last:         fmt.Sprintf("Last%d", i),
			Email:        fmt.Sprintf("user.%d@example.com", i),
			Phone:        "011-962-7516",
			LargePicture: fmt.Sprintf("https://randomuser.me/api/portraits/men/%d.jpg", i),
		}
	}
	g := grid.New()
	g.Publish(rows)
	return g
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `brad\.gibson@example\.com`, EscapeMarkdown("brad.gibson@example.com"))
	assert.Equal(t, `\(038\) 675\-4712`, EscapeMarkdown("(038) 675-4712"))
	assert.Equal(t, `a\\b\_c`, EscapeMarkdown(`a\b_c`))
	assert.Equal(t, `https://x.y/a\)b\\c`, EscapeURL(`https://x.y/a)b\c`))
	assert.Equal(t, "a\\`b", EscapeCode("a`b"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "Zoë Ø…", TruncateString("Zoë Østergaard", 6))
}

func TestFormatGridStates(t *testing.T) {
	g := grid.New()
	assert.Equal(t, FormatLoading(), FormatGrid(g))

	g.LoadErr = "boom"
	assert.Equal(t, FormatLoadError(), FormatGrid(g))
}

func TestFormatGrid(t *testing.T) {
	g := testGrid(t, 10)
	require.NoError(t, g.SetSearch(models.ColumnFirst, "first1"))
	require.NoError(t, g.ToggleColumn(models.ColumnLast))

	text := FormatGrid(g)

	assert.Contains(t, text, "*Random users* 1/10")
	assert.Contains(t, text, "*2\\.* Mr *First1 Last1*")
	assert.Contains(t, text, `user\.1@example\.com`)
	assert.Contains(t, text, "[Picture](https://randomuser.me/api/portraits/men/1.jpg)")
	assert.Contains(t, text, "• First Name: `first1`")
	assert.Contains(t, text, "Type to search *Last Name*")
	assert.NotContains(t, text, "First0")
}

func TestFormatGridNoMatch(t *testing.T) {
	g := testGrid(t, 3)
	require.NoError(t, g.SetSearch(models.ColumnEmail, "nobody"))

	assert.Contains(t, FormatGrid(g), "_No users match the search_")
}

func TestFormatGridPageSize(t *testing.T) {
	g := testGrid(t, PageSize+2)

	text := FormatGrid(g)

	assert.Contains(t, text, fmt.Sprintf("First%d", PageSize-1))
	assert.NotContains(t, text, fmt.Sprintf("First%d ", PageSize))
}

func TestFormatTermsPlain(t *testing.T) {
	assert.Equal(t, "No search terms", FormatTermsPlain(nil))
	assert.Equal(t, "Email: test\nPhone: 55", FormatTermsPlain([]grid.Term{
		{Column: models.ColumnEmail, Value: "test"},
		{Column: models.ColumnPhone, Value: "55"},
	}))
}

func TestFormatUserCard(t *testing.T) {
	card := FormatUserCard(models.UserRow{
		ID: 3, Title: "Ms", First: "Alice", Last: "Moreau",
		Email: "alice@example.com", Phone: "02-24",
	})

	assert.Contains(t, card, "*Ms Alice Moreau*")
	assert.Contains(t, card, `alice@example\.com`)
	assert.Contains(t, card, `02\-24`)
	assert.Contains(t, card, "*Row:* 3")
}

func TestGridKeyboard(t *testing.T) {
	g := testGrid(t, 3)
	require.NoError(t, g.SetSearch(models.ColumnEmail, "user"))

	kb := GridKeyboard(g)
	rows := kb.InlineKeyboard

	// two header rows, three users, toolbar
	require.Len(t, rows, 6)

	require.Len(t, rows[0], 3)
	require.Len(t, rows[1], 2)
	assert.Equal(t, "Title", rows[0][0].Text)
	assert.Equal(t, "col:title", rows[0][0].Unique)
	assert.Equal(t, "Email •", rows[1][0].Text)
	assert.Equal(t, "col:phone", rows[1][1].Unique)

	assert.Equal(t, "👤 First0 Last0", rows[2][0].Text)
	assert.Equal(t, "row:0", rows[2][0].Unique)
	assert.Equal(t, "row:2", rows[4][0].Unique)

	require.Len(t, rows[5], 1)
	assert.Equal(t, "filters", rows[5][0].Unique)
}

func TestGridKeyboardActiveColumn(t *testing.T) {
	g := testGrid(t, 1)
	require.NoError(t, g.ToggleColumn(models.ColumnFirst))

	rows := GridKeyboard(g).InlineKeyboard

	assert.Equal(t, "🔍 First Name", rows[0][1].Text)
	toolbar := rows[len(rows)-1]
	require.Len(t, toolbar, 2)
	assert.Equal(t, "✖ Clear First Name", toolbar[1].Text)
	assert.Equal(t, "clear:first", toolbar[1].Unique)
}

func TestGridKeyboardLoading(t *testing.T) {
	assert.Empty(t, GridKeyboard(grid.New()).InlineKeyboard)
}

func TestCallbackData(t *testing.T) {
	assert.Equal(t, "filters", CallbackData(ActionFilters))
	assert.Equal(t, "row:7", CallbackData(ActionRow, "7"))
}
