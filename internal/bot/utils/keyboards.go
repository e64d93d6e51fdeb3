package utils

import (
	"fmt"
	"strconv"

	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/models"

	tele "gopkg.in/telebot.v3"
)

// Callback actions
const (
	ActionColumn  = "col"
	ActionRow     = "row"
	ActionClear   = "clear"
	ActionFilters = "filters"
)

const buttonLabelLen = 32

func CallbackData(action string, args ...string) string {
	data := action
	for _, arg := range args {
		data += ":" + arg
	}
	return data
}

// GridKeyboard builds the column header row, one button per rendered
// row and the toolbar
func GridKeyboard(g *grid.Grid) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	if g.Loading {
		return menu
	}

	var rows []tele.Row
	rows = append(rows, headerRow(menu, g)...)

	for i, row := range g.Visible {
		if i == PageSize {
			break
		}
		label := TruncateString(fmt.Sprintf("👤 %s", row.FullName()), buttonLabelLen)
		btn := menu.Data(label, CallbackData(ActionRow, strconv.Itoa(row.ID)))
		rows = append(rows, menu.Row(btn))
	}

	rows = append(rows, toolbarRow(menu, g))

	menu.Inline(rows...)

	return menu
}

func headerRow(menu *tele.ReplyMarkup, g *grid.Grid) []tele.Row {
	var buttons []tele.Btn
	for _, col := range models.Columns() {
		label := col.Header()
		if g.Search[col] != "" {
			label += " •"
		}
		if g.Active == col {
			label = "🔍 " + label
		}
		buttons = append(buttons, menu.Data(label, CallbackData(ActionColumn, string(col))))
	}

	// five headers do not fit on one phone-width row
	return []tele.Row{
		menu.Row(buttons[:3]...),
		menu.Row(buttons[3:]...),
	}
}

func toolbarRow(menu *tele.ReplyMarkup, g *grid.Grid) tele.Row {
	buttons := []tele.Btn{
		menu.Data("🔎 Filters", CallbackData(ActionFilters)),
	}

	if g.Active != models.ColumnNone {
		label := fmt.Sprintf("✖ Clear %s", g.Active.Header())
		buttons = append(buttons, menu.Data(label, CallbackData(ActionClear, string(g.Active))))
	}

	return menu.Row(buttons...)
}

func MainMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	btnReload := menu.Text("🔄 New users")
	btnGrid := menu.Text("📋 Grid")
	btnHelp := menu.Text("❓ Help")

	menu.Reply(
		menu.Row(btnReload, btnGrid),
		menu.Row(btnHelp),
	)

	return menu
}
