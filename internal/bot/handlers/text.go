package handlers

import (
	"context"
	"errors"
	"strings"

	"randomuser-bot/internal/bot/utils"
	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/models"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var errNoActiveColumn = errors.New("no active column")

// HandleText routes menu buttons and treats any other text as the
// search term of the active column
func HandleText(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		text := strings.TrimSpace(c.Text())

		switch text {
		case "🔄 New users":
			return reloadGrid(ctx, c)
		case "📋 Grid":
			return HandleGrid(ctx)(c)
		case "❓ Help":
			return HandleHelp(ctx)(c)
		}

		chatID := c.Chat().ID

		dbCtx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
		defer cancel()

		g, err := ctx.Sessions.Update(dbCtx, chatID, func(g *grid.Grid) error {
			if g.Active == models.ColumnNone {
				return errNoActiveColumn
			}
			return g.SetSearch(g.Active, text)
		})

		switch {
		case errors.Is(err, grid.ErrNoGrid):
			return c.Send(utils.FormatNoGridMessage(), tele.ModeMarkdownV2)
		case errors.Is(err, errNoActiveColumn):
			return c.Reply("Tap a column button first to choose what to search.")
		case err != nil:
			ctx.Logger.Error("failed to apply search",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			return c.Reply("😔 Error. Please try again later.")
		}

		ctx.Logger.Debug("search applied",
			zap.Int64("chat_id", chatID),
			zap.String("column", string(g.Active)),
			zap.Int("visible", len(g.Visible)),
		)

		return sendGrid(c, g)
	}
}
