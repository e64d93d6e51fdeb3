package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"randomuser-bot/internal/bot/utils"
	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/models"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// HandleCallback processes all callback queries from inline buttons
func HandleCallback(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		cb := c.Callback()
		if cb == nil {
			ctx.Logger.Warn("callback is nil")
			return nil
		}

		data := cb.Data

		// telebot prefixes unique callback data with \f
		if len(data) > 0 && data[0] == '\f' {
			data = data[1:]
		}

		parts := strings.Split(data, ":")
		action := parts[0]

		ctx.Logger.Debug("routing callback",
			zap.String("action", action),
			zap.Strings("parts", parts),
		)

		switch action {
		case utils.ActionColumn:
			return handleColumnToggle(ctx, c, parts)
		case utils.ActionRow:
			return handleRowSelect(ctx, c, parts)
		case utils.ActionClear:
			return handleClearSearch(ctx, c, parts)
		case utils.ActionFilters:
			return handleShowFilters(ctx, c)
		default:
			ctx.Logger.Warn("unknown callback action",
				zap.String("action", action),
				zap.String("data", data),
			)
			return c.Respond(&tele.CallbackResponse{Text: "❓ Unknown action"})
		}
	}
}

// ==================== Column headers ====================

func handleColumnToggle(ctx *Context, c tele.Context, parts []string) error {
	col, ok := columnArg(parts)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid column"})
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
	defer cancel()

	g, err := ctx.Sessions.Update(dbCtx, c.Chat().ID, func(g *grid.Grid) error {
		return g.ToggleColumn(col)
	})
	if err != nil {
		return respondGridError(ctx, c, err)
	}

	editGrid(ctx, c, g)

	text := "Search hidden"
	if g.Active == col {
		text = "✏️ Type to search " + col.Header()
	}
	return c.Respond(&tele.CallbackResponse{Text: text})
}

func handleClearSearch(ctx *Context, c tele.Context, parts []string) error {
	col, ok := columnArg(parts)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid column"})
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
	defer cancel()

	g, err := ctx.Sessions.Update(dbCtx, c.Chat().ID, func(g *grid.Grid) error {
		return g.SetSearch(col, "")
	})
	if err != nil {
		return respondGridError(ctx, c, err)
	}

	editGrid(ctx, c, g)

	return c.Respond(&tele.CallbackResponse{Text: "✅ " + col.Header() + " search cleared"})
}

func handleShowFilters(ctx *Context, c tele.Context) error {
	dbCtx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
	defer cancel()

	g, err := ctx.Sessions.Get(dbCtx, c.Chat().ID)
	if err != nil {
		return respondGridError(ctx, c, err)
	}

	return c.Respond(&tele.CallbackResponse{
		Text:      utils.FormatTermsPlain(g.Terms()),
		ShowAlert: true,
	})
}

// ==================== Row selection ====================

func handleRowSelect(ctx *Context, c tele.Context, parts []string) error {
	if len(parts) < 2 {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid format"})
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid format"})
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
	defer cancel()

	g, err := ctx.Sessions.Get(dbCtx, c.Chat().ID)
	if err != nil {
		return respondGridError(ctx, c, err)
	}

	var notifyErr error
	err = g.Select(id, func(row models.UserRow) {
		ctx.Logger.Info("row selected",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Int("row_id", row.ID),
		)
		notifyErr = ctx.OnSelect(c, row)
	})
	if errors.Is(err, grid.ErrRowNotVisible) {
		return c.Respond(&tele.CallbackResponse{Text: "This user is filtered out"})
	}
	if err != nil {
		return respondGridError(ctx, c, err)
	}

	if notifyErr != nil {
		ctx.Logger.Error("select handler failed", zap.Int("row_id", id), zap.Error(notifyErr))
	}

	return c.Respond()
}

// ==================== Helpers ====================

func columnArg(parts []string) (models.Column, bool) {
	if len(parts) < 2 {
		return models.ColumnNone, false
	}
	col, err := models.ParseColumn(parts[1])
	if err != nil {
		return models.ColumnNone, false
	}
	return col, true
}

func respondGridError(ctx *Context, c tele.Context, err error) error {
	if errors.Is(err, grid.ErrNoGrid) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "This grid has expired. Send /start to load new users.",
			ShowAlert: true,
		})
	}

	ctx.Logger.Error("grid callback failed", zap.Error(err))
	return c.Respond(&tele.CallbackResponse{Text: "😔 Error"})
}
