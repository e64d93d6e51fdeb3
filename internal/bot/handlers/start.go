package handlers

import (
	"context"
	"errors"
	"time"

	"randomuser-bot/internal/bot/utils"
	"randomuser-bot/internal/grid"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	sessionTimeout = 10 * time.Second
	welcomeMessage = "👋 Here are some random users\\. Tap a column to search it, tap a user to open their card\\."
)

// /start command
func HandleStart(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		if err := c.Send(welcomeMessage, utils.MainMenuKeyboard(), tele.ModeMarkdownV2); err != nil {
			ctx.Logger.Warn("failed to send welcome", zap.Error(err))
		}

		return reloadGrid(ctx, c)
	}
}

// reloadGrid starts a fresh grid for the chat: a loading message is
// posted, the batch is fetched once and the message becomes the grid.
func reloadGrid(ctx *Context, c tele.Context) error {
	chatID := c.Chat().ID

	ctx.Logger.Info("loading grid", zap.Int64("chat_id", chatID))

	loadingMsg, err := c.Bot().Send(c.Recipient(), utils.FormatLoading(), tele.ModeMarkdownV2)
	if err != nil {
		return err
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.RandomUserTimeout+sessionTimeout)
	defer cancel()

	g, err := ctx.Sessions.Start(loadCtx, chatID, ctx.Loader)
	if err != nil {
		ctx.Logger.Error("failed to start grid",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		if g == nil {
			g = &grid.Grid{Loading: true, LoadErr: err.Error()}
		}
	}

	_, editErr := c.Bot().Edit(
		loadingMsg,
		utils.FormatGrid(g),
		utils.GridKeyboard(g),
		tele.ModeMarkdownV2,
		tele.NoPreview,
	)
	if editErr != nil {
		ctx.Logger.Warn("failed to edit loading message", zap.Error(editErr))
		return sendGrid(c, g)
	}

	return nil
}

// /grid
func HandleGrid(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		dbCtx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
		defer cancel()

		g, err := ctx.Sessions.Get(dbCtx, c.Chat().ID)
		if errors.Is(err, grid.ErrNoGrid) {
			return c.Send(utils.FormatNoGridMessage(), tele.ModeMarkdownV2)
		}
		if err != nil {
			ctx.Logger.Error("failed to get grid", zap.Error(err))
			return c.Send("😔 Error. Please try again later.")
		}

		return sendGrid(c, g)
	}
}

func sendGrid(c tele.Context, g *grid.Grid) error {
	return c.Send(
		utils.FormatGrid(g),
		utils.GridKeyboard(g),
		tele.ModeMarkdownV2,
		tele.NoPreview,
	)
}

func editGrid(ctx *Context, c tele.Context, g *grid.Grid) {
	if err := c.Edit(
		utils.FormatGrid(g),
		utils.GridKeyboard(g),
		tele.ModeMarkdownV2,
		tele.NoPreview,
	); err != nil {
		ctx.Logger.Warn("failed to edit grid message", zap.Error(err))
	}
}
