package handlers

import (
	"randomuser-bot/internal/bot/utils"
	"randomuser-bot/internal/models"

	tele "gopkg.in/telebot.v3"
)

// SelectHandler is notified with the full record of a selected row
type SelectHandler func(c tele.Context, row models.UserRow) error

// SendUserCard replies with the user's large picture and details
func SendUserCard(c tele.Context, row models.UserRow) error {
	caption := utils.FormatUserCard(row)

	if row.LargePicture == "" {
		return c.Send(caption, tele.ModeMarkdownV2)
	}

	photo := &tele.Photo{
		File:    tele.FromURL(row.LargePicture),
		Caption: caption,
	}
	return c.Send(photo, tele.ModeMarkdownV2)
}
