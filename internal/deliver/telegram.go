package deliver

import (
	"context"

	tele "gopkg.in/telebot.v4"
)

// TelegramSink sends the message to one chat. Send-only: no poller is
// configured, the bot never consumes updates.
type TelegramSink struct {
	bot    *tele.Bot
	chatID int64
}

func NewTelegram(token string, chatID int64) (*TelegramSink, error) {
	b, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		return nil, err
	}
	return &TelegramSink{bot: b, chatID: chatID}, nil
}

func (s *TelegramSink) Name() string { return "telegram" }

func (s *TelegramSink) Send(_ context.Context, text string) error {
	_, err := s.bot.Send(tele.ChatID(s.chatID), text, &tele.SendOptions{DisableWebPagePreview: true})
	return err
}
