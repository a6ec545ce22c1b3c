package tg

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/logger"
)

type tokenGetter interface {
	Token() string
}

// Client only talks outwards: it posts alert messages to chats.
type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	logger.Info("telegram client ready", zap.String("bot", client.Self.UserName))
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}
