package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/customerr"
	"max.ks1230/currconv/internal/model/popup"
)

const (
	defaultUpdateOffset = 0
	defaultTimeout      = 5 * time.Second
	pollTimeoutSeconds  = 60
)

type tgConfig interface {
	Token() string
	Timeout() time.Duration
}

type selectionHandler interface {
	HandleSelection(ctx context.Context, text string) (popup.Popup, error)
}

type Client struct {
	client        *tgbotapi.BotAPI
	timeout       time.Duration
	updatedLayout string
}

func New(cfg tgConfig, updatedLayout string) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(cfg.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client:        client,
		timeout:       timeout,
		updatedLayout: updatedLayout,
	}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, handler selectionHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = pollTimeoutSeconds

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, handler)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, handler selectionHandler) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	logger.Info(update.Message.Text, zap.Int64("chat", update.Message.Chat.ID))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, ok := reply(ctx, handler, update.Message.Text, c.updatedLayout)
	if !ok {
		return
	}
	if err := c.SendMessage(text, update.Message.Chat.ID); err != nil {
		logger.Error("error sending reply", zap.Error(err))
	}
}

// reply renders the popup for text. ok is false when nothing should be
// sent back.
func reply(ctx context.Context, handler selectionHandler, text, updatedLayout string) (string, bool) {
	p, err := handler.HandleSelection(ctx, text)
	if errors.Is(err, customerr.ErrExtractionFailed) {
		logger.Debug("no currency in message")
		return "", false
	}
	if err != nil {
		logger.Error("error processing message", zap.Error(err))
		return "", false
	}
	return popup.Render(p, updatedLayout), true
}
