package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"tasklist/internal/config"
	"tasklist/internal/logger"
)

// sender is the part of the Bot API used to reply.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api      *tgbotapi.BotAPI
	out      sender
	sessions *sessions
}

func NewBot(token string, debug bool) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	api.Debug = debug

	logger.Info(context.Background(), "bot authorized", "user", api.Self.UserName)
	return &Bot{
		api:      api,
		out:      api,
		sessions: newSessions(time.Local, time.Now),
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return fmt.Errorf("get updates: %w", err)
	}

	logger.Info(context.Background(), "bot is listening for messages")
	b.serve(updates)
	return nil
}

// serve handles updates one at a time in arrival order, so a chat's
// commands always apply in the order they were sent.
func (b *Bot) serve(updates <-chan tgbotapi.Update) {
	for update := range updates {
		if update.Message == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	ctx := context.Background()
	logger.Debug(ctx, "message received", "chat", msg.Chat.ID, "text", msg.Text)

	var text string
	if msg.IsCommand() {
		text = b.sessions.handleCommand(msg.Chat.ID, msg.Command(), msg.CommandArguments())
	} else {
		text = b.sessions.handleText(msg.Chat.ID, msg.Text)
	}
	if text == "" {
		return
	}

	if _, err := b.out.Send(tgbotapi.NewMessage(msg.Chat.ID, text)); err != nil {
		logger.Error(ctx, err, "send message", "chat", msg.Chat.ID)
	}
}

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	logger.Info(ctx, "starting telegram bot")

	if err := cfg.RequireBotToken(); err != nil {
		logger.Error(ctx, err, "bot configuration")
		os.Exit(1)
	}

	bot, err := NewBot(cfg.BotToken, cfg.TelegramDebug)
	if err != nil {
		logger.Error(ctx, err, "bot init")
		os.Exit(1)
	}

	if err := bot.Start(); err != nil {
		logger.Error(ctx, err, "bot stopped")
		os.Exit(1)
	}
}
