package main

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

type recordingSender struct {
	replies []string
}

func (r *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		r.replies = append(r.replies, msg.Text)
	}
	return tgbotapi.Message{}, nil
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	msg := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}, Text: text}
	if strings.HasPrefix(text, "/") {
		command, _, _ := strings.Cut(text, " ")
		msg.Entities = &[]tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(command)}}
	}
	return tgbotapi.Update{Message: msg}
}

func TestServeKeepsChatOrder(t *testing.T) {
	out := &recordingSender{}
	b := &Bot{out: out, sessions: newTestSessions()}

	updates := make(chan tgbotapi.Update, 8)
	updates <- textUpdate(1, "/add Buy milk")
	updates <- textUpdate(1, "/done 1")
	updates <- tgbotapi.Update{}
	updates <- textUpdate(1, "/delete 1")
	updates <- textUpdate(1, "/delete 1")
	close(updates)

	b.serve(updates)

	if len(out.replies) != 4 {
		t.Fatalf("expected 4 replies, got %d: %q", len(out.replies), out.replies)
	}
	if !strings.Contains(out.replies[0], "ID: #1") {
		t.Errorf("first reply should confirm the add, got %q", out.replies[0])
	}
	want := []string{"Task #1 is now completed", "Task #1 deleted", "Task #1 not found"}
	for i, w := range want {
		if out.replies[i+1] != w {
			t.Errorf("reply %d: got %q, want %q", i+1, out.replies[i+1], w)
		}
	}
}
