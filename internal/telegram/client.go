// Package telegram wraps the Bot API client and owns the wire shape of
// question messages: formatting, inline keyboards and callback data.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-techq-bot/internal/models"
)

type Client struct {
	api *tgbotapi.BotAPI
}

func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}
	return &Client{api: api}, nil
}

func (c *Client) API() *tgbotapi.BotAPI {
	return c.api
}

// Send delivers one question with its action keyboard.
func (c *Client) Send(chatID int64, item models.QuestionItem) error {
	msg := tgbotapi.NewMessage(chatID, FormatQuestion(item))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = QuestionKeyboard(item.ID)

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send question (chat_id: %d, question_id: %s): %w", chatID, item.ID, err)
	}
	return nil
}

func (c *Client) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send message (chat_id: %d): %w", chatID, err)
	}
	return nil
}

// EditText replaces a previously sent message, dropping its keyboard.
func (c *Client) EditText(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.api.Send(edit); err != nil {
		return fmt.Errorf("edit message (chat_id: %d, message_id: %d): %w", chatID, messageID, err)
	}
	return nil
}

// EditWithKeyboard replaces a previously sent message and its keyboard.
func (c *Client) EditWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	edit.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.api.Send(edit); err != nil {
		return fmt.Errorf("edit message (chat_id: %d, message_id: %d): %w", chatID, messageID, err)
	}
	return nil
}
