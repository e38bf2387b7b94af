package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-techq-bot/internal/models"
)

// Callback actions. Each click carries the id of the question shown in the
// message, separated by a colon.
const (
	CallbackSolution  = "solution"
	CallbackAnother   = "another"
	CallbackResources = "resources"
)

// EncodeCallback builds the callback data for an action on a question.
func EncodeCallback(action string, id models.QuestionID) string {
	return fmt.Sprintf("%s:%s", action, id)
}

// ParseCallback splits callback data into action and question id.
func ParseCallback(data string) (action string, id models.QuestionID) {
	action, rest, _ := strings.Cut(data, ":")
	return action, models.QuestionID(rest)
}

// FormatQuestion renders a question message: a category/difficulty header
// line followed by the question body.
func FormatQuestion(item models.QuestionItem) string {
	header := fmt.Sprintf("*Category:* %s  ·  *Difficulty:* %s\n\n", item.Category, item.Difficulty)
	return header + item.Question
}

// FormatSolution renders the question together with its revealed solution.
func FormatSolution(item models.QuestionItem) string {
	return item.Question + "\n\n" + item.Solution
}

// QuestionKeyboard is the full action set attached to a freshly sent
// question.
func QuestionKeyboard(id models.QuestionID) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📘 Show solution", EncodeCallback(CallbackSolution, id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Another", EncodeCallback(CallbackAnother, id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔗 Resources", EncodeCallback(CallbackResources, id)),
		),
	)
}

// FollowupKeyboard is attached after the resources edit: the resources
// button is dropped, solution and replacement remain.
func FollowupKeyboard(id models.QuestionID) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📘 Show solution", EncodeCallback(CallbackSolution, id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Another", EncodeCallback(CallbackAnother, id)),
		),
	)
}
