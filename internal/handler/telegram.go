// Package handler maps Telegram commands and button clicks onto the
// delivery service.
package handler

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"telegram-techq-bot/internal/models"
	"telegram-techq-bot/internal/telegram"
)

type Service interface {
	RegisterUser(ctx context.Context, userID, chatID int64) error
	Subscribe(ctx context.Context, userID int64) error
	Unsubscribe(ctx context.Context, userID int64) error
	SetDailyCount(ctx context.Context, userID int64, n int) error
	DeliverToday(ctx context.Context, userID int64) error
	DeliverExtra(ctx context.Context, chatID int64, count int) error
	Question(id models.QuestionID) (models.QuestionItem, error)
	PickAnother(previousID models.QuestionID) models.QuestionItem
}

const welcomeText = "👋 Hi! You'll get technical questions daily (SQL, Algorithms, HTML and more).\n" +
	"Use /subscribe or /unsubscribe. /today resends today's questions.\n" +
	"Use /setcount <n> to get n questions per day (1–5). /more <n> sends extras right now."

const helpText = "Available commands:\n\n" +
	"/start — register and show the welcome message\n" +
	"/subscribe — receive the daily questions\n" +
	"/unsubscribe — stop receiving them\n" +
	"/today — resend today's questions\n" +
	"/setcount <n> — questions per day (1–5)\n" +
	"/more <n> — extra questions right now (1–5)\n" +
	"/help — this message"

type Handler struct {
	client  *telegram.Client
	service Service

	// Webhook mode is used when webhookURL is set; long polling otherwise.
	webhookURL string
	listenAddr string
}

func New(client *telegram.Client, service Service, webhookURL, listenAddr string) *Handler {
	return &Handler{
		client:     client,
		service:    service,
		webhookURL: webhookURL,
		listenAddr: listenAddr,
	}
}

// Start consumes updates until the channel closes.
func (h *Handler) Start() error {
	updates, err := h.updates()
	if err != nil {
		return err
	}

	zap.S().Info("bot started", zap.String("mode", h.mode()))

	for update := range updates {
		if update.Message == nil && update.CallbackQuery == nil {
			continue
		}
		h.handleUpdate(update)
	}
	return nil
}

func (h *Handler) mode() string {
	if h.webhookURL != "" {
		return "webhook"
	}
	return "polling"
}

func (h *Handler) updates() (tgbotapi.UpdatesChannel, error) {
	api := h.client.API()

	if h.webhookURL == "" {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		return api.GetUpdatesChan(u), nil
	}

	wh, err := tgbotapi.NewWebhook(h.webhookURL)
	if err != nil {
		return nil, fmt.Errorf("build webhook config (url: %s): %w", h.webhookURL, err)
	}
	if _, err := api.Request(wh); err != nil {
		return nil, fmt.Errorf("register webhook (url: %s): %w", h.webhookURL, err)
	}

	updates := api.ListenForWebhook("/" + api.Token)
	go func() {
		if err := http.ListenAndServe(h.listenAddr, nil); err != nil {
			zap.S().Error("webhook listener stopped", zap.Error(err), zap.String("addr", h.listenAddr))
		}
	}()

	return updates, nil
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	ctx := context.Background()

	switch {
	case update.Message != nil && update.Message.IsCommand():
		if update.Message.From == nil {
			zap.S().Warn("received command from nil user")
			return
		}
		h.handleCommand(ctx, update)
	case update.Message != nil:
		if update.Message.From == nil {
			return
		}
		h.sendText(update.Message.Chat.ID, "I don't understand that. Use /help for the list of commands.")
	case update.CallbackQuery != nil:
		if update.CallbackQuery.From == nil {
			zap.S().Warn("received callback from nil user")
			return
		}
		h.handleCallback(ctx, update)
	}
}

func (h *Handler) handleCommand(ctx context.Context, update tgbotapi.Update) {
	switch update.Message.Command() {
	case "start":
		h.handleStart(ctx, update)
	case "subscribe":
		h.handleSubscribe(ctx, update)
	case "unsubscribe":
		h.handleUnsubscribe(ctx, update)
	case "today":
		h.handleToday(ctx, update)
	case "setcount":
		h.handleSetCount(ctx, update)
	case "more":
		h.handleMore(ctx, update)
	case "help":
		h.sendText(update.Message.Chat.ID, helpText)
	default:
		h.sendText(update.Message.Chat.ID, "Unknown command. Use /help")
	}
}

func (h *Handler) handleStart(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if err := h.service.RegisterUser(ctx, userID, chatID); err != nil {
		zap.S().Error("register user", zap.Error(err), zap.Int64("user_id", userID))
		h.sendText(chatID, "Something went wrong. Please try again later.")
		return
	}

	h.sendText(chatID, welcomeText)
}

func (h *Handler) handleSubscribe(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if err := h.service.Subscribe(ctx, userID); err != nil {
		zap.S().Error("subscribe user", zap.Error(err), zap.Int64("user_id", userID))
		h.sendText(chatID, "Something went wrong. Please try again later.")
		return
	}

	h.sendText(chatID, "✅ Subscribed. You'll get your questions every day.")
}

func (h *Handler) handleUnsubscribe(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if err := h.service.Unsubscribe(ctx, userID); err != nil {
		zap.S().Error("unsubscribe user", zap.Error(err), zap.Int64("user_id", userID))
		h.sendText(chatID, "Something went wrong. Please try again later.")
		return
	}

	h.sendText(chatID, "🔕 Unsubscribed. Use /subscribe to rejoin.")
}

func (h *Handler) handleToday(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	// Unknown or unsubscribed users are a deliberate no-op here; the sent
	// questions themselves are the reply for everyone else.
	if err := h.service.DeliverToday(ctx, userID); err != nil {
		zap.S().Error("deliver today", zap.Error(err), zap.Int64("user_id", userID))
		h.sendText(chatID, "Something went wrong. Please try again later.")
	}
}

func (h *Handler) handleSetCount(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	n, err := parseStrictCount(update.Message.CommandArguments())
	if err != nil {
		h.sendText(chatID, "Usage: /setcount <n>  (1–5)")
		return
	}

	if err := h.service.SetDailyCount(ctx, userID, n); err != nil {
		zap.S().Error("set daily count", zap.Error(err), zap.Int64("user_id", userID), zap.Int("count", n))
		h.sendText(chatID, "Something went wrong. Please try again later.")
		return
	}

	h.sendText(chatID, fmt.Sprintf("✅ Daily question count set to %d.", n))
}

func (h *Handler) handleMore(ctx context.Context, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	n := clampCount(update.Message.CommandArguments())
	if err := h.service.DeliverExtra(ctx, chatID, n); err != nil {
		zap.S().Error("deliver extra", zap.Error(err), zap.Int64("chat_id", chatID), zap.Int("count", n))
		h.sendText(chatID, "Something went wrong. Please try again later.")
	}
}

func (h *Handler) handleCallback(ctx context.Context, update tgbotapi.Update) {
	callback := update.CallbackQuery
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	action, questionID := telegram.ParseCallback(callback.Data)

	item, err := h.service.Question(questionID)
	if err != nil {
		// The catalog may have shrunk since the message was sent.
		if editErr := h.client.EditText(chatID, messageID, "Question not found."); editErr != nil {
			zap.S().Error("edit message", zap.Error(editErr), zap.Int64("chat_id", chatID))
		}
		h.answerCallback(callback.ID)
		return
	}

	switch action {
	case telegram.CallbackSolution:
		err = h.client.EditText(chatID, messageID, telegram.FormatSolution(item))
	case telegram.CallbackAnother:
		next := h.service.PickAnother(item.ID)
		err = h.client.EditWithKeyboard(chatID, messageID, telegram.FormatQuestion(next), telegram.QuestionKeyboard(next.ID))
	case telegram.CallbackResources:
		text := item.Question + "\n\n" + resourcesText(item.Category)
		err = h.client.EditWithKeyboard(chatID, messageID, text, telegram.FollowupKeyboard(item.ID))
	default:
		zap.S().Warn("unknown callback action", zap.String("data", callback.Data), zap.Int64("user_id", callback.From.ID))
	}

	if err != nil {
		zap.S().Error("handle callback", zap.Error(err), zap.String("action", action), zap.Int64("chat_id", chatID))
	}

	h.answerCallback(callback.ID)
}

// answerCallback clears the client-side loading indicator.
func (h *Handler) answerCallback(callbackID string) {
	if _, err := h.client.API().Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		zap.S().Error("answer callback", zap.Error(err), zap.String("callback_id", callbackID))
	}
}

func (h *Handler) sendText(chatID int64, text string) {
	if err := h.client.SendText(chatID, text); err != nil {
		zap.S().Error("send message", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}
