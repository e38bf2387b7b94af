// Package service implements delivery: deciding whether and what to send
// to a user today, updating the persisted bookkeeping, and fanning out the
// daily broadcast.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"telegram-techq-bot/internal/models"
	"telegram-techq-bot/internal/questions"
	"telegram-techq-bot/internal/repository"
	"telegram-techq-bot/internal/selection"
	"telegram-techq-bot/pkg/utils"
)

type Repository interface {
	UpsertNew(ctx context.Context, userID, chatID int64) error
	SetSubscribed(ctx context.Context, userID int64, subscribed bool) error
	SetDailyCount(ctx context.Context, userID int64, n int) error
	GetUser(ctx context.Context, userID int64) (*models.UserState, error)
	RecordDelivery(ctx context.Context, userID int64, questionID, date string) error
	ListSubscribed(ctx context.Context) ([]int64, error)
}

// Sender delivers one question to a chat. The transport owns formatting,
// keyboards and timeouts.
type Sender interface {
	Send(chatID int64, item models.QuestionItem) error
}

type Service struct {
	repo   Repository
	bank   *questions.Bank
	policy *selection.Policy
	sender Sender
	loc    *time.Location
}

func New(repo Repository, bank *questions.Bank, policy *selection.Policy, sender Sender, loc *time.Location) *Service {
	return &Service{
		repo:   repo,
		bank:   bank,
		policy: policy,
		sender: sender,
		loc:    loc,
	}
}

func (s *Service) today() string {
	return utils.DateString(time.Now().In(s.loc))
}

// RegisterUser creates the subscriber row on first contact. Idempotent:
// repeating /start leaves an existing row untouched.
func (s *Service) RegisterUser(ctx context.Context, userID, chatID int64) error {
	return s.repo.UpsertNew(ctx, userID, chatID)
}

func (s *Service) Subscribe(ctx context.Context, userID int64) error {
	return s.repo.SetSubscribed(ctx, userID, true)
}

func (s *Service) Unsubscribe(ctx context.Context, userID int64) error {
	return s.repo.SetSubscribed(ctx, userID, false)
}

func (s *Service) SetDailyCount(ctx context.Context, userID int64, n int) error {
	return s.repo.SetDailyCount(ctx, userID, n)
}

// DeliverToday sends the user's daily set of questions. Unknown or
// unsubscribed users are a silent no-op. If the user was already served
// today the stored last question seeds the repeat-avoidance chain and the
// date stamp is not advanced; the first delivery of the day records the
// last sent question id and today's date.
func (s *Service) DeliverToday(ctx context.Context, userID int64) error {
	state, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read user state (user_id: %d): %w", userID, err)
	}
	if !state.Subscribed {
		return nil
	}

	today := s.today()
	firstOfDay := state.LastSentDate == nil || *state.LastSentDate != today

	var previousID models.QuestionID
	if !firstOfDay && state.LastQuestionID != nil {
		previousID = models.QuestionID(*state.LastQuestionID)
	}

	sent := 0
	for i := 0; i < state.DailyCount; i++ {
		item := s.policy.Pick(previousID)
		if err := s.sender.Send(state.ChatID, item); err != nil {
			return fmt.Errorf("send question %d of %d (user_id: %d, question_id: %s): %w",
				sent+1, state.DailyCount, userID, item.ID, err)
		}
		previousID = item.ID
		sent++
	}

	if sent > 0 && firstOfDay {
		if err := s.repo.RecordDelivery(ctx, userID, string(previousID), today); err != nil {
			return fmt.Errorf("record delivery (user_id: %d): %w", userID, err)
		}
	}
	return nil
}

// BroadcastToday fans the daily delivery out to every subscribed user.
// A failure for one user is logged and does not stop the others.
func (s *Service) BroadcastToday(ctx context.Context) error {
	userIDs, err := s.repo.ListSubscribed(ctx)
	if err != nil {
		return fmt.Errorf("list subscribed users: %w", err)
	}

	zap.S().Info("starting daily broadcast", zap.Int("subscribers", len(userIDs)))

	for _, userID := range userIDs {
		if err := s.DeliverToday(ctx, userID); err != nil {
			zap.S().Error("deliver daily questions", zap.Error(err), zap.Int64("user_id", userID))
		}
	}
	return nil
}

// DeliverExtra sends count on-demand questions to a chat. Extra sends are
// outside the daily bookkeeping: last_sent_date and last_question_id are
// neither consulted nor written.
func (s *Service) DeliverExtra(ctx context.Context, chatID int64, count int) error {
	var previousID models.QuestionID
	for i := 0; i < count; i++ {
		item := s.policy.Pick(previousID)
		if err := s.sender.Send(chatID, item); err != nil {
			return fmt.Errorf("send extra question %d of %d (chat_id: %d): %w", i+1, count, chatID, err)
		}
		previousID = item.ID
	}
	return nil
}

// Question looks a catalog item up by id. Stale ids from callbacks on old
// messages return questions.ErrNotFound.
func (s *Service) Question(id models.QuestionID) (models.QuestionItem, error) {
	return s.bank.ByID(id)
}

// PickAnother returns a replacement question that differs from the one the
// user is looking at whenever the catalog allows it.
func (s *Service) PickAnother(previousID models.QuestionID) models.QuestionItem {
	return s.policy.Pick(previousID)
}
