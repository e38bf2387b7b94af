package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"telegram-techq-bot/internal/models"
)

// UpsertNew inserts a fresh subscriber row. If the row already exists
// nothing changes, so a repeated /start never resets subscription state.
func (s *Store) UpsertNew(ctx context.Context, userID, chatID int64) error {
	query := s.sb.Insert("users").
		Columns("user_id", "chat_id", "subscribed", "daily_count").
		Values(userID, chatID, true, 1).
		Suffix("ON CONFLICT (user_id) DO NOTHING")

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (user_id: %d): %w", userID, err)
	}

	if _, err = s.db.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert user (user_id: %d, chat_id: %d): %w", userID, chatID, err)
	}
	return nil
}

func (s *Store) SetSubscribed(ctx context.Context, userID int64, subscribed bool) error {
	query := s.sb.Update("users").
		Set("subscribed", subscribed).
		Where("user_id = ?", userID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (user_id: %d): %w", userID, err)
	}

	if _, err = s.db.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("set subscribed (user_id: %d, subscribed: %t): %w", userID, subscribed, err)
	}
	return nil
}

// SetDailyCount stores the per-day question count. Values outside [1,5]
// are rejected without touching the row.
func (s *Store) SetDailyCount(ctx context.Context, userID int64, n int) error {
	if n < 1 || n > 5 {
		return fmt.Errorf("daily count out of range [1,5] (user_id: %d, count: %d)", userID, n)
	}

	query := s.sb.Update("users").
		Set("daily_count", n).
		Where("user_id = ?", userID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (user_id: %d): %w", userID, err)
	}

	if _, err = s.db.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("set daily count (user_id: %d, count: %d): %w", userID, n, err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*models.UserState, error) {
	query := s.sb.Select("user_id", "chat_id", "subscribed", "last_question_id", "last_sent_date", "daily_count").
		From("users").
		Where("user_id = ?", userID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build SQL query (user_id: %d): %w", userID, err)
	}

	var state models.UserState
	if err = s.db.GetContext(ctx, &state, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user (user_id: %d): %w", userID, err)
	}
	return &state, nil
}

// RecordDelivery stamps the most recent scheduled delivery. Both bookkeeping
// columns are written in one statement, so a concurrent stamp for the same
// user resolves last-writer-wins without a partial row.
func (s *Store) RecordDelivery(ctx context.Context, userID int64, questionID, date string) error {
	query := s.sb.Update("users").
		Set("last_question_id", questionID).
		Set("last_sent_date", date).
		Where("user_id = ?", userID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (user_id: %d): %w", userID, err)
	}

	if _, err = s.db.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("record delivery (user_id: %d, question_id: %s, date: %s): %w", userID, questionID, date, err)
	}
	return nil
}

func (s *Store) ListSubscribed(ctx context.Context) ([]int64, error) {
	query := s.sb.Select("user_id").From("users").Where("subscribed = ?", true)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build SQL query: %w", err)
	}

	var ids []int64
	if err = s.db.SelectContext(ctx, &ids, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list subscribed users: %w", err)
	}
	return ids, nil
}
