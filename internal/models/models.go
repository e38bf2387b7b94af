package models

import (
	"encoding/json"
	"fmt"
)

// QuestionID is an opaque question identifier. The shipped catalog mixes
// string and numeric ids, so decoding normalizes both to a string token.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = QuestionID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = QuestionID(n.String())
		return nil
	}

	return fmt.Errorf("question id must be a string or a number, got %s", data)
}

// QuestionItem is one catalog entry. The catalog is loaded once at startup
// and never mutated.
type QuestionItem struct {
	ID         QuestionID `json:"id"`
	Category   string     `json:"category"`
	Difficulty string     `json:"difficulty"`
	Question   string     `json:"question"`
	Solution   string     `json:"solution"`
}

// UserState is the persisted per-user subscription and delivery row.
// LastQuestionID and LastSentDate are nil until the first scheduled
// delivery; LastSentDate holds a YYYY-MM-DD date in the bot's timezone.
type UserState struct {
	UserID         int64   `db:"user_id"`
	ChatID         int64   `db:"chat_id"`
	Subscribed     bool    `db:"subscribed"`
	LastQuestionID *string `db:"last_question_id"`
	LastSentDate   *string `db:"last_sent_date"`
	DailyCount     int     `db:"daily_count"`
}
