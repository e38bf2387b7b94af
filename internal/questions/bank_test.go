package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-techq-bot/internal/models"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{"id": "sql-1", "category": "SQL", "difficulty": "easy", "question": "q1", "solution": "s1"},
		{"id": 101, "category": "Python", "difficulty": "medium", "question": "q2", "solution": "s2"}
	]`)

	bank, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, bank.Len())

	item, err := bank.ByID("sql-1")
	require.NoError(t, err)
	assert.Equal(t, "SQL", item.Category)

	// Numeric ids from the legacy catalog are normalized to strings.
	item, err = bank.ByID("101")
	require.NoError(t, err)
	assert.Equal(t, "Python", item.Category)
}

func TestLoadRejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing id", `[{"category": "SQL", "difficulty": "easy", "question": "q", "solution": "s"}]`},
		{"missing solution", `[{"id": "a", "category": "SQL", "difficulty": "easy", "question": "q"}]`},
		{"missing category", `[{"id": "a", "difficulty": "easy", "question": "q", "solution": "s"}]`},
		{"duplicate id", `[
			{"id": "a", "category": "SQL", "difficulty": "easy", "question": "q", "solution": "s"},
			{"id": "a", "category": "CSS", "difficulty": "easy", "question": "q", "solution": "s"}
		]`},
		{"empty catalog", `[]`},
		{"boolean id", `[{"id": true, "category": "SQL", "difficulty": "easy", "question": "q", "solution": "s"}]`},
		{"not json", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestByIDNotFound(t *testing.T) {
	bank, err := New([]models.QuestionItem{
		{ID: "a", Category: "SQL", Difficulty: "easy", Question: "q", Solution: "s"},
	})
	require.NoError(t, err)

	_, err = bank.ByID("gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllKeepsLoadOrder(t *testing.T) {
	items := []models.QuestionItem{
		{ID: "b", Category: "SQL", Difficulty: "easy", Question: "q", Solution: "s"},
		{ID: "a", Category: "CSS", Difficulty: "easy", Question: "q", Solution: "s"},
	}
	bank, err := New(items)
	require.NoError(t, err)

	all := bank.All()
	require.Len(t, all, 2)
	assert.Equal(t, models.QuestionID("b"), all[0].ID)
	assert.Equal(t, models.QuestionID("a"), all[1].ID)
}
