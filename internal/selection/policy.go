// Package selection picks the next question to deliver.
package selection

import (
	"math/rand"
	"sync"
	"time"

	"telegram-techq-bot/internal/models"
	"telegram-techq-bot/internal/questions"
)

// Policy chooses questions uniformly at random while avoiding an immediate
// repeat of the previous pick. Safe for concurrent use: the scheduler
// goroutine and the update loop both call Pick.
type Policy struct {
	bank *questions.Bank

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a policy over the given bank. Pass a rand.Source to make
// picks deterministic in tests; nil seeds from the clock.
func New(bank *questions.Bank, src rand.Source) *Policy {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Policy{
		bank: bank,
		rnd:  rand.New(src),
	}
}

// Pick returns a random catalog item whose id differs from previousID.
// With a single-item catalog the only item is returned regardless of
// previousID. An empty previousID excludes nothing.
func (p *Policy) Pick(previousID models.QuestionID) models.QuestionItem {
	all := p.bank.All()

	candidates := make([]models.QuestionItem, 0, len(all))
	for _, item := range all {
		if item.ID != previousID {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		candidates = all
	}

	p.mu.Lock()
	i := p.rnd.Intn(len(candidates))
	p.mu.Unlock()

	return candidates[i]
}
