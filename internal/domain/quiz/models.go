package quiz

import "time"

// Question is one read-only entry of the quiz catalog.
type Question struct {
	ID      int64
	Prompt  string
	Answer  string
	Aliases []string
	Reward  int64
}

// Accepts reports whether text matches the canonical answer or any alias.
func (q Question) Accepts(text string) bool {
	if IsMatch(text, q.Answer) {
		return true
	}
	for _, alias := range q.Aliases {
		if IsMatch(text, alias) {
			return true
		}
	}
	return false
}

// Issued is what a player sees after requesting a question. It never carries the answer.
type Issued struct {
	QuestionID int64
	Prompt     string
	Reward     int64
	AskedAt    time.Time
	// HistoryReset is set when the player had seen the whole catalog and started over.
	HistoryReset bool
}

// Outcome is the result of submitting an answer.
type Outcome struct {
	QuestionID int64
	Correct    bool
	Answer     string
	Reward     int64
	// RewardLost is set when the answer was correct but the credit failed.
	RewardLost bool
}
