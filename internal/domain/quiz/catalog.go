package quiz

import (
	"fmt"
	"math"
)

// Catalog is an immutable, ordered set of questions. It is built once and shared by every
// request; callers must not modify the slices it hands out.
type Catalog struct {
	questions []Question
	index     map[int64]int
}

// DefaultCatalog holds the built-in chess questions.
var DefaultCatalog = MustCatalog(chessQuestions)

func NewCatalog(questions []Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	index := make(map[int64]int, len(questions))
	for i, q := range questions {
		if q.ID <= 0 {
			return nil, fmt.Errorf("question at position %d has non-positive id %d", i, q.ID)
		}
		if _, dup := index[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		if q.Reward < 0 {
			return nil, fmt.Errorf("question %d has negative reward", q.ID)
		}
		index[q.ID] = i
	}
	return &Catalog{questions: questions, index: index}, nil
}

func MustCatalog(questions []Question) *Catalog {
	c, err := NewCatalog(questions)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

func (c *Catalog) All() []Question {
	return c.questions
}

func (c *Catalog) ByID(id int64) (Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// TotalPages returns the number of pages of the given size, at least 1.
func (c *Catalog) TotalPages(size int) int {
	return PageCount(len(c.questions), size)
}

// Page returns the questions of a 1-based page after clamping page into [1, TotalPages].
func (c *Catalog) Page(page, size int) ([]Question, int) {
	return Paginate(c.questions, page, size)
}

// PageCount returns how many pages of size n items fill, at least 1.
func PageCount(n, size int) int {
	return max(1, int(math.Ceil(float64(n)/float64(size))))
}

// Paginate slices one 1-based page out of questions, clamping page into range. The result
// shares the backing array of questions.
func Paginate(questions []Question, page, size int) ([]Question, int) {
	page = min(max(page, 1), PageCount(len(questions), size))
	start := min((page-1)*size, len(questions))
	end := min(start+size, len(questions))
	return questions[start:end], page
}

// remaining returns the questions whose ids are not in seen, preserving catalog order.
func (c *Catalog) remaining(seen []int64) []Question {
	if len(seen) == 0 {
		return c.questions
	}
	skip := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		skip[id] = struct{}{}
	}
	out := make([]Question, 0, len(c.questions))
	for _, q := range c.questions {
		if _, ok := skip[q.ID]; !ok {
			out = append(out, q)
		}
	}
	return out
}
