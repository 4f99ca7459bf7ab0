package quiz

import (
	"slices"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog
	if c.Len() != 300 {
		t.Fatalf("Len() = %d, want 300", c.Len())
	}
	if got := c.TotalPages(20); got != 15 {
		t.Fatalf("TotalPages(20) = %d, want 15", got)
	}

	q, ok := c.ByID(1)
	if !ok || q.Answer != "64" || q.Reward != 5 {
		t.Fatalf("ByID(1) = %+v, %v", q, ok)
	}
	if _, ok := c.ByID(301); ok {
		t.Fatal("ByID(301) found a question")
	}
}

func TestCatalog_Page(t *testing.T) {
	c := DefaultCatalog
	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantFirst int64
		wantLen   int
	}{
		{"first", 1, 1, 1, 20},
		{"below range", 0, 1, 1, 20},
		{"negative", -3, 1, 1, 20},
		{"middle", 2, 2, 21, 20},
		{"last", 15, 15, 281, 20},
		{"above range", 99, 15, 281, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page := c.Page(tt.page, 20)
			if page != tt.wantPage {
				t.Fatalf("page = %d, want %d", page, tt.wantPage)
			}
			if len(got) != tt.wantLen || got[0].ID != tt.wantFirst {
				t.Fatalf("page %d starts at #%d with %d entries", page, got[0].ID, len(got))
			}
		})
	}
}

func TestCatalog_PartialLastPage(t *testing.T) {
	c := MustCatalog([]Question{{ID: 1}, {ID: 2}, {ID: 3}})
	got, page := c.Page(5, 2)
	if page != 2 || len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("Page(5, 2) = %v, %d", got, page)
	}
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
	}{
		{"empty", nil},
		{"zero id", []Question{{ID: 0}}},
		{"duplicate id", []Question{{ID: 1}, {ID: 1}}},
		{"negative reward", []Question{{ID: 1, Reward: -5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.questions); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCatalog_Remaining(t *testing.T) {
	c := MustCatalog([]Question{{ID: 1}, {ID: 2}, {ID: 3}})

	ids := func(qs []Question) []int64 {
		out := make([]int64, 0, len(qs))
		for _, q := range qs {
			out = append(out, q.ID)
		}
		return out
	}

	if got := ids(c.remaining(nil)); !slices.Equal(got, []int64{1, 2, 3}) {
		t.Fatalf("remaining(nil) = %v", got)
	}
	if got := ids(c.remaining([]int64{2, 99})); !slices.Equal(got, []int64{1, 3}) {
		t.Fatalf("remaining([2 99]) = %v", got)
	}
	if got := c.remaining([]int64{1, 2, 3}); len(got) != 0 {
		t.Fatalf("remaining(all) = %v", got)
	}
}

func TestCatalog_Search(t *testing.T) {
	c := DefaultCatalog

	if got := c.Search("  "); len(got) != c.Len() {
		t.Fatalf("blank search returned %d questions", len(got))
	}

	got := c.Search("L-shape")
	if len(got) == 0 {
		t.Fatal("search returned nothing")
	}
	if !slices.ContainsFunc(got, func(q Question) bool { return q.ID == 2 }) {
		t.Fatalf("search for L-shape did not return question #2")
	}
	if len(got) == c.Len() {
		t.Fatal("search did not filter the catalog")
	}
}

func TestPaginate_SearchResults(t *testing.T) {
	results := DefaultCatalog.All()[:45]

	tests := []struct {
		page, wantPage, wantLen int
		wantFirst               int64
	}{
		{page: 1, wantPage: 1, wantLen: 20, wantFirst: 1},
		{page: 3, wantPage: 3, wantLen: 5, wantFirst: 41},
		{page: 9, wantPage: 3, wantLen: 5, wantFirst: 41},
		{page: -2, wantPage: 1, wantLen: 20, wantFirst: 1},
	}
	for _, tt := range tests {
		got, page := Paginate(results, tt.page, 20)
		if page != tt.wantPage || len(got) != tt.wantLen || got[0].ID != tt.wantFirst {
			t.Fatalf("Paginate(page=%d) = %d items from #%d on page %d", tt.page, len(got), got[0].ID, page)
		}
	}
	if n := PageCount(0, 20); n != 1 {
		t.Fatalf("PageCount(0) = %d, want 1", n)
	}
	if got, page := Paginate(nil, 4, 20); len(got) != 0 || page != 1 {
		t.Fatalf("Paginate(nil) = %v, %d", got, page)
	}
}
