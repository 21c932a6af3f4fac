package bank_test

import (
	"testing"

	"github.com/examhall/examhall/internal/bank"
)

var defaultCategories = []string{"python", "web_design", "iot", "fundamentals"}

func TestCatalogCoversDefaultCategories(t *testing.T) {
	for _, cat := range defaultCategories {
		if len(bank.ForCategory(cat)) == 0 {
			t.Errorf("category %q has no catalog entries", cat)
		}
	}
	if got := bank.ForCategory("nope"); len(got) != 0 {
		t.Errorf("unknown category returned %d entries", len(got))
	}
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	qs := bank.Questions(defaultCategories)
	if len(qs) == 0 {
		t.Fatal("empty catalog")
	}
	for _, q := range qs {
		if q.Prompt == "" {
			t.Errorf("empty prompt in %s", q.Category)
		}
		if len(q.Options) != 4 {
			t.Errorf("%q: %d options, want 4", q.Prompt, len(q.Options))
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Errorf("%q: answer index %d out of range", q.Prompt, q.Answer)
		}
		if q.Difficulty == "" {
			t.Errorf("%q: missing difficulty", q.Prompt)
		}
	}
}
