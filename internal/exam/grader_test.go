package exam_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/examhall/examhall/internal/exam"
)

// startAll allocates an exam covering every seeded question (quota >=
// category size) and returns the assigned list.
func startAll(t *testing.T, svc *exam.Service, userID string) []exam.AssignedQuestion {
	t.Helper()
	qs, err := svc.StartExam(context.Background(), userID)
	if err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	return qs
}

func TestSubmitAllCorrect(t *testing.T) {
	store := seedStore(t, map[string]int{"python": 4, "iot": 4})
	svc := exam.NewService(store, []string{"python", "iot"}, 4, 40)
	u := addStudent(t, store, "G001")
	qs := startAll(t, svc, u.ID)

	// seedStore sets answer = i%4 for id "<cat>-<i>"
	answers := map[string]int{}
	for _, q := range qs {
		var i int
		if _, err := fmt.Sscanf(q.ID, q.Category+"-%d", &i); err != nil {
			t.Fatalf("bad id %s: %v", q.ID, err)
		}
		answers[q.ID] = i % 4
	}

	res, err := svc.SubmitExam(context.Background(), u.ID, answers)
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	if res.Score != res.Total || res.Total != 8 {
		t.Fatalf("score %d/%d, want 8/8", res.Score, res.Total)
	}
	if res.Percentage != 100.00 {
		t.Fatalf("percentage %v, want 100.00", res.Percentage)
	}
	if !res.Passed {
		t.Fatal("expected pass")
	}
	for cat, cs := range res.CategoryScores {
		if cs.Correct != 4 || cs.Total != 4 {
			t.Errorf("category %s: %+v, want 4/4", cat, cs)
		}
	}
}

func TestSubmitEmptyAnswers(t *testing.T) {
	store := seedStore(t, map[string]int{"python": 4})
	svc := exam.NewService(store, []string{"python"}, 4, 40)
	u := addStudent(t, store, "G002")
	startAll(t, svc, u.ID)

	res, err := svc.SubmitExam(context.Background(), u.ID, map[string]int{})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("score %d, want 0", res.Score)
	}
	if res.Percentage != 0.00 {
		t.Fatalf("percentage %v, want 0.00", res.Percentage)
	}
	if res.Passed {
		t.Fatal("expected fail")
	}
}

func TestSubmitTwiceFailsAndKeepsResult(t *testing.T) {
	store := seedStore(t, map[string]int{"python": 4})
	svc := exam.NewService(store, []string{"python"}, 4, 40)
	u := addStudent(t, store, "G003")
	startAll(t, svc, u.ID)

	first, err := svc.SubmitExam(context.Background(), u.ID, map[string]int{"python-0": 0})
	if err != nil {
		t.Fatalf("first SubmitExam: %v", err)
	}
	if _, err := svc.SubmitExam(context.Background(), u.ID, map[string]int{"python-0": 0, "python-1": 1}); err != exam.ErrAlreadyGraded {
		t.Fatalf("second submit: got %v, want ErrAlreadyGraded", err)
	}

	stored, err := store.ResultsForUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("ResultsForUser: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("got %d results, want 1", len(stored))
	}
	if stored[0].ID != first.ID || stored[0].Score != first.Score {
		t.Fatalf("stored result changed: %+v vs %+v", stored[0], first)
	}
}

func TestSubmitWithoutStart(t *testing.T) {
	store := seedStore(t, map[string]int{"python": 4})
	svc := exam.NewService(store, []string{"python"}, 4, 40)
	u := addStudent(t, store, "G004")

	if _, err := svc.SubmitExam(context.Background(), u.ID, nil); err != exam.ErrNoActiveExam {
		t.Fatalf("got %v, want ErrNoActiveExam", err)
	}
}

func TestSubmitMixedCategories(t *testing.T) {
	// quota=2, categories a (2 questions) and b (1). All correct answers
	// submitted: 3/3, 100.00, a 2/2 and b 1/1.
	store := exam.NewMemStore()
	qs := []exam.Question{
		{ID: "a1", Category: "a", Prompt: "q", Options: []string{"x", "y", "z", "w"}, Answer: 0},
		{ID: "a2", Category: "a", Prompt: "q", Options: []string{"x", "y", "z", "w"}, Answer: 1},
		{ID: "b1", Category: "b", Prompt: "q", Options: []string{"x", "y", "z", "w"}, Answer: 2},
	}
	if err := store.ReplaceQuestions(context.Background(), qs); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := exam.NewService(store, []string{"a", "b"}, 2, 40)
	u := addStudent(t, store, "G005")
	if got := startAll(t, svc, u.ID); len(got) != 3 {
		t.Fatalf("allocated %d questions, want 3", len(got))
	}

	res, err := svc.SubmitExam(context.Background(), u.ID, map[string]int{"a1": 0, "a2": 1, "b1": 2})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	if res.Score != 3 || res.Total != 3 || res.Percentage != 100.00 {
		t.Fatalf("got %d/%d %.2f, want 3/3 100.00", res.Score, res.Total, res.Percentage)
	}
	if cs := res.CategoryScores["a"]; cs.Correct != 2 || cs.Total != 2 {
		t.Errorf("category a: %+v, want 2/2", cs)
	}
	if cs := res.CategoryScores["b"]; cs.Correct != 1 || cs.Total != 1 {
		t.Errorf("category b: %+v, want 1/1", cs)
	}
}

func TestSubmitRoundsPercentage(t *testing.T) {
	store := exam.NewMemStore()
	qs := []exam.Question{
		{ID: "c1", Category: "c", Prompt: "q", Options: []string{"x", "y"}, Answer: 0},
		{ID: "c2", Category: "c", Prompt: "q", Options: []string{"x", "y"}, Answer: 0},
		{ID: "c3", Category: "c", Prompt: "q", Options: []string{"x", "y"}, Answer: 0},
	}
	if err := store.ReplaceQuestions(context.Background(), qs); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := exam.NewService(store, []string{"c"}, 3, 40)
	u := addStudent(t, store, "G006")
	startAll(t, svc, u.ID)

	res, err := svc.SubmitExam(context.Background(), u.ID, map[string]int{"c1": 0})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	if res.Percentage != 33.33 {
		t.Fatalf("percentage %v, want 33.33", res.Percentage)
	}
	if res.Passed {
		t.Fatal("33.33 should not pass at threshold 40")
	}
}
