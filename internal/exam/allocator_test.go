package exam_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/examhall/examhall/internal/exam"
)

func seedStore(t *testing.T, perCategory map[string]int) exam.Store {
	t.Helper()
	store := exam.NewMemStore()
	var qs []exam.Question
	for cat, n := range perCategory {
		for i := 0; i < n; i++ {
			qs = append(qs, exam.Question{
				ID:         fmt.Sprintf("%s-%d", cat, i),
				Category:   cat,
				Prompt:     fmt.Sprintf("%s question %d", cat, i),
				Options:    []string{"a", "b", "c", "d"},
				Answer:     i % 4,
				Difficulty: "basic",
			})
		}
	}
	if err := store.ReplaceQuestions(context.Background(), qs); err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return store
}

func addStudent(t *testing.T, store exam.Store, roll string) exam.User {
	t.Helper()
	u, err := store.CreateUser(context.Background(), exam.User{
		Name:       "Student " + roll,
		RollNumber: roll,
		Role:       exam.RoleStudent,
		CreatedAt:  time.Now().Unix(),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestStartExamFullQuota(t *testing.T) {
	cats := []string{"python", "iot"}
	store := seedStore(t, map[string]int{"python": 10, "iot": 10})
	svc := exam.NewService(store, cats, 5, 40)
	u := addStudent(t, store, "R001")

	qs, err := svc.StartExam(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("got %d questions, want 10", len(qs))
	}
	perCat := map[string]int{}
	seen := map[string]bool{}
	for i, q := range qs {
		if q.Number != i+1 {
			t.Errorf("question %d numbered %d", i, q.Number)
		}
		if seen[q.ID] {
			t.Errorf("question %s sampled twice", q.ID)
		}
		seen[q.ID] = true
		perCat[q.Category]++
	}
	for _, cat := range cats {
		if perCat[cat] != 5 {
			t.Errorf("category %s: got %d questions, want 5", cat, perCat[cat])
		}
	}
}

func TestStartExamResumeIsIdentical(t *testing.T) {
	store := seedStore(t, map[string]int{"python": 20})
	svc := exam.NewService(store, []string{"python"}, 5, 40)
	u := addStudent(t, store, "R002")

	first, err := svc.StartExam(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("first StartExam: %v", err)
	}
	second, err := svc.StartExam(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("second StartExam: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("resume returned %d questions, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("resume re-sampled: position %d is %s, was %s", i, second[i].ID, first[i].ID)
		}
	}
}

func TestStartExamShortCategoryTakesAll(t *testing.T) {
	store := seedStore(t, map[string]int{"a": 2, "b": 1})
	svc := exam.NewService(store, []string{"a", "b"}, 2, 40)
	u := addStudent(t, store, "R003")

	qs, err := svc.StartExam(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3 (2 from a, all 1 from b)", len(qs))
	}
}

func TestStartExamRejectsCompletedUser(t *testing.T) {
	store := seedStore(t, map[string]int{"python": 4})
	svc := exam.NewService(store, []string{"python"}, 4, 40)
	u := addStudent(t, store, "R004")

	if _, err := svc.StartExam(context.Background(), u.ID); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if _, err := svc.SubmitExam(context.Background(), u.ID, nil); err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	_, err := svc.StartExam(context.Background(), u.ID)
	if err != exam.ErrAlreadyCompleted {
		t.Fatalf("got %v, want ErrAlreadyCompleted", err)
	}
}
