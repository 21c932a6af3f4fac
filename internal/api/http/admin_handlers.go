package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examhall/examhall/internal/bank"
	"github.com/examhall/examhall/internal/exam"
)

// POST /api/init_db: wipe the questions collection and reseed it from the
// static catalog.
func InitDBHandler(store exam.Store, categories []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs := bank.Questions(categories)
		if err := store.ReplaceQuestions(r.Context(), qs); err != nil {
			writeError(w, err)
			return
		}
		byCategory := map[string]int{}
		for _, cat := range categories {
			n, err := store.CountQuestions(r.Context(), cat)
			if err != nil {
				writeError(w, err)
				return
			}
			byCategory[cat] = n
		}
		log.Printf("questions reseeded: %d total", len(qs))
		writeJSON(w, http.StatusOK, map[string]any{
			"message":         "Database initialized successfully",
			"total_questions": len(qs),
			"by_category":     byCategory,
		})
	}
}

// GET /api/admin/students
func ListStudentsHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := store.ListUsers(r.Context(), exam.RoleStudent)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// DELETE /api/admin/students/{userID}: removes the student and, with them,
// their exam instances and results.
func DeleteStudentHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if err := store.DeleteUser(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Student deleted"})
	}
}

// POST /api/admin/students/{userID}/reset: clears the student's exam
// instances and results so they can attempt again.
func ResetStudentHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if _, err := store.UserByID(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}
		if err := store.DeleteInstancesForUser(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Student exam reset"})
	}
}
