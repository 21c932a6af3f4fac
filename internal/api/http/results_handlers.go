package http

import (
	"net/http"
	"time"

	"github.com/examhall/examhall/internal/auth"
	"github.com/examhall/examhall/internal/exam"
)

// resultView is the wire shape of a stored Result, with the owner's
// identity attached and the timestamp formatted for display.
type resultView struct {
	ID             string                        `json:"id"`
	ExamID         string                        `json:"exam_id"`
	UserID         string                        `json:"user_id"`
	Name           string                        `json:"name"`
	RollNumber     string                        `json:"roll_number"`
	Score          int                           `json:"score"`
	Total          int                           `json:"total"`
	Percentage     float64                       `json:"percentage"`
	Passed         bool                          `json:"passed"`
	CategoryScores map[string]exam.CategoryScore `json:"category_scores"`
	Answers        map[string]int                `json:"answers"`
	SubmittedAt    string                        `json:"submitted_at"`
}

// GET /api/results: a student sees their own results, an admin sees all,
// newest first.
func ResultsHandler(store exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())

		var (
			results []exam.Result
			err     error
		)
		if id.Role == exam.RoleAdmin {
			results, err = store.AllResults(r.Context())
		} else {
			results, err = store.ResultsForUser(r.Context(), id.UserID)
		}
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]resultView, 0, len(results))
		for _, res := range results {
			v := resultView{
				ID:             res.ID,
				ExamID:         res.ExamID,
				UserID:         res.UserID,
				Score:          res.Score,
				Total:          res.Total,
				Percentage:     res.Percentage,
				Passed:         res.Passed,
				CategoryScores: res.CategoryScores,
				Answers:        res.Answers,
				SubmittedAt:    time.Unix(res.SubmittedAt, 0).UTC().Format("2006-01-02 15:04:05"),
			}
			if u, uerr := store.UserByID(r.Context(), res.UserID); uerr == nil {
				v.Name = u.Name
				v.RollNumber = u.RollNumber
			}
			out = append(out, v)
		}
		writeJSON(w, http.StatusOK, out)
	}
}
