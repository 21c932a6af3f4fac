package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/examhall/examhall/internal/auth"
	"github.com/examhall/examhall/internal/exam"
)

// POST /api/start_exam
func StartExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		questions, err := svc.StartExam(r.Context(), id.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
	}
}

type submitReq struct {
	// Values arrive as whatever the client sent; anything that is not an
	// integer option index grades as unanswered.
	Answers map[string]json.RawMessage `json:"answers"`
}

// POST /api/submit_exam
func SubmitExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		var req submitReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrMsg(w, http.StatusBadRequest, "bad json")
			return
		}
		answers := make(map[string]int, len(req.Answers))
		for qid, raw := range req.Answers {
			answers[qid] = coerceIndex(raw)
		}
		res, err := svc.SubmitExam(r.Context(), id.UserID, answers)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"score":           res.Score,
			"total":           res.Total,
			"percentage":      res.Percentage,
			"passed":          res.Passed,
			"category_scores": res.CategoryScores,
		})
	}
}

func coerceIndex(raw json.RawMessage) int {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return exam.Unanswered
}
