package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/examhall/examhall/internal/exam"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError is the single boundary between domain sentinels and HTTP.
// Every failure becomes a short JSON message; nothing crashes the request.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exam.ErrDuplicateRoll):
		writeErrMsg(w, http.StatusBadRequest, "roll number already registered")
	case errors.Is(err, exam.ErrUserNotFound):
		writeErrMsg(w, http.StatusNotFound, "user not found")
	case errors.Is(err, exam.ErrExamNotFound):
		writeErrMsg(w, http.StatusNotFound, "exam not found")
	case errors.Is(err, exam.ErrAlreadyCompleted):
		writeErrMsg(w, http.StatusForbidden, "exam already completed")
	case errors.Is(err, exam.ErrAlreadyGraded):
		writeErrMsg(w, http.StatusForbidden, "exam already submitted")
	case errors.Is(err, exam.ErrNoActiveExam):
		writeErrMsg(w, http.StatusBadRequest, "no exam in progress")
	case errors.Is(err, exam.ErrStoreUnavailable):
		writeErrMsg(w, http.StatusInternalServerError, "database not available")
	default:
		writeErrMsg(w, http.StatusInternalServerError, "internal error")
	}
}
