package exam

import (
	"context"
	"math"
	"time"
)

// Unanswered marks a question with no usable submitted answer. It never
// matches a stored correct index.
const Unanswered = -1

// SubmitExam grades the user's in_progress instance against the submitted
// answer map and records the Result. The instance's stored question order
// drives the iteration; the answer map is an untrusted lookup. Grading and
// the status flip land in one conditional store write, so a double submit
// fails with ErrAlreadyGraded and leaves the first Result untouched.
func (s *Service) SubmitExam(ctx context.Context, userID string, answers map[string]int) (Result, error) {
	inst, err := s.store.InstanceInProgress(ctx, userID)
	if err == ErrNoActiveExam {
		// Distinguish "never started" from "already submitted".
		if done, herr := s.store.HasResult(ctx, userID); herr == nil && done {
			return Result{}, ErrAlreadyGraded
		}
		return Result{}, err
	}
	if err != nil {
		return Result{}, err
	}

	byID, err := s.store.QuestionsByIDs(ctx, inst.QuestionIDs)
	if err != nil {
		return Result{}, err
	}

	score := 0
	perCat := make(map[string]CategoryScore, len(s.categories))
	for _, cat := range s.categories {
		perCat[cat] = CategoryScore{}
	}
	for _, qid := range inst.QuestionIDs {
		q, ok := byID[qid]
		if !ok {
			continue
		}
		cs := perCat[q.Category]
		cs.Total++
		picked, ok := answers[qid]
		if !ok {
			picked = Unanswered
		}
		if picked == q.Answer {
			score++
			cs.Correct++
		}
		perCat[q.Category] = cs
	}

	total := len(inst.QuestionIDs)
	pct := 0.0
	if total > 0 {
		pct = math.Round(float64(score)/float64(total)*100*100) / 100
	}

	now := time.Now().Unix()
	return s.store.CompleteInstance(ctx, inst.ID, now, Result{
		ExamID:         inst.ID,
		UserID:         userID,
		Score:          score,
		Total:          total,
		Percentage:     pct,
		Passed:         pct >= s.passPercent,
		CategoryScores: perCat,
		Answers:        answers,
		SubmittedAt:    now,
	})
}
