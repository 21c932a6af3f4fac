package exam

import (
	"context"
	"log"
	"math/rand"
	"time"
)

// Service runs the exam lifecycle: allocation on start, grading on submit.
type Service struct {
	store       Store
	categories  []string
	quota       int // questions sampled per category
	passPercent float64
}

func NewService(store Store, categories []string, quota int, passPercent float64) *Service {
	return &Service{
		store:       store,
		categories:  categories,
		quota:       quota,
		passPercent: passPercent,
	}
}

// AssignedQuestion is a question as served to the examinee: the correct
// option index is never present.
type AssignedQuestion struct {
	ID         string   `json:"id"`
	Number     int      `json:"number"`
	Category   string   `json:"category"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
}

// StartExam allocates a fresh instance for the user, or resumes the
// existing in_progress one with the identical question set. A user with a
// recorded Result can never start again.
func (s *Service) StartExam(ctx context.Context, userID string) ([]AssignedQuestion, error) {
	done, err := s.store.HasResult(ctx, userID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, ErrAlreadyCompleted
	}

	if inst, err := s.store.InstanceInProgress(ctx, userID); err == nil {
		return s.assigned(ctx, inst)
	} else if err != ErrNoActiveExam {
		return nil, err
	}

	var picked []Question
	for _, cat := range s.categories {
		qs, err := s.store.QuestionsByCategory(ctx, cat)
		if err != nil {
			return nil, err
		}
		if len(qs) < s.quota {
			log.Printf("exam: category %q has %d questions, quota is %d; allocating all of them", cat, len(qs), s.quota)
			picked = append(picked, qs...)
			continue
		}
		for _, i := range rand.Perm(len(qs))[:s.quota] {
			picked = append(picked, qs[i])
		}
	}

	// Full shuffle across categories so the final order carries no
	// category signal. Option order within a question stays as stored.
	rand.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })

	ids := make([]string, len(picked))
	for i, q := range picked {
		ids[i] = q.ID
	}
	inst, err := s.store.CreateInstance(ctx, Instance{
		UserID:      userID,
		QuestionIDs: ids,
		StartedAt:   time.Now().Unix(),
	})
	if err == errInstanceConflict {
		// Lost a duplicate-start race: resume whatever won.
		inst, err = s.store.InstanceInProgress(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.assigned(ctx, inst)
	}
	if err != nil {
		return nil, err
	}

	out := make([]AssignedQuestion, len(picked))
	for i, q := range picked {
		out[i] = redact(q, i+1)
	}
	return out, nil
}

// assigned rebuilds the served question list from a persisted instance,
// preserving the stored order.
func (s *Service) assigned(ctx context.Context, inst Instance) ([]AssignedQuestion, error) {
	byID, err := s.store.QuestionsByIDs(ctx, inst.QuestionIDs)
	if err != nil {
		return nil, err
	}
	out := make([]AssignedQuestion, 0, len(inst.QuestionIDs))
	for _, id := range inst.QuestionIDs {
		q, ok := byID[id]
		if !ok {
			log.Printf("exam: instance %s references missing question %s", inst.ID, id)
			continue
		}
		out = append(out, redact(q, len(out)+1))
	}
	return out, nil
}

func redact(q Question, number int) AssignedQuestion {
	return AssignedQuestion{
		ID:         q.ID,
		Number:     number,
		Category:   q.Category,
		Question:   q.Prompt,
		Options:    q.Options,
		Difficulty: q.Difficulty,
	}
}
