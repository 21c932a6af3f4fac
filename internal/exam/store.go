package exam

import (
	"context"
	"errors"
)

// errInstanceConflict is returned by CreateInstance when the user already
// has an in_progress instance; the allocator folds it into the resume path.
var errInstanceConflict = errors.New("in-progress instance exists")

// Store is the persistence gateway over the four record collections
// (users, questions, exams, results). Two adapters satisfy it: SQLStore
// (sqlite/postgres) and MemStore, selected at startup by configuration.
type Store interface {
	// users
	CreateUser(ctx context.Context, u User) (User, error)
	UserByRoll(ctx context.Context, roll string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)
	ListUsers(ctx context.Context, role string) ([]User, error)
	DeleteUser(ctx context.Context, id string) error

	// questions
	ReplaceQuestions(ctx context.Context, qs []Question) error
	QuestionsByCategory(ctx context.Context, category string) ([]Question, error)
	QuestionsByIDs(ctx context.Context, ids []string) (map[string]Question, error)
	CountQuestions(ctx context.Context, category string) (int, error)

	// exam instances
	// CreateInstance inserts an in_progress instance; it must fail with
	// errInstanceConflict (not insert) if one already exists for the user.
	CreateInstance(ctx context.Context, inst Instance) (Instance, error)
	InstanceInProgress(ctx context.Context, userID string) (Instance, error)
	InstanceByID(ctx context.Context, id string) (Instance, error)
	// DeleteInstancesForUser removes the user's instances and, through
	// ownership, their results (admin reset).
	DeleteInstancesForUser(ctx context.Context, userID string) error

	// results
	// CompleteInstance flips the instance to completed and records the
	// result as one logical write; ErrAlreadyGraded if not in_progress.
	CompleteInstance(ctx context.Context, instanceID string, completedAt int64, res Result) (Result, error)
	HasResult(ctx context.Context, userID string) (bool, error)
	ResultsForUser(ctx context.Context, userID string) ([]Result, error)
	AllResults(ctx context.Context) ([]Result, error)
}
