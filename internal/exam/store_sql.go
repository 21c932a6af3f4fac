package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// isUniqueViolation matches both drivers by message: modernc sqlite says
// "UNIQUE constraint failed", pgx reports SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}

func (s *SQLStore) CreateUser(ctx context.Context, u User) (User, error) {
	u.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, roll_number, password_hash, role, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Name, u.RollNumber, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrDuplicateRoll
		}
		return User{}, storeErr(err)
	}
	return u, nil
}

func (s *SQLStore) UserByRoll(ctx context.Context, roll string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, name, roll_number, password_hash, role, created_at FROM users WHERE roll_number=$1`, roll))
}

func (s *SQLStore) UserByID(ctx context.Context, id string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, name, roll_number, password_hash, role, created_at FROM users WHERE id=$1`, id))
}

func (s *SQLStore) scanUser(row *sql.Row) (User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.RollNumber, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, storeErr(err)
	}
	return u, nil
}

func (s *SQLStore) ListUsers(ctx context.Context, role string) ([]User, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if role == "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, name, roll_number, password_hash, role, created_at FROM users ORDER BY roll_number`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, name, roll_number, password_hash, role, created_at FROM users WHERE role=$1 ORDER BY roll_number`, role)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()
	out := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.RollNumber, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// DeleteUser removes the user and, in the same transaction, their exams
// and results. The cascade is explicit: sqlite enforces REFERENCES only on
// connections with foreign_keys on, and the pool gives no such guarantee.
func (s *SQLStore) DeleteUser(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE user_id=$1`, id); err != nil {
		return storeErr(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM exams WHERE user_id=$1`, id); err != nil {
		return storeErr(err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	if err := tx.Commit(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *SQLStore) ReplaceQuestions(ctx context.Context, qs []Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return storeErr(err)
	}
	for _, q := range qs {
		id := q.ID
		if id == "" {
			id = uuid.NewString()
		}
		oj, err := json.Marshal(q.Options)
		if err != nil {
			return storeErr(err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (id, category, prompt, options_json, answer, difficulty)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			id, q.Category, q.Prompt, string(oj), q.Answer, q.Difficulty); err != nil {
			return storeErr(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *SQLStore) QuestionsByCategory(ctx context.Context, category string) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, prompt, options_json, answer, difficulty FROM questions WHERE category=$1`, category)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (s *SQLStore) QuestionsByIDs(ctx context.Context, ids []string) (map[string]Question, error) {
	out := make(map[string]Question, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	ph := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		ph[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, prompt, options_json, answer, difficulty FROM questions WHERE id IN (`+strings.Join(ph, ",")+`)`,
		args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()
	qs, err := scanQuestions(rows)
	if err != nil {
		return nil, err
	}
	for _, q := range qs {
		out[q.ID] = q
	}
	return out, nil
}

func scanQuestions(rows *sql.Rows) ([]Question, error) {
	out := []Question{}
	for rows.Next() {
		var (
			q  Question
			oj string
		)
		if err := rows.Scan(&q.ID, &q.Category, &q.Prompt, &oj, &q.Answer, &q.Difficulty); err != nil {
			return nil, storeErr(err)
		}
		if err := json.Unmarshal([]byte(oj), &q.Options); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *SQLStore) CountQuestions(ctx context.Context, category string) (int, error) {
	var (
		n   int
		err error
	)
	if category == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE category=$1`, category).Scan(&n)
	}
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (s *SQLStore) CreateInstance(ctx context.Context, inst Instance) (Instance, error) {
	inst.ID = uuid.NewString()
	inst.Status = StatusInProgress
	qj, err := json.Marshal(inst.QuestionIDs)
	if err != nil {
		return Instance{}, storeErr(err)
	}
	// The partial unique index on exams(user_id) WHERE status='in_progress'
	// makes this insert the conflict check; no read precedes it.
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO exams (id, user_id, status, question_ids_json, started_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		inst.ID, inst.UserID, inst.Status, string(qj), inst.StartedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Instance{}, errInstanceConflict
		}
		return Instance{}, storeErr(err)
	}
	return inst, nil
}

func (s *SQLStore) InstanceInProgress(ctx context.Context, userID string) (Instance, error) {
	inst, err := s.scanInstance(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, status, question_ids_json, started_at, completed_at
		 FROM exams WHERE user_id=$1 AND status=$2`, userID, StatusInProgress))
	if errors.Is(err, ErrExamNotFound) {
		return Instance{}, ErrNoActiveExam
	}
	return inst, err
}

func (s *SQLStore) InstanceByID(ctx context.Context, id string) (Instance, error) {
	return s.scanInstance(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, status, question_ids_json, started_at, completed_at
		 FROM exams WHERE id=$1`, id))
}

func (s *SQLStore) scanInstance(row *sql.Row) (Instance, error) {
	var (
		inst Instance
		qj   string
		done sql.NullInt64
	)
	if err := row.Scan(&inst.ID, &inst.UserID, &inst.Status, &qj, &inst.StartedAt, &done); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Instance{}, ErrExamNotFound
		}
		return Instance{}, storeErr(err)
	}
	if err := json.Unmarshal([]byte(qj), &inst.QuestionIDs); err != nil {
		return Instance{}, storeErr(err)
	}
	if done.Valid {
		inst.CompletedAt = done.Int64
	}
	return inst, nil
}

func (s *SQLStore) DeleteInstancesForUser(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE user_id=$1`, userID); err != nil {
		return storeErr(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM exams WHERE user_id=$1`, userID); err != nil {
		return storeErr(err)
	}
	if err := tx.Commit(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *SQLStore) CompleteInstance(ctx context.Context, instanceID string, completedAt int64, res Result) (Result, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, storeErr(err)
	}
	defer tx.Rollback()

	// Conditional flip: only one submission can win this write.
	upd, err := tx.ExecContext(ctx,
		`UPDATE exams SET status=$1, completed_at=$2 WHERE id=$3 AND status=$4`,
		StatusCompleted, completedAt, instanceID, StatusInProgress)
	if err != nil {
		return Result{}, storeErr(err)
	}
	if n, _ := upd.RowsAffected(); n == 0 {
		return Result{}, ErrAlreadyGraded
	}

	res.ID = uuid.NewString()
	csj, err := json.Marshal(res.CategoryScores)
	if err != nil {
		return Result{}, storeErr(err)
	}
	aj, err := json.Marshal(res.Answers)
	if err != nil {
		return Result{}, storeErr(err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO results (id, exam_id, user_id, score, total, percentage, passed, category_scores_json, answers_json, submitted_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		res.ID, res.ExamID, res.UserID, res.Score, res.Total, res.Percentage, res.Passed,
		string(csj), string(aj), res.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Result{}, ErrAlreadyGraded
		}
		return Result{}, storeErr(err)
	}
	if err := tx.Commit(); err != nil {
		return Result{}, storeErr(err)
	}
	return res, nil
}

func (s *SQLStore) HasResult(ctx context.Context, userID string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results WHERE user_id=$1`, userID).Scan(&n); err != nil {
		return false, storeErr(err)
	}
	return n > 0, nil
}

func (s *SQLStore) ResultsForUser(ctx context.Context, userID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, resultSelect+` WHERE user_id=$1 ORDER BY submitted_at DESC`, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()
	return scanResults(rows)
}

func (s *SQLStore) AllResults(ctx context.Context) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, resultSelect+` ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()
	return scanResults(rows)
}

const resultSelect = `SELECT id, exam_id, user_id, score, total, percentage, passed, category_scores_json, answers_json, submitted_at FROM results`

func scanResults(rows *sql.Rows) ([]Result, error) {
	out := []Result{}
	for rows.Next() {
		var r Result
		var csj, aj string
		if err := rows.Scan(&r.ID, &r.ExamID, &r.UserID, &r.Score, &r.Total, &r.Percentage, &r.Passed, &csj, &aj, &r.SubmittedAt); err != nil {
			return nil, storeErr(err)
		}
		if err := json.Unmarshal([]byte(csj), &r.CategoryScores); err != nil {
			return nil, storeErr(err)
		}
		if err := json.Unmarshal([]byte(aj), &r.Answers); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
