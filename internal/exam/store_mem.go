package exam

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemStore is the in-memory adapter of the persistence gateway, selected
// with DB_DRIVER=memory. Semantics match SQLStore, including the
// uniqueness rules that the SQL schema enforces with indexes.
type MemStore struct {
	mu        sync.RWMutex
	users     map[string]User
	questions map[string]Question
	instances map[string]Instance
	results   map[string]Result
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:     map[string]User{},
		questions: map[string]Question{},
		instances: map[string]Instance{},
		results:   map[string]Result{},
	}
}

func (m *MemStore) CreateUser(_ context.Context, u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if ex.RollNumber == u.RollNumber {
			return User{}, ErrDuplicateRoll
		}
	}
	u.ID = uuid.NewString()
	m.users[u.ID] = u
	return u, nil
}

func (m *MemStore) UserByRoll(_ context.Context, roll string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.RollNumber == roll {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (m *MemStore) UserByID(_ context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (m *MemStore) ListUsers(_ context.Context, role string) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []User{}
	for _, u := range m.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RollNumber < out[j].RollNumber })
	return out, nil
}

func (m *MemStore) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(m.users, id)
	m.cascadeLocked(id)
	return nil
}

func (m *MemStore) cascadeLocked(userID string) {
	for id, inst := range m.instances {
		if inst.UserID == userID {
			delete(m.instances, id)
		}
	}
	for id, r := range m.results {
		if r.UserID == userID {
			delete(m.results, id)
		}
	}
}

func (m *MemStore) ReplaceQuestions(_ context.Context, qs []Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = make(map[string]Question, len(qs))
	for _, q := range qs {
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		m.questions[q.ID] = q
	}
	return nil
}

func (m *MemStore) QuestionsByCategory(_ context.Context, category string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Question{}
	for _, q := range m.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) QuestionsByIDs(_ context.Context, ids []string) (map[string]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]Question, len(ids))
	for _, id := range ids {
		if q, ok := m.questions[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (m *MemStore) CountQuestions(_ context.Context, category string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if category == "" {
		return len(m.questions), nil
	}
	n := 0
	for _, q := range m.questions {
		if q.Category == category {
			n++
		}
	}
	return n, nil
}

func (m *MemStore) CreateInstance(_ context.Context, inst Instance) (Instance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.instances {
		if ex.UserID == inst.UserID && ex.Status == StatusInProgress {
			return Instance{}, errInstanceConflict
		}
	}
	inst.ID = uuid.NewString()
	inst.Status = StatusInProgress
	m.instances[inst.ID] = inst
	return inst, nil
}

func (m *MemStore) InstanceInProgress(_ context.Context, userID string) (Instance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, inst := range m.instances {
		if inst.UserID == userID && inst.Status == StatusInProgress {
			return inst, nil
		}
	}
	return Instance{}, ErrNoActiveExam
}

func (m *MemStore) InstanceByID(_ context.Context, id string) (Instance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inst, ok := m.instances[id]
	if !ok {
		return Instance{}, ErrExamNotFound
	}
	return inst, nil
}

func (m *MemStore) DeleteInstancesForUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cascadeLocked(userID)
	return nil
}

func (m *MemStore) CompleteInstance(_ context.Context, instanceID string, completedAt int64, res Result) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inst, ok := m.instances[instanceID]
	if !ok {
		return Result{}, ErrExamNotFound
	}
	if inst.Status != StatusInProgress {
		return Result{}, ErrAlreadyGraded
	}
	inst.Status = StatusCompleted
	inst.CompletedAt = completedAt
	m.instances[instanceID] = inst

	res.ID = uuid.NewString()
	m.results[res.ID] = res
	return res, nil
}

func (m *MemStore) HasResult(_ context.Context, userID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.results {
		if r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemStore) ResultsForUser(_ context.Context, userID string) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Result{}
	for _, r := range m.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sortResultsDesc(out)
	return out, nil
}

func (m *MemStore) AllResults(_ context.Context) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, 0, len(m.results))
	for _, r := range m.results {
		out = append(out, r)
	}
	sortResultsDesc(out)
	return out, nil
}

func sortResultsDesc(rs []Result) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].SubmittedAt > rs[j].SubmittedAt })
}
