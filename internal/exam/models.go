package exam

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RollNumber   string `json:"roll_number"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	CreatedAt    int64  `json:"created_at"`
}

type Question struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Prompt     string   `json:"question"`
	Options    []string `json:"options"`
	Answer     int      `json:"answer,omitempty"` // correct option index; stripped before serving
	Difficulty string   `json:"difficulty"`
}

// Instance is one user's assigned exam: the sampled, shuffled question id
// sequence. QuestionIDs is immutable once created.
type Instance struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Status      string   `json:"status"` // in_progress|completed
	QuestionIDs []string `json:"question_ids"`
	StartedAt   int64    `json:"started_at"`
	CompletedAt int64    `json:"completed_at,omitempty"`
}

type CategoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type Result struct {
	ID             string                   `json:"id"`
	ExamID         string                   `json:"exam_id"`
	UserID         string                   `json:"user_id"`
	Score          int                      `json:"score"`
	Total          int                      `json:"total"`
	Percentage     float64                  `json:"percentage"`
	Passed         bool                     `json:"passed"`
	CategoryScores map[string]CategoryScore `json:"category_scores"`
	Answers        map[string]int           `json:"answers"`
	SubmittedAt    int64                    `json:"submitted_at"`
}
