package request

type UserRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Avatar   string `json:"avatar"`
}

type UserLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateSessionRequest struct {
	JobPreferences string `json:"job_preferences"`
}

type UpdateSessionTitleRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
}

// AnalysisRequest 发起档案分析
type AnalysisRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	ProfileURL string `json:"profile_url" binding:"required"`

	// 可选的求职偏好，覆盖会话创建时填写的内容
	JobPreferences string `json:"job_preferences"`
}

// ChatRequest 分析完成后的追问
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Query     string `json:"query" binding:"required"`
}
