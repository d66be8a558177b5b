package model

import "time"

const DefaultSessionTitle = "New Review"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session 一次档案评审会话，绑定一个远端对话线程
type Session struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserEmail string    `json:"user_email"`
	SessionID string    `json:"session_id"`

	// 远端对话线程ID，会话创建时分配，之后不变
	ThreadID string `json:"thread_id"`

	Title string `json:"title"`

	// 用户填写的求职偏好，拼接进分析请求与图片点评提示词
	JobPreferences string `json:"job_preferences"`

	// 档案分析的状态标记
	AnalysisRequested bool `json:"analysis_requested"`
	AnalysisCompleted bool `json:"analysis_completed"`

	// 远端线程消息的本地展示缓存，只追加
	Messages []Message `json:"messages"`
}

// Message 展示缓存中的一条消息
type Message struct {
	CreatedAt time.Time `json:"created_at"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
}
