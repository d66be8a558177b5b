package response

import "time"

type SessionResponse struct {
	SessionID         string `json:"session_id"`
	Title             string `json:"title"`
	AnalysisCompleted bool   `json:"analysis_completed"`
}

type GetSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

type MessageResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
}

type GetSessionMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type UserAuthResponse struct {
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Token  string `json:"token"`
}
