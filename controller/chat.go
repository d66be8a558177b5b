package controller

import (
	"errors"
	"log/slog"

	"ratein-backend/request"
	"ratein-backend/service/chat"
	"ratein-backend/store"
	"ratein-backend/utils"

	"github.com/gin-gonic/gin"
)

// FollowupChat 分析完成后的追问，在同一线程上起新 Run，结果通过 SSE 推送
func FollowupChat(c *gin.Context) {
	utils.SetSSEHeaders(c)

	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		utils.SendSSEMessage(c, utils.EventError, ErrParseRequest.Error())
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	email := c.GetString("email")
	session, err := store.Sessions.GetSession(req.SessionID)
	if err != nil || session.UserEmail != email {
		slog.Error(ErrGetSessions.Error(), "session_id", req.SessionID, "err", err)
		utils.SendSSEMessage(c, utils.EventError, ErrGetSessions.Error())
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	handler := chat.NewGinSSEHandler(c, session.SessionID)
	if err := orchestrator.RunFollowup(c.Request.Context(), session, req.Query, handler); err != nil {
		msg := classifyFollowupError(err)
		slog.Error(msg, "session_id", session.SessionID, "err", err)
		utils.SendSSEMessage(c, utils.EventError, msg)
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	utils.SendSSEMessage(c, utils.EventDone, "")
}

func classifyFollowupError(err error) string {
	var runErr *chat.RunFailedError
	switch {
	case errors.Is(err, chat.ErrAnalysisNotCompleted):
		return chat.ErrAnalysisNotCompleted.Error()
	case errors.As(err, &runErr):
		return ErrAnalysisFailed.Error()
	case errors.Is(err, chat.ErrEmptyExtraction):
		return ErrAnalysisEmpty.Error()
	}
	return ErrFollowupFailed.Error()
}
