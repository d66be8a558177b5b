package controller

import (
	"errors"
	"log/slog"

	"ratein-backend/model"
	"ratein-backend/request"
	"ratein-backend/service/chat"
	"ratein-backend/service/profile"
	"ratein-backend/service/summarization"
	"ratein-backend/store"
	"ratein-backend/utils"

	"github.com/gin-gonic/gin"
)

// RunAnalysis 抓取档案并驱动首轮分析，结果通过 SSE 推送
func RunAnalysis(c *gin.Context) {
	utils.SetSSEHeaders(c)

	var req request.AnalysisRequest
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

	ctx := c.Request.Context()

	// 抓取失败直接反馈，不追加消息也不创建 Run
	content, err := profile.Scrape(ctx, req.ProfileURL)
	if err != nil || !content.Valid() {
		slog.Error(ErrFetchProfile.Error(), "profile_url", req.ProfileURL, "err", err)
		utils.SendSSEMessage(c, utils.EventError, ErrFetchProfile.Error())
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	preferences := req.JobPreferences
	if preferences == "" {
		preferences = session.JobPreferences
	}

	handler := chat.NewGinSSEHandler(c, session.SessionID)
	if err := orchestrator.RunInitialAnalysis(ctx, session, content, preferences, handler); err != nil {
		msg := classifyAnalysisError(err)
		slog.Error(msg, "session_id", session.SessionID, "err", err)
		utils.SendSSEMessage(c, utils.EventError, msg)
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	utils.SendSSEMessage(c, utils.EventDone, "")

	registerTitleTask(email, session.SessionID, req.ProfileURL)
}

// classifyAnalysisError 区分引擎失败、空报告与一般传输失败
func classifyAnalysisError(err error) string {
	var runErr *chat.RunFailedError
	switch {
	case errors.As(err, &runErr):
		return ErrAnalysisFailed.Error()
	case errors.Is(err, chat.ErrEmptyExtraction):
		return ErrAnalysisEmpty.Error()
	}
	return ErrAnalysisGeneric.Error()
}

// registerTitleTask 用首轮对话为会话起标题，尽力而为
func registerTitleTask(email, sessionID, userText string) {
	if summarization.SummarizerInstance == nil {
		return
	}

	messages, err := store.Sessions.GetMessagesBySessionID(email, sessionID)
	if err != nil {
		return
	}

	for _, msg := range messages {
		if msg.Role == model.RoleAssistant {
			summarization.SummarizerInstance.RegisterTitleTask(summarization.TitleTask{
				SessionID:     sessionID,
				UserText:      userText,
				AssistantText: msg.Content,
			})
			return
		}
	}
}
