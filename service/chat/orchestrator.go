package chat

import (
	"context"
	"fmt"
	"time"

	"ratein-backend/config"
	"ratein-backend/model"
	"ratein-backend/service/assistant"
	"ratein-backend/store"
)

// ThreadClient 远端助手服务的线程接口，由 service/assistant 实现
type ThreadClient interface {
	CreateThread(ctx context.Context) (string, error)
	CreateMessage(ctx context.Context, threadID, role, content string) error
	CreateRun(ctx context.Context, threadID, assistantID, instructions string) (assistant.Run, error)
	RetrieveRun(ctx context.Context, threadID, runID string) (assistant.Run, error)
	SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []assistant.ToolOutput) error
	ListRunMessages(ctx context.Context, threadID, runID string) ([]assistant.ThreadMessage, error)
}

// CritiqueClient 头像点评服务，由 service/vision 实现
type CritiqueClient interface {
	Critique(ctx context.Context, imageURL, prompt string) (string, error)
}

// Events 接收编排过程中产生的输出，由 SSE 处理器实现
type Events interface {
	HandleAssistantMessage(ctx context.Context, content string)
	HandleToolResult(ctx context.Context, result string)
}

// Orchestrator 驱动助手 Run 的编排器：建线程、发消息、起 Run、
// 轮询状态、处理工具调用、提取结果。同一会话同时只有一个 Run 在途
type Orchestrator struct {
	Threads  ThreadClient
	Vision   CritiqueClient
	Sessions *store.SessionStore

	AssistantID  string
	PollInterval time.Duration
	MaxPolls     int

	// 注入的休眠函数，测试中替换以跳过真实延迟
	Sleep func(ctx context.Context, d time.Duration) error
}

func NewOrchestrator(threads ThreadClient, vision CritiqueClient, sessions *store.SessionStore) *Orchestrator {
	return &Orchestrator{
		Threads:      threads,
		Vision:       vision,
		Sessions:     sessions,
		AssistantID:  config.Cfg.Assistant.AssistantID,
		PollInterval: time.Duration(config.Cfg.Assistant.PollInterval),
		MaxPolls:     config.Cfg.Assistant.MaxPolls,
		Sleep:        sleepContext,
	}
}

// OpenSession 向远端申请一个新线程。失败对会话是致命的，
// 没有线程的会话不允许存在
func (o *Orchestrator) OpenSession(ctx context.Context) (string, error) {
	return o.Threads.CreateThread(ctx)
}

// RunInitialAnalysis 首轮分析：拼装分析请求、追加到线程、驱动 Run 到完成。
// 前置条件是档案两个字段均非空，否则不追加消息、不创建 Run
func (o *Orchestrator) RunInitialAnalysis(ctx context.Context, session *model.Session, content model.ProfileContent, preferences string, events Events) error {
	if !content.Valid() {
		return fmt.Errorf("profile content is incomplete")
	}

	o.Sessions.SetAnalysisRequested(session.SessionID, true)
	o.Sessions.SetJobPreferences(session.SessionID, preferences)

	request := BuildAnalysisRequest(content.FormattedText, content.ImageURL, preferences)

	if err := o.Threads.CreateMessage(ctx, session.ThreadID, model.RoleUser, request); err != nil {
		o.Sessions.SetAnalysisRequested(session.SessionID, false)
		return err
	}

	run, err := o.Threads.CreateRun(ctx, session.ThreadID, o.AssistantID, analysisRunInstructions)
	if err != nil {
		o.Sessions.SetAnalysisRequested(session.SessionID, false)
		return err
	}

	messages, err := o.driveRun(ctx, session.ThreadID, run, preferences, events)
	if err != nil {
		o.Sessions.SetAnalysisRequested(session.SessionID, false)
		return err
	}

	o.reportMessages(ctx, session.SessionID, messages, events)
	o.Sessions.SetAnalysisRequested(session.SessionID, false)
	o.Sessions.SetAnalysisCompleted(session.SessionID, true)
	return nil
}

// RunFollowup 在同一线程上追问。仅在首轮分析完成后可用。
// 完成标志从存储重新读取，调用方手里的可能是过期快照
func (o *Orchestrator) RunFollowup(ctx context.Context, session *model.Session, userText string, events Events) error {
	current, err := o.Sessions.GetSession(session.SessionID)
	if err != nil {
		return err
	}
	if !current.AnalysisCompleted {
		return ErrAnalysisNotCompleted
	}

	if err := o.Threads.CreateMessage(ctx, session.ThreadID, model.RoleUser, userText); err != nil {
		return err
	}
	o.Sessions.AppendMessage(session.SessionID, model.RoleUser, userText)

	run, err := o.Threads.CreateRun(ctx, session.ThreadID, o.AssistantID, followupRunInstructions)
	if err != nil {
		return err
	}

	messages, err := o.driveRun(ctx, session.ThreadID, run, current.JobPreferences, events)
	if err != nil {
		return err
	}

	o.reportMessages(ctx, session.SessionID, messages, events)
	return nil
}

// driveRun 轮询状态机。非终态继续轮询；requires_action 时
// 每个待处理调用恰好派发一次并一次性提交全部结果；completed 提取消息；
// 其他终态与轮询耗尽按 Run 失败处理
func (o *Orchestrator) driveRun(ctx context.Context, threadID string, run assistant.Run, preferences string, events Events) ([]assistant.ThreadMessage, error) {
	for polls := 0; ; polls++ {
		switch {
		case run.Status == assistant.StatusCompleted:
			return o.extractMessages(ctx, threadID, run.ID)

		case run.Status.Terminal():
			return nil, &RunFailedError{RunID: run.ID, Status: run.Status}

		case run.Status == assistant.StatusRequiresAction:
			if err := o.dispatchToolCalls(ctx, threadID, run, preferences, events); err != nil {
				return nil, err
			}
		}

		if polls >= o.MaxPolls {
			return nil, &RunFailedError{RunID: run.ID, Status: run.Status, PollsExhausted: true}
		}

		if err := o.Sleep(ctx, o.PollInterval); err != nil {
			return nil, err
		}

		var err error
		run, err = o.Threads.RetrieveRun(ctx, threadID, run.ID)
		if err != nil {
			return nil, err
		}
	}
}

// extractMessages 只认本次 Run 产生的助手消息，按线程顺序返回。
// 零条是异常而非静默成功
func (o *Orchestrator) extractMessages(ctx context.Context, threadID, runID string) ([]assistant.ThreadMessage, error) {
	all, err := o.Threads.ListRunMessages(ctx, threadID, runID)
	if err != nil {
		return nil, err
	}

	var messages []assistant.ThreadMessage
	for _, msg := range all {
		if msg.RunID == runID && msg.Role == model.RoleAssistant {
			messages = append(messages, msg)
		}
	}

	if len(messages) == 0 {
		return nil, ErrEmptyExtraction
	}
	return messages, nil
}

func (o *Orchestrator) reportMessages(ctx context.Context, sessionID string, messages []assistant.ThreadMessage, events Events) {
	for _, msg := range messages {
		o.Sessions.AppendMessage(sessionID, model.RoleAssistant, msg.Content)
		if events != nil {
			events.HandleAssistantMessage(ctx, msg.Content)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
