package assistant

import (
	"context"
	"fmt"
	"time"

	"ratein-backend/config"
	"ratein-backend/utils"

	openai "github.com/sashabaranov/go-openai"
)

// Client 封装助手服务的线程接口：建线程、追加消息、建 Run、
// 查 Run 状态、提交工具结果、按 Run 拉取消息
type Client struct {
	api *openai.Client
}

func NewClient() *Client {
	cfg := openai.DefaultConfig(config.Cfg.Assistant.APIKey)
	if config.Cfg.Assistant.BaseURL != "" {
		cfg.BaseURL = config.Cfg.Assistant.BaseURL
	}
	cfg.HTTPClient = utils.NewHTTPClient(
		utils.WithTimeout(120 * time.Second),
	)
	return &Client{
		api: openai.NewClientWithConfig(cfg),
	}
}

func (c *Client) CreateThread(ctx context.Context) (string, error) {
	thread, err := c.api.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		return "", fmt.Errorf("failed to create thread: %w", err)
	}
	return thread.ID, nil
}

func (c *Client) CreateMessage(ctx context.Context, threadID, role, content string) error {
	_, err := c.api.CreateMessage(ctx, threadID, openai.MessageRequest{
		Role:    role,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (c *Client) CreateRun(ctx context.Context, threadID, assistantID, instructions string) (Run, error) {
	run, err := c.api.CreateRun(ctx, threadID, openai.RunRequest{
		AssistantID:  assistantID,
		Instructions: instructions,
	})
	if err != nil {
		return Run{}, fmt.Errorf("failed to create run: %w", err)
	}
	return toRun(run), nil
}

func (c *Client) RetrieveRun(ctx context.Context, threadID, runID string) (Run, error) {
	run, err := c.api.RetrieveRun(ctx, threadID, runID)
	if err != nil {
		return Run{}, fmt.Errorf("failed to retrieve run: %w", err)
	}
	return toRun(run), nil
}

func (c *Client) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) error {
	toolOutputs := make([]openai.ToolOutput, 0, len(outputs))
	for _, out := range outputs {
		toolOutputs = append(toolOutputs, openai.ToolOutput{
			ToolCallID: out.ToolCallID,
			Output:     out.Output,
		})
	}

	_, err := c.api.SubmitToolOutputs(ctx, threadID, runID, openai.SubmitToolOutputsRequest{
		ToolOutputs: toolOutputs,
	})
	if err != nil {
		return fmt.Errorf("failed to submit tool outputs: %w", err)
	}
	return nil
}

// ListRunMessages 按线程顺序返回指定 Run 产生的消息
func (c *Client) ListRunMessages(ctx context.Context, threadID, runID string) ([]ThreadMessage, error) {
	order := "asc"
	list, err := c.api.ListMessage(ctx, threadID, nil, &order, nil, nil, &runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	var messages []ThreadMessage
	for _, msg := range list.Messages {
		// 服务端已按 run_id 过滤，此处兜底
		if msg.RunID == nil || *msg.RunID != runID {
			continue
		}

		var content string
		for _, part := range msg.Content {
			if part.Text != nil {
				content += part.Text.Value
			}
		}

		messages = append(messages, ThreadMessage{
			ID:      msg.ID,
			RunID:   *msg.RunID,
			Role:    msg.Role,
			Content: content,
		})
	}

	return messages, nil
}

func toRun(run openai.Run) Run {
	r := Run{
		ID:       run.ID,
		ThreadID: run.ThreadID,
		Status:   RunStatus(run.Status),
	}

	if run.RequiredAction != nil &&
		run.RequiredAction.Type == openai.RequiredActionTypeSubmitToolOutputs &&
		run.RequiredAction.SubmitToolOutputs != nil {
		for _, call := range run.RequiredAction.SubmitToolOutputs.ToolCalls {
			r.PendingToolCalls = append(r.PendingToolCalls, ToolCall{
				ID:        call.ID,
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			})
		}
	}

	return r
}
