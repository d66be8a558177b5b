package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"ratein-backend/service/assistant"
)

const toolAnalyzeProfilePicture = "analyze_profile_picture"

// toolKind 已知工具的枚举，未知函数名走显式的 unknown 分支
type toolKind int

const (
	toolKindUnknown toolKind = iota
	toolKindAnalyzeProfilePicture
)

func toolKindOf(name string) toolKind {
	switch name {
	case toolAnalyzeProfilePicture:
		return toolKindAnalyzeProfilePicture
	}
	return toolKindUnknown
}

type pictureArgs struct {
	ImageURL string `json:"image_url"`
}

// dispatchToolCalls 对 requires_action 状态的 Run 逐个处理待处理调用，
// 结果一次性提交。没有待处理调用时为空操作。
// 已识别调用的参数不合法视为远端违约，整个派发失败；
// 未识别的函数名提交占位输出并记录，避免 Run 永远停在 requires_action
func (o *Orchestrator) dispatchToolCalls(ctx context.Context, threadID string, run assistant.Run, preferences string, events Events) error {
	if len(run.PendingToolCalls) == 0 {
		return nil
	}

	outputs := make([]assistant.ToolOutput, 0, len(run.PendingToolCalls))
	for _, call := range run.PendingToolCalls {
		switch toolKindOf(call.Name) {
		case toolKindAnalyzeProfilePicture:
			var args pictureArgs
			if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
				return &ToolContractError{
					ToolCallID: call.ID,
					Function:   call.Name,
					Reason:     fmt.Sprintf("failed to decode arguments: %v", err),
				}
			}
			if args.ImageURL == "" {
				return &ToolContractError{
					ToolCallID: call.ID,
					Function:   call.Name,
					Reason:     "missing required field image_url",
				}
			}

			slog.Info("Analyzing profile picture", "image_url", args.ImageURL)

			critique, err := o.Vision.Critique(ctx, args.ImageURL, BuildVisionPrompt(preferences))
			if err != nil {
				return err
			}

			if events != nil {
				events.HandleToolResult(ctx, critique)
			}
			outputs = append(outputs, assistant.ToolOutput{
				ToolCallID: call.ID,
				Output:     critique,
			})

		case toolKindUnknown:
			slog.Error("Unsupported tool function requested", "function", call.Name, "tool_call_id", call.ID)
			outputs = append(outputs, assistant.ToolOutput{
				ToolCallID: call.ID,
				Output:     fmt.Sprintf("error: unsupported function %q", call.Name),
			})
		}
	}

	return o.Threads.SubmitToolOutputs(ctx, threadID, run.ID, outputs)
}
