package chat

import (
	"errors"
	"fmt"

	"ratein-backend/service/assistant"
)

var (
	// ErrAnalysisNotCompleted 首轮分析尚未成功完成，不接受追问
	ErrAnalysisNotCompleted = errors.New("initial analysis has not completed")

	// ErrEmptyExtraction Run 已完成但没有提取到任何助手消息
	ErrEmptyExtraction = errors.New("run completed but produced no assistant messages")
)

// RunFailedError Run 到达了非成功的终态，或轮询预算耗尽。
// 与传输错误区分开：是分析引擎失败，而非连接失败
type RunFailedError struct {
	RunID  string
	Status assistant.RunStatus

	// 轮询次数耗尽时置位，此时 Status 为最后观察到的状态
	PollsExhausted bool
}

func (e *RunFailedError) Error() string {
	if e.PollsExhausted {
		return fmt.Sprintf("run %s did not reach a terminal status (last status %q)", e.RunID, e.Status)
	}
	return fmt.Sprintf("run %s ended with status %q", e.RunID, e.Status)
}

// ToolContractError 远端助手发来的工具调用违反约定：
// 参数不可解码或缺少必填字段。不可在本地恢复
type ToolContractError struct {
	ToolCallID string
	Function   string
	Reason     string
}

func (e *ToolContractError) Error() string {
	return fmt.Sprintf("tool call %s (%s) violates contract: %s", e.ToolCallID, e.Function, e.Reason)
}
