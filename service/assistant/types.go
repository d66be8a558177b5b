package assistant

// RunStatus 远端 Run 的状态，取值与助手服务的状态枚举一致
type RunStatus string

const (
	StatusQueued         RunStatus = "queued"
	StatusInProgress     RunStatus = "in_progress"
	StatusRequiresAction RunStatus = "requires_action"
	StatusCompleted      RunStatus = "completed"
	StatusFailed         RunStatus = "failed"
	StatusCancelling     RunStatus = "cancelling"
	StatusCancelled      RunStatus = "cancelled"
	StatusExpired        RunStatus = "expired"
	StatusIncomplete     RunStatus = "incomplete"
)

// Terminal Run 是否已到达终态
func (s RunStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled, StatusExpired, StatusIncomplete:
		return true
	}
	return false
}

// Run 助手服务对线程的一次执行。状态只由远端推进，本地只读
type Run struct {
	ID       string
	ThreadID string
	Status   RunStatus

	// requires_action 状态下待处理的工具调用
	PendingToolCalls []ToolCall
}

// ToolCall 远端助手请求本地执行的一次函数调用
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolOutput 工具调用的执行结果，每个调用ID恰好提交一次
type ToolOutput struct {
	ToolCallID string
	Output     string
}

// ThreadMessage 线程上的一条消息
type ThreadMessage struct {
	ID      string
	RunID   string
	Role    string
	Content string
}
