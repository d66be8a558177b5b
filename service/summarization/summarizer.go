package summarization

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"ratein-backend/config"
	"ratein-backend/store"
	"ratein-backend/utils"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	modelName    = "gpt-4-turbo-preview"
	taskChanSize = 100
	workerNum    = 4

	maxTitleLength = 60
)

//go:embed prompts/session_title.txt
var titlePrompt string

// TitleTask 一次会话标题生成任务，取首轮对话的两侧内容
type TitleTask struct {
	SessionID     string
	UserText      string
	AssistantText string
}

// Summarizer 异步生成会话标题
type Summarizer struct {
	llm       llms.Model
	sessions  *store.SessionStore
	taskChan  chan TitleTask
	workerNum int
}

// SummarizerInstance Summarizer 单例实例，Init 后可用
var SummarizerInstance *Summarizer

func Init() error {
	s, err := newSummarizer()
	if err != nil {
		return fmt.Errorf("failed to create summarizer: %v", err)
	}
	SummarizerInstance = s
	return nil
}

func newSummarizer() (*Summarizer, error) {
	httpClient := utils.DefaultHTTPClient()
	llm, err := openai.New(
		openai.WithModel(modelName),
		openai.WithToken(config.Cfg.Assistant.APIKey),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		llm:       llm,
		sessions:  store.Sessions,
		taskChan:  make(chan TitleTask, taskChanSize),
		workerNum: workerNum,
	}, nil
}

func (s *Summarizer) Run() {
	ctx := context.Background()
	for i := 1; i <= s.workerNum; i++ {
		go s.executeTitling(ctx, i)
	}
}

func (s *Summarizer) RegisterTitleTask(task TitleTask) {
	select {
	case s.taskChan <- task:
	default:
		slog.Warn("Title task queue full, dropping task", "session_id", task.SessionID)
	}
}

func (s *Summarizer) executeTitling(ctx context.Context, id int) {
	slog.Info("Starting title worker", "worker_id", id)
	defer slog.Info("Title worker exit", "worker_id", id)

	for task := range s.taskChan {
		title, err := s.generateTitle(ctx, task)
		if err != nil {
			slog.Error("Failed to generate session title",
				"session_id", task.SessionID,
				"err", err,
			)
			continue
		}

		if err := s.sessions.SetTitle(task.SessionID, title); err != nil {
			slog.Error("Failed to update session title",
				"session_id", task.SessionID,
				"err", err,
			)
		}
	}
}

func (s *Summarizer) generateTitle(ctx context.Context, task TitleTask) (string, error) {
	tmpl, err := template.New("prompt").Parse(titlePrompt)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt template: %v", err)
	}

	var buf bytes.Buffer
	data := struct {
		UserText      string
		AssistantText string
	}{
		UserText:      task.UserText,
		AssistantText: task.AssistantText,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %v", err)
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.llm, buf.String())
	if err != nil {
		return "", fmt.Errorf("llm call error: %w", err)
	}

	title := strings.TrimSpace(strings.Trim(strings.TrimSpace(resp), `"`))
	if title == "" {
		return "", fmt.Errorf("empty title generated")
	}
	return truncateTitle(title), nil
}

// truncateTitle 按字符截断，避免在多字节字符中间切开
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLength {
		return title
	}
	return string(runes[:maxTitleLength])
}
