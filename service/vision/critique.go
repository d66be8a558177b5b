package vision

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ratein-backend/config"
	"ratein-backend/utils"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

var visionHTTPClient *http.Client = utils.NewHTTPClient(
	utils.WithTimeout(120 * time.Second),
)

// Client 调用视觉模型对档案头像生成文字点评
type Client struct {
	llm       llms.Model
	maxTokens int
}

func NewClient() (*Client, error) {
	llm, err := openai.New(
		openai.WithModel(config.Cfg.Vision.Model),
		openai.WithToken(config.Cfg.Assistant.APIKey),
		openai.WithHTTPClient(visionHTTPClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision llm client: %v", err)
	}

	return &Client{
		llm:       llm,
		maxTokens: config.Cfg.Vision.MaxTokens,
	}, nil
}

// Critique 将提示词与图片一起送入视觉模型，返回点评文本
func (c *Client) Critique(ctx context.Context, imageURL, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
				llms.ImageURLPart(imageURL),
			},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, content, llms.WithMaxTokens(c.maxTokens))
	if err != nil {
		return "", fmt.Errorf("vision model call error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision model returned no choices")
	}

	return resp.Choices[0].Content, nil
}
