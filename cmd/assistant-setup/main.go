// 一次性初始化：上传知识库文件并创建带头像分析函数的助手。
// 输出的助手ID填入配置后服务即可使用。
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ratein-backend/config"

	openai "github.com/sashabaranov/go-openai"
)

const (
	assistantName  = "LinkedIn Profile Analyzer"
	assistantModel = "gpt-4-turbo-preview"

	assistantInstructions = "You are an expert in LinkedIn profile optimization, tasked with providing a comprehensive analysis " +
		"of a user's LinkedIn profile, analyze it thoroughly. Be helpful, " +
		"and maintain a casual, approachable yet professional tone. Remember to address the user directly and use the first person.\n" +
		"- analyze_profile_picture, when the image url of the profile is given."

	functionDescription = "Analyze this LinkedIn profile picture provided through the image URL. Examine its appropriateness " +
		"for a professional LinkedIn profile by focusing on the presentation, expression and body language, composition and " +
		"setting (including background), and the quality of the image. Ensure your analysis determines whether these aspects " +
		"meet professional standards and offer specific recommendations for any needed improvements to enhance the profile's " +
		"professional image. Overall, describe the image in detail."
)

func main() {
	knowledgeDir := flag.String("knowledge", "knowledge", "directory with knowledge PDF files")
	flag.Parse()

	if err := config.Init(); err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := openai.NewClient(config.Cfg.Assistant.APIKey)

	fileIDs, err := uploadKnowledgeFiles(ctx, client, *knowledgeDir)
	if err != nil {
		slog.Error("Failed to upload knowledge files", "err", err)
		os.Exit(1)
	}

	assistant, err := createAssistant(ctx, client, fileIDs)
	if err != nil {
		slog.Error("Failed to create assistant", "err", err)
		os.Exit(1)
	}

	slog.Info("Assistant created", "assistant_id", assistant.ID, "files", len(fileIDs))
}

func uploadKnowledgeFiles(ctx context.Context, client *openai.Client, dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, err
	}

	var fileIDs []string
	for _, path := range paths {
		file, err := client.CreateFile(ctx, openai.FileRequest{
			FileName: filepath.Base(path),
			FilePath: path,
			Purpose:  "assistants",
		})
		if err != nil {
			return nil, err
		}
		slog.Info("Uploaded knowledge file", "file", path, "file_id", file.ID)
		fileIDs = append(fileIDs, file.ID)
	}

	return fileIDs, nil
}

func createAssistant(ctx context.Context, client *openai.Client, fileIDs []string) (openai.Assistant, error) {
	name := assistantName
	instructions := assistantInstructions

	return client.CreateAssistant(ctx, openai.AssistantRequest{
		Model:        assistantModel,
		Name:         &name,
		Instructions: &instructions,
		FileIDs:      fileIDs,
		Tools: []openai.AssistantTool{
			{
				Type: openai.AssistantToolTypeRetrieval,
			},
			{
				Type: openai.AssistantToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        "analyze_profile_picture",
					Description: functionDescription,
					Parameters: map[string]any{
						"type": "object",
						"properties": map[string]any{
							"image_url": map[string]any{
								"type":        "string",
								"description": "URL of the profile picture",
							},
						},
						"required": []string{"image_url"},
					},
				},
			},
		},
	})
}
