package chat

import (
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed prompts/analysis_instructions.txt
	analysisInstructions string

	//go:embed prompts/vision_prompt.txt
	visionPrompt string
)

const (
	// Run 级指令，随 Run 创建传给助手服务
	analysisRunInstructions = "Address me directly and use first person for a personal touch. Be helpful and approachable."
	followupRunInstructions = "Be helpful and approachable."
)

// BuildAnalysisRequest 拼装首轮分析请求。
// 固定指令模板在前，档案文本与头像链接居中，偏好子句（若有）收尾
func BuildAnalysisRequest(profileText, imageURL, preferences string) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(analysisInstructions))
	fmt.Fprintf(&b, "\n\n**HERE IS THE CONTENT FOR ANALYSIS**:\n- **Profile Text**: %s\n- **Profile Image URL**: %s",
		profileText, imageURL)

	if preferences != "" {
		fmt.Fprintf(&b, "\n\n**ADDITIONAL** - If relevant, please incorporate the following context about the job preferences of the user to tailor the recommendations: %s",
			preferences)
	}

	return b.String()
}

// BuildVisionPrompt 拼装头像点评提示词，偏好子句（若有）原样追加
func BuildVisionPrompt(preferences string) string {
	prompt := strings.TrimSpace(visionPrompt)
	if preferences != "" {
		prompt += fmt.Sprintf("\n\n**ADDITIONAL** - If relevant for your analysis, please consider the following context about the user's job preferences: %s",
			preferences)
	}
	return prompt
}
