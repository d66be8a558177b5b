package model

// ProfileContent 抓取并格式化后的档案内容，仅在一次分析请求内存活
type ProfileContent struct {
	FormattedText string `json:"formatted_text"`
	ImageURL      string `json:"image_url"`
}

// Valid 两个字段都非空才允许发起分析
func (p ProfileContent) Valid() bool {
	return p.FormattedText != "" && p.ImageURL != ""
}
