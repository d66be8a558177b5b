package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ratein-backend/config"
	"ratein-backend/model"
	"ratein-backend/utils"

	"github.com/avast/retry-go/v4"
)

const fetchAttempts = 3

// ErrProfileUnavailable 档案抓取或解析失败，调用方直接向用户反馈，不发起分析
var ErrProfileUnavailable = errors.New("failed to fetch profile data")

var httpClient *http.Client = utils.DefaultHTTPClient()

// Scrape 抓取公开档案并格式化为叙述文本。
// 瞬时网络错误在内部重试，重试耗尽后报 ErrProfileUnavailable
func Scrape(ctx context.Context, profileURL string) (model.ProfileContent, error) {
	username := extractUsername(profileURL)
	if username == "" {
		return model.ProfileContent{}, fmt.Errorf("%w: invalid profile url %q", ErrProfileUnavailable, profileURL)
	}

	data, err := retry.DoWithData(
		func() (profileData, error) {
			return fetchProfile(ctx, username)
		},
		retry.Attempts(fetchAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return model.ProfileContent{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	content := model.ProfileContent{
		FormattedText: formatProfile(data),
		ImageURL:      data.ProfilePicture,
	}
	return content, nil
}

func fetchProfile(ctx context.Context, username string) (profileData, error) {
	endpoint := url.URL{
		Scheme:   "https",
		Host:     config.Cfg.Profile.Host,
		Path:     "/",
		RawQuery: url.Values{"username": {username}}.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return profileData{}, err
	}
	req.Header.Set("X-RapidAPI-Key", config.Cfg.Profile.APIKey)
	req.Header.Set("X-RapidAPI-Host", config.Cfg.Profile.Host)

	resp, err := httpClient.Do(req)
	if err != nil {
		return profileData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return profileData{}, fmt.Errorf("profile api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return profileData{}, err
	}

	var data profileData
	if err := json.Unmarshal(body, &data); err != nil {
		return profileData{}, fmt.Errorf("failed to decode profile data: %v", err)
	}
	return data, nil
}

// extractUsername 从档案链接中截取用户名段，丢弃查询串和锚点
func extractUsername(profileURL string) string {
	trimmed := strings.TrimSpace(profileURL)
	if idx := strings.IndexAny(trimmed, "?#"); idx != -1 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.TrimRight(trimmed, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx == -1 {
		return trimmed
	}
	return strings.TrimSpace(trimmed[idx+1:])
}
