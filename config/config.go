package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

// Cfg 全局配置实例
var Cfg *Config

// Duration 支持 "1s" 这类写法的时长配置
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %v", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Assistant AssistantConfig `yaml:"assistant"`
	Vision    VisionConfig    `yaml:"vision"`
	Profile   ProfileConfig   `yaml:"profile"`
	JWT       JWTConfig       `yaml:"jwt"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// AssistantConfig 远程助手服务（OpenAI Assistants API）配置
type AssistantConfig struct {
	APIKey      string `yaml:"api_key"`
	AssistantID string `yaml:"assistant_id"`
	BaseURL     string `yaml:"base_url"`

	// 轮询 Run 状态的间隔与次数上限
	PollInterval Duration `yaml:"poll_interval"`
	MaxPolls     int      `yaml:"max_polls"`
}

type VisionConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// ProfileConfig 档案抓取服务（RapidAPI）配置
type ProfileConfig struct {
	APIKey string `yaml:"api_key"`
	Host   string `yaml:"host"`
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
}

func Init() error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file %s: %v", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %v", path, err)
	}

	// 密钥类配置优先使用环境变量
	applyEnvOverrides(cfg)

	if cfg.Assistant.APIKey == "" {
		return fmt.Errorf("assistant api key is required (OPENAI_API_KEY)")
	}
	if cfg.Assistant.AssistantID == "" {
		return fmt.Errorf("assistant id is required (ASSISTANT_ID)")
	}
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt secret key is required (JWT_SECRET_KEY)")
	}

	Cfg = cfg
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Assistant: AssistantConfig{
			PollInterval: Duration(time.Second),
			MaxPolls:     300,
		},
		Vision: VisionConfig{
			Model:     "gpt-4-vision-preview",
			MaxTokens: 400,
		},
		Profile: ProfileConfig{
			Host: "linkedin-data-api.p.rapidapi.com",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Assistant.APIKey = v
	}
	if v := os.Getenv("ASSISTANT_ID"); v != "" {
		cfg.Assistant.AssistantID = v
	}
	if v := os.Getenv("RAPIDAPI_KEY"); v != "" {
		cfg.Profile.APIKey = v
	}
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		cfg.JWT.SecretKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
}
