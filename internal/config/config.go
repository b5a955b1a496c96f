package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`   // 服务器配置
	Postgres PostgresConfig `mapstructure:"postgres"` // PostgreSQL配置
	Feed     FeedConfig     `mapstructure:"feed"`     // MLB StatsAPI配置
	Gemini   GeminiConfig   `mapstructure:"gemini"`   // Gemini对话配置
	Speech   SpeechConfig   `mapstructure:"speech"`   // 语音识别/合成配置
	Paths    PathsConfig    `mapstructure:"paths"`    // 本地文件路径配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 服务端口
	Mode string `mapstructure:"mode"` // Gin运行模式：debug/release/test
}

// PostgresConfig PostgreSQL数据库配置
type PostgresConfig struct {
	DSN             string        `mapstructure:"dsn"`               // 连接DSN
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

// FeedConfig MLB StatsAPI配置
type FeedConfig struct {
	BaseURL string `mapstructure:"base_url"` // API基础地址（https://statsapi.mlb.com）
	Timeout int    `mapstructure:"timeout"`  // 请求超时（秒）
	Proxy   string `mapstructure:"proxy"`    // 代理地址
}

// GeminiConfig Gemini对话配置
type GeminiConfig struct {
	APIKey          string        `mapstructure:"api_key"`           // API密钥（建议通过.env注入）
	ChatModel       string        `mapstructure:"chat_model"`        // 语音对话用模型
	HistoryModel    string        `mapstructure:"history_model"`     // 历史问答用模型
	MaxOutputTokens int32         `mapstructure:"max_output_tokens"` // 最大输出token数
	MaxRetries      int           `mapstructure:"max_retries"`       // 单次对话最大尝试次数
	AttemptTimeout  time.Duration `mapstructure:"attempt_timeout"`   // 单次尝试超时（缺省30s）
}

// SpeechConfig 语音识别/合成配置
type SpeechConfig struct {
	APIKey          string `mapstructure:"api_key"`           // Google Cloud API密钥
	RecognizeURL    string `mapstructure:"recognize_url"`     // speech:recognize接口地址
	SynthesizeURL   string `mapstructure:"synthesize_url"`    // text:synthesize接口地址
	LanguageCode    string `mapstructure:"language_code"`     // 识别/合成语言（en-US）
	SampleRateHertz int    `mapstructure:"sample_rate_hertz"` // 输入音频采样率
	VoiceName       string `mapstructure:"voice_name"`        // 合成用音色名称
	Timeout         int    `mapstructure:"timeout"`           // 请求超时（秒）
	Proxy           string `mapstructure:"proxy"`             // 代理地址
}

// PathsConfig 本地文件路径配置
type PathsConfig struct {
	SnapshotFile string `mapstructure:"snapshot_file"` // play快照文件（liveData.json）
	ScheduleFile string `mapstructure:"schedule_file"` // 赛程文档（info.json）
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	// 2. 读取 config.yaml
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("SPEECH_API_KEY"); v != "" {
		cfg.Speech.APIKey = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
}

// applyDefaults 补齐关键字段的默认值，保证缺省配置也能跑通
func applyDefaults(cfg *Config) {
	if cfg.Feed.BaseURL == "" {
		cfg.Feed.BaseURL = "https://statsapi.mlb.com"
	}
	if cfg.Feed.Timeout <= 0 {
		cfg.Feed.Timeout = 15
	}
	if cfg.Gemini.ChatModel == "" {
		cfg.Gemini.ChatModel = "gemini-1.5-flash-002"
	}
	if cfg.Gemini.HistoryModel == "" {
		cfg.Gemini.HistoryModel = "gemini-1.5-pro"
	}
	if cfg.Gemini.MaxOutputTokens <= 0 {
		cfg.Gemini.MaxOutputTokens = 1054
	}
	if cfg.Gemini.MaxRetries <= 0 {
		cfg.Gemini.MaxRetries = 3
	}
	if cfg.Gemini.AttemptTimeout <= 0 {
		cfg.Gemini.AttemptTimeout = 30 * time.Second
	}
	if cfg.Speech.RecognizeURL == "" {
		cfg.Speech.RecognizeURL = "https://speech.googleapis.com/v1/speech:recognize"
	}
	if cfg.Speech.SynthesizeURL == "" {
		cfg.Speech.SynthesizeURL = "https://texttospeech.googleapis.com/v1/text:synthesize"
	}
	if cfg.Speech.LanguageCode == "" {
		cfg.Speech.LanguageCode = "en-US"
	}
	if cfg.Speech.SampleRateHertz <= 0 {
		cfg.Speech.SampleRateHertz = 44100
	}
	if cfg.Speech.VoiceName == "" {
		cfg.Speech.VoiceName = "en-US-Casual-K"
	}
	if cfg.Speech.Timeout <= 0 {
		cfg.Speech.Timeout = 20
	}
	if cfg.Paths.SnapshotFile == "" {
		cfg.Paths.SnapshotFile = "liveData.json"
	}
	if cfg.Paths.ScheduleFile == "" {
		cfg.Paths.ScheduleFile = "info.json"
	}
}
