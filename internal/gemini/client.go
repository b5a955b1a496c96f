package gemini

import (
	"context"
	"fmt"

	"PocketballSync/internal/config"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Service Gemini对话能力的统一入口（会话式对话 + 单次历史问答）
type Service struct {
	client *genai.Client
	cfg    *config.GeminiConfig
	logger *logrus.Logger
}

// NewService 创建Gemini服务
func NewService(ctx context.Context, cfg *config.GeminiConfig, logger *logrus.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("缺少Gemini API密钥（GEMINI_API_KEY）")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Gemini客户端失败: %w", err)
	}

	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}
