package interfaces

import (
	"context"

	"PocketballSync/internal/model"
)

// ConversationSender 对话能力边界（一次发送一条消息，返回文本回复）
// 生产实现为Gemini会话，测试中用假实现替换
type ConversationSender interface {
	Send(ctx context.Context, text string) (string, error)
}

// SpeechRecognizer 语音识别能力边界（原始音频→文本）
type SpeechRecognizer interface {
	Recognize(ctx context.Context, audio []byte) (string, error)
}

// SpeechSynthesizer 语音合成能力边界（文本→原始音频）
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// FeedSource live feed拉取能力边界，测试中可替换为本地fixture
type FeedSource interface {
	FetchLiveFeed(ctx context.Context, gamePk string) ([]model.RawPlay, error)
	FetchSchedule(ctx context.Context, date string) (*model.ScheduleDocument, error)
}
