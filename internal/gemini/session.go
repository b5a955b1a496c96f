package gemini

import (
	"context"

	"PocketballSync/internal/interfaces"

	"google.golang.org/genai"
)

// FallbackResponse 对话能力不可用时的固定兜底回复（调用方永远拿不到硬错误）
const FallbackResponse = "I apologize, but I'm having trouble responding right now. Please try again."

// chatSystemPrompt 语音对话人设
const chatSystemPrompt = `You are a friendly baseball expert. Your name is Pocketball. Your role is to:
1. Always respond about baseball and Major League Baseball topics only
2. Keep responses fun and engaging
3. Limit responses to exactly two sentences
4. Never break character as an MLB expert
5. If asked about non-baseball topics, politely redirect to baseball

If user asks: Hey PocketBall, what's the score of the Yankees vs. Dogers last game?
answer: The Dogers won 7-6 against the Yankees, with Mookie Betts hitting a game-winning homer in the 8th!`

// Session 一条多轮对话（显式对象，按会话传递，不用进程级单例）
type Session struct {
	chat *genai.Chat
}

// NewSession 创建新的对话会话
func (s *Service) NewSession(ctx context.Context) (*Session, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemPrompt, genai.RoleUser),
		MaxOutputTokens:   s.cfg.MaxOutputTokens,
		Temperature:       genai.Ptr[float32](1),
		TopP:              genai.Ptr[float32](0.95),
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdOff},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdOff},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdOff},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdOff},
		},
	}

	chat, err := s.client.Chats.Create(ctx, s.cfg.ChatModel, cfg, nil)
	if err != nil {
		return nil, err
	}
	return &Session{chat: chat}, nil
}

// Send 发送一条消息并返回文本回复
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Respond 带重试的对话调用：逐次尝试（失败立即重试，不加退避），
// 每次尝试受attempt_timeout约束；全部失败则返回固定兜底文案而非错误
// maxAttempts<=0时取配置默认值
func (s *Service) Respond(ctx context.Context, sender interfaces.ConversationSender, utterance string, maxAttempts int) string {
	if sender == nil {
		s.logger.Error("对话会话未初始化，返回兜底回复")
		return FallbackResponse
	}
	if maxAttempts <= 0 {
		maxAttempts = s.cfg.MaxRetries
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attemptCtx := ctx
		cancel := func() {}
		if s.cfg.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		}
		text, err := sender.Send(attemptCtx, utterance)
		cancel()
		if err == nil {
			return text
		}
		s.logger.Errorf("Gemini第%d次调用失败: %v", attempt, err)
	}
	return FallbackResponse
}
