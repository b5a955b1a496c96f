package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// HistoryFallbackResponse 历史问答不可用时的固定兜底回复
const HistoryFallbackResponse = "I apologize, but I'm having trouble accessing MLB history right now. Please try again."

// historySystemPrompt 历史问答人设
const historySystemPrompt = `You are an MLB historian expert. Your role is to:
1. Use the provided MLB historical information to give accurate responses
2. Keep responses engaging and informative
3. Limit responses to exactly two sentences
4. Focus on MLB history, stats, and memorable moments
5. If information is not in the context, use your general knowledge`

// HistoryAnswer 单次历史问答：把赛程文档原文作为上下文拼进提示词
func (s *Service) HistoryAnswer(ctx context.Context, query string, docContext []byte) (string, error) {
	prompt := fmt.Sprintf(`MLB Historical Context:
%s

User Question: %s

Please provide a response using the above MLB historical information. Keep it to two sentences.`, docContext, query)

	resp, err := s.client.Models.GenerateContent(ctx, s.cfg.HistoryModel, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(historySystemPrompt, genai.RoleUser),
		MaxOutputTokens:   s.cfg.MaxOutputTokens,
		Temperature:       genai.Ptr[float32](0.9),
	})
	if err != nil {
		return "", fmt.Errorf("历史问答生成失败: %w", err)
	}
	return resp.Text(), nil
}
