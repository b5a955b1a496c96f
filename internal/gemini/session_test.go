package gemini

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"PocketballSync/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testService(cfg *config.GeminiConfig) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Service{cfg: cfg, logger: logger}
}

// fakeSender 可编程的对话假实现
type fakeSender struct {
	calls    int
	failures int // 前failures次调用失败
	reply    string
}

func (f *fakeSender) Send(ctx context.Context, text string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("boom")
	}
	return f.reply, nil
}

func TestRespondRetryExhaustion(t *testing.T) {
	svc := testService(&config.GeminiConfig{MaxRetries: 3, AttemptTimeout: time.Second})
	sender := &fakeSender{failures: 100}

	got := svc.Respond(context.Background(), sender, "what's the score", 3)

	// 恰好3次尝试，最终拿到兜底文案而非错误
	assert.Equal(t, 3, sender.calls)
	assert.Equal(t, FallbackResponse, got)
}

func TestRespondFirstAttemptSucceeds(t *testing.T) {
	svc := testService(&config.GeminiConfig{MaxRetries: 3})
	sender := &fakeSender{reply: "The Mets lead 4-2!"}

	got := svc.Respond(context.Background(), sender, "score?", 3)

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "The Mets lead 4-2!", got)
}

func TestRespondRecoversAfterFailures(t *testing.T) {
	svc := testService(&config.GeminiConfig{MaxRetries: 3})
	sender := &fakeSender{failures: 2, reply: "Soto just homered!"}

	got := svc.Respond(context.Background(), sender, "what happened", 3)

	assert.Equal(t, 3, sender.calls)
	assert.Equal(t, "Soto just homered!", got)
}

func TestRespondDefaultAttemptsFromConfig(t *testing.T) {
	svc := testService(&config.GeminiConfig{MaxRetries: 2})
	sender := &fakeSender{failures: 100}

	got := svc.Respond(context.Background(), sender, "hi", 0)

	assert.Equal(t, 2, sender.calls)
	assert.Equal(t, FallbackResponse, got)
}

func TestRespondNilSession(t *testing.T) {
	svc := testService(&config.GeminiConfig{MaxRetries: 3})

	got := svc.Respond(context.Background(), nil, "hi", 3)

	assert.Equal(t, FallbackResponse, got)
}
