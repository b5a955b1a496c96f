package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"PocketballSync/internal/config"
	"PocketballSync/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Client Google Cloud语音识别/合成的REST客户端（API Key鉴权）
type Client struct {
	cfg        *config.SpeechConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.SpeechConfig, logger *logrus.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpclient.New(cfg.Timeout, cfg.Proxy, logger),
		logger:     logger,
	}
}

// recognizeRequest speech:recognize请求体
type recognizeRequest struct {
	Config recognizeConfig `json:"config"`
	Audio  recognizeAudio  `json:"audio"`
}

type recognizeConfig struct {
	Encoding                   string `json:"encoding"`
	SampleRateHertz            int    `json:"sampleRateHertz"`
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation bool   `json:"enableAutomaticPunctuation"`
}

type recognizeAudio struct {
	Content string `json:"content"` // base64编码的音频
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
}

// Recognize 识别LINEAR16音频并返回拼接后的转写文本（无可识别内容返回空串）
func (c *Client) Recognize(ctx context.Context, audio []byte) (string, error) {
	reqBody := recognizeRequest{
		Config: recognizeConfig{
			Encoding:                   "LINEAR16",
			SampleRateHertz:            c.cfg.SampleRateHertz,
			LanguageCode:               c.cfg.LanguageCode,
			EnableAutomaticPunctuation: true,
		},
		Audio: recognizeAudio{Content: base64.StdEncoding.EncodeToString(audio)},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("序列化识别请求失败: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.cfg.RecognizeURL, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("构造识别请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("语音识别调用失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("语音识别接口返回异常状态码: %d", resp.StatusCode)
	}

	var result recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("解析识别响应失败: %w", err)
	}

	// 多段结果取每段的首选转写并拼接
	transcription := ""
	for _, r := range result.Results {
		if len(r.Alternatives) == 0 {
			continue
		}
		transcription += r.Alternatives[0].Transcript
		c.logger.Infof("转写片段: %s（置信度%.2f）", r.Alternatives[0].Transcript, r.Alternatives[0].Confidence)
	}
	return transcription, nil
}
