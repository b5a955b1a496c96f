package api

import (
	"encoding/base64"
	"io"
	"net/http"

	"PocketballSync/internal/gemini"
	"PocketballSync/internal/interfaces"
	"PocketballSync/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ChatHandler 语音对话与历史问答接口
type ChatHandler struct {
	geminiService *gemini.Service
	session       interfaces.ConversationSender // transcribe流程共用的会话（启动失败时为nil，走兜底）
	recognizer    interfaces.SpeechRecognizer
	synthesizer   interfaces.SpeechSynthesizer
	scheduleRepo  *repository.ScheduleRepository
	logger        *logrus.Logger
}

func NewChatHandler(
	geminiService *gemini.Service,
	session interfaces.ConversationSender,
	recognizer interfaces.SpeechRecognizer,
	synthesizer interfaces.SpeechSynthesizer,
	scheduleRepo *repository.ScheduleRepository,
	logger *logrus.Logger,
) *ChatHandler {
	return &ChatHandler{
		geminiService: geminiService,
		session:       session,
		recognizer:    recognizer,
		synthesizer:   synthesizer,
		scheduleRepo:  scheduleRepo,
		logger:        logger,
	}
}

// Transcribe 音频→转写→对话回复→合成音频
// POST /transcribe/（multipart字段名file）
func (h *ChatHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少音频文件file"})
		return
	}
	h.logger.Infof("收到音频文件: %s", fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.logger.Infof("音频大小: %d字节", len(content))

	// 1. 语音识别
	transcription, err := h.recognizer.Recognize(c.Request.Context(), content)
	if err != nil {
		h.logger.WithError(err).Error("语音识别失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if transcription == "" {
		c.JSON(http.StatusOK, gin.H{"text": ""})
		return
	}
	h.logger.Infof("用户说: %s", transcription)

	// 2. 对话回复（带重试，失败返回兜底文案，绝不抛硬错误）
	reply := h.geminiService.Respond(c.Request.Context(), h.session, transcription, 0)
	h.logger.Infof("Gemini回复: %s", reply)

	// 3. 语音合成
	audio, err := h.synthesizer.Synthesize(c.Request.Context(), reply)
	if err != nil {
		h.logger.WithError(err).Error("语音合成失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":            transcription,
		"gemini_response": reply,
		"audio_content":   base64.StdEncoding.EncodeToString(audio),
	})
}

// History 历史问答：赛程文档原文作为上下文的单次生成
// 任何失败都降级为固定文案
// POST /mlb_history/（请求体{"query": "..."}）
func (h *ChatHandler) History(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("历史问答请求体解析失败")
		c.JSON(http.StatusOK, gin.H{"response": gemini.HistoryFallbackResponse})
		return
	}

	docRaw, err := h.scheduleRepo.ReadRaw()
	if err != nil {
		h.logger.WithError(err).Error("读取历史上下文失败")
		c.JSON(http.StatusOK, gin.H{"response": gemini.HistoryFallbackResponse})
		return
	}

	answer, err := h.geminiService.HistoryAnswer(c.Request.Context(), req.Query, docRaw)
	if err != nil {
		h.logger.WithError(err).Error("历史问答生成失败")
		c.JSON(http.StatusOK, gin.H{"response": gemini.HistoryFallbackResponse})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}
