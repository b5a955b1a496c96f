package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"PocketballSync/internal/config"
	"PocketballSync/internal/interfaces"
	"PocketballSync/internal/model"
	"PocketballSync/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Adapter MLB StatsAPI适配器（live feed + schedule）
type Adapter struct {
	cfg        *config.FeedConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewAdapter(cfg *config.FeedConfig, logger *logrus.Logger) interfaces.FeedSource {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.New(cfg.Timeout, cfg.Proxy, logger),
		logger:     logger,
	}
}

// FetchLiveFeed 拉取指定比赛的实时play-by-play feed，返回未校验的原始play序列
func (a *Adapter) FetchLiveFeed(ctx context.Context, gamePk string) ([]model.RawPlay, error) {
	feedURL := fmt.Sprintf("%s/api/v1.1/game/%s/feed/live", a.cfg.BaseURL, gamePk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("构造live feed请求失败: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("拉取live feed失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live feed接口返回异常状态码: %d", resp.StatusCode)
	}

	var doc model.RawLiveFeedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("解析live feed失败: %w", err)
	}

	a.logger.Infof("比赛%s拉取到%d条play", gamePk, len(doc.LiveData.Plays.AllPlays))
	return doc.LiveData.Plays.AllPlays, nil
}

// FetchSchedule 拉取指定日期的赛程/状态文档，date为空则取当天
func (a *Adapter) FetchSchedule(ctx context.Context, date string) (*model.ScheduleDocument, error) {
	scheduleURL := fmt.Sprintf("%s/api/v1/schedule?sportId=1", a.cfg.BaseURL)
	if date != "" {
		scheduleURL = fmt.Sprintf("%s&date=%s", scheduleURL, date)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scheduleURL, nil)
	if err != nil {
		return nil, fmt.Errorf("构造schedule请求失败: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("拉取schedule失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule接口返回异常状态码: %d", resp.StatusCode)
	}

	var doc model.ScheduleDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("解析schedule失败: %w", err)
	}

	return &doc, nil
}
