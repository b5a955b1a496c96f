package service

import (
	"fmt"

	"PocketballSync/internal/model"
)

// MalformedFeedError 原始feed缺必填字段（定位到play序号和字段路径）
type MalformedFeedError struct {
	PlayIndex int
	FieldPath string
}

func (e *MalformedFeedError) Error() string {
	return fmt.Sprintf("第%d条play缺少必填字段: %s", e.PlayIndex, e.FieldPath)
}

// Normalize 将原始feed记录批量归一化为canonical Play，输出顺序与输入一致
// 任一play缺必填字段则整批失败（下游默认记录形状完整，不做best-effort）
// 纯转换，无副作用
func Normalize(raw []model.RawPlay) ([]model.Play, error) {
	plays := make([]model.Play, 0, len(raw))
	for i, rp := range raw {
		play, err := normalizePlay(i, rp)
		if err != nil {
			return nil, err
		}
		plays = append(plays, play)
	}
	return plays, nil
}

// fieldReader 必填字段读取器，记录首个缺失字段的路径
type fieldReader struct {
	missing string
}

func read[T any](r *fieldReader, v *T, path string) T {
	if v == nil {
		if r.missing == "" {
			r.missing = path
		}
		var zero T
		return zero
	}
	return *v
}

func normalizePlay(idx int, rp model.RawPlay) (model.Play, error) {
	// result/about/count三个必填块缺一不可
	switch {
	case rp.Result == nil:
		return model.Play{}, &MalformedFeedError{PlayIndex: idx, FieldPath: "result"}
	case rp.About == nil:
		return model.Play{}, &MalformedFeedError{PlayIndex: idx, FieldPath: "about"}
	case rp.Count == nil:
		return model.Play{}, &MalformedFeedError{PlayIndex: idx, FieldPath: "count"}
	}

	r := &fieldReader{}
	play := model.Play{
		Result: model.PlayResult{
			Type:        read(r, rp.Result.Type, "result.type"),
			Event:       read(r, rp.Result.Event, "result.event"),
			EventType:   read(r, rp.Result.EventType, "result.eventType"),
			Description: read(r, rp.Result.Description, "result.description"),
			RBI:         read(r, rp.Result.RBI, "result.rbi"),
			AwayScore:   read(r, rp.Result.AwayScore, "result.awayScore"),
			HomeScore:   read(r, rp.Result.HomeScore, "result.homeScore"),
			IsOut:       read(r, rp.Result.IsOut, "result.isOut"),
		},
		About: model.PlayAbout{
			AtBatIndex:    read(r, rp.About.AtBatIndex, "about.atBatIndex"),
			HalfInning:    read(r, rp.About.HalfInning, "about.halfInning"),
			IsTopInning:   read(r, rp.About.IsTopInning, "about.isTopInning"),
			Inning:        read(r, rp.About.Inning, "about.inning"),
			StartTime:     read(r, rp.About.StartTime, "about.startTime"),
			EndTime:       rp.About.EndTime, // 真可选，缺失保留为null
			IsComplete:    read(r, rp.About.IsComplete, "about.isComplete"),
			IsScoringPlay: read(r, rp.About.IsScoringPlay, "about.isScoringPlay"),
		},
		Count: model.PlayCount{
			Balls:   read(r, rp.Count.Balls, "count.balls"),
			Strikes: read(r, rp.Count.Strikes, "count.strikes"),
			Outs:    read(r, rp.Count.Outs, "count.outs"),
		},
		Runners: normalizeRunners(rp.Runners),
		// 索引序列缺失时安全兜底为空序列（区别于三态布尔，不存在语义损失）
		PitchIndex:  emptyIfNil(rp.PitchIndex),
		ActionIndex: emptyIfNil(rp.ActionIndex),
	}

	if r.missing != "" {
		return model.Play{}, &MalformedFeedError{PlayIndex: idx, FieldPath: r.missing}
	}
	return play, nil
}

// normalizeRunners 跑垒记录按原始顺序保留，可选字段保持指针语义不动
func normalizeRunners(runners []model.Runner) []model.Runner {
	out := make([]model.Runner, 0, len(runners))
	for _, rn := range runners {
		if rn.Credits == nil {
			rn.Credits = []model.Credit{}
		}
		out = append(out, rn)
	}
	return out
}

func emptyIfNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
