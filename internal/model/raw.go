package model

// RawLiveFeedDocument 原始live feed响应的外层结构
type RawLiveFeedDocument struct {
	LiveData RawLiveData `json:"liveData"`
}

type RawLiveData struct {
	Plays RawPlaySet `json:"plays"`
}

type RawPlaySet struct {
	AllPlays []RawPlay `json:"allPlays"`
}

// RawPlay 未经校验的原始play记录
// 必填块的每个字段都用指针接收，归一化阶段据此判断缺失
type RawPlay struct {
	Result      *RawResult `json:"result"`
	About       *RawAbout  `json:"about"`
	Count       *RawCount  `json:"count"`
	Runners     []Runner   `json:"runners"`
	PitchIndex  []int      `json:"pitchIndex"`
	ActionIndex []int      `json:"actionIndex"`
}

type RawResult struct {
	Type        *string `json:"type"`
	Event       *string `json:"event"`
	EventType   *string `json:"eventType"`
	Description *string `json:"description"`
	RBI         *int    `json:"rbi"`
	AwayScore   *int    `json:"awayScore"`
	HomeScore   *int    `json:"homeScore"`
	IsOut       *bool   `json:"isOut"`
}

type RawAbout struct {
	AtBatIndex    *int    `json:"atBatIndex"`
	HalfInning    *string `json:"halfInning"`
	IsTopInning   *bool   `json:"isTopInning"`
	Inning        *int    `json:"inning"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"` // 真可选，不参与必填校验
	IsComplete    *bool   `json:"isComplete"`
	IsScoringPlay *bool   `json:"isScoringPlay"`
}

type RawCount struct {
	Balls   *int `json:"balls"`
	Strikes *int `json:"strikes"`
	Outs    *int `json:"outs"`
}
