package model

// LiveFeedDocument 快照文件的固定外层结构（与MLB StatsAPI live feed一致）
// 整个文件每次全量覆盖写入，不做增量合并
type LiveFeedDocument struct {
	LiveData LiveData `json:"liveData"`
}

type LiveData struct {
	Plays PlaySet `json:"plays"`
}

type PlaySet struct {
	AllPlays []Play `json:"allPlays"`
}

// Play 归一化后的单次比赛事件（抹平原始feed的字段缺失差异）
// result/about/count 为必填块，缺字段在归一化阶段即报错；
// runners及其子结构的可选字段统一用指针表达"缺失"，不用零值兜底
type Play struct {
	Result      PlayResult `json:"result"`
	About       PlayAbout  `json:"about"`
	Count       PlayCount  `json:"count"`
	Runners     []Runner   `json:"runners"`
	PitchIndex  []int      `json:"pitchIndex"`
	ActionIndex []int      `json:"actionIndex"`
}

// PlayResult 事件结果（全部必填）
type PlayResult struct {
	Type        string `json:"type"`        // 事件类型（atBat等）
	Event       string `json:"event"`       // 事件名称（Home Run等）
	EventType   string `json:"eventType"`   // 事件类型编码
	Description string `json:"description"` // 文字描述
	RBI         int    `json:"rbi"`         // 打点数
	AwayScore   int    `json:"awayScore"`   // 客队得分
	HomeScore   int    `json:"homeScore"`   // 主队得分
	IsOut       bool   `json:"isOut"`       // 是否出局
}

// PlayAbout 事件上下文（除endTime外全部必填）
type PlayAbout struct {
	AtBatIndex    int     `json:"atBatIndex"`    // 打席序号
	HalfInning    string  `json:"halfInning"`    // 上/下半局（保留原始字符串）
	IsTopInning   bool    `json:"isTopInning"`   // 是否上半局
	Inning        int     `json:"inning"`        // 局数
	StartTime     string  `json:"startTime"`     // ISO-8601开始时间
	EndTime       *string `json:"endTime"`       // 结束时间（可缺失）
	IsComplete    bool    `json:"isComplete"`    // 是否完成
	IsScoringPlay bool    `json:"isScoringPlay"` // 是否得分事件
}

// PlayCount 球数统计（全部必填）
type PlayCount struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
	Outs    int `json:"outs"`
}

// Runner 单个跑垒员在本次事件中的状态变化
// 顺序与原始feed一致，下游依赖该顺序还原跑垒过程
type Runner struct {
	Movement RunnerMovement `json:"movement"`
	Details  RunnerDetails  `json:"details"`
	Credits  []Credit       `json:"credits"`
}

// RunnerMovement 垒间移动，每个字段独立可选
// isOut等字段语义上是三态（true/false/不适用），缺失必须保留为null
type RunnerMovement struct {
	OriginBase *string `json:"originBase"`
	Start      *string `json:"start"`
	End        *string `json:"end"`
	OutBase    *string `json:"outBase"`
	IsOut      *bool   `json:"isOut"`
	OutNumber  *int    `json:"outNumber"`
}

// RunnerDetails 跑垒明细，每个字段独立可选
type RunnerDetails struct {
	Event              *string    `json:"event"`
	EventType          *string    `json:"eventType"`
	MovementReason     *string    `json:"movementReason"`
	Runner             PlayerRef  `json:"runner"`
	ResponsiblePitcher *PlayerRef `json:"responsiblePitcher"`
	IsScoringEvent     *bool      `json:"isScoringEvent"`
	RBI                *bool      `json:"rbi"`
	Earned             *bool      `json:"earned"`
	TeamUnearned       *bool      `json:"teamUnearned"`
	PlayIndex          *int       `json:"playIndex"`
}

// PlayerRef 球员引用，子字段独立可选
type PlayerRef struct {
	ID       *int    `json:"id"`
	FullName *string `json:"fullName"`
	Link     *string `json:"link"`
}

// Credit 防守归功记录，顺序与原始feed一致
type Credit struct {
	Player   CreditPlayer   `json:"player"`
	Position CreditPosition `json:"position"`
	Credit   *string        `json:"credit"`
}

type CreditPlayer struct {
	ID   *int    `json:"id"`
	Link *string `json:"link"`
}

type CreditPosition struct {
	Code         *string `json:"code"`
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Abbreviation *string `json:"abbreviation"`
}
