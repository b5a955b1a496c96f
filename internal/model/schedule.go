package model

// ScheduleDocument 赛程/状态文档（info.json），与MLB StatsAPI schedule接口一致
type ScheduleDocument struct {
	Dates []ScheduleDate `json:"dates"`
}

type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

type ScheduleGame struct {
	GamePk int64      `json:"gamePk"`
	Status GameStatus `json:"status"`
	Teams  GameTeams  `json:"teams"`
}

// GameStatus 比赛粗粒度状态，abstractGameState取值如"Live"/"Final"/"Preview"
type GameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
}

type GameTeams struct {
	Away GameTeamSide `json:"away"`
	Home GameTeamSide `json:"home"`
}

type GameTeamSide struct {
	Team  TeamRef `json:"team"`
	Score int     `json:"score"`
}

type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
