package event

type Event struct {
	Player  string
	Message string
}

type GameOverEvent struct {
	Event
	Score int
}

type ScoreEvent struct {
	Event
	Lines int
	Score int
}

type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawMatrix
	DrawSide
	DrawMessages
)
