package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotate
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHold
	ActionRestart
)

func (a GameAction) String() string {
	switch a {
	case ActionRotate:
		return "Rotate"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionSoftDrop:
		return "Soft Drop"
	case ActionHold:
		return "Hold"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
