package grid

// Action is one of the four moves the agent can take.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
)

// AllActions enumerates every action in a fixed order. Tie-breaking in
// QTable.Best and uniform sampling in RandomPolicy both rely on this order
// staying put.
var AllActions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// Delta returns the unit movement vector for the action. The origin is the
// top left corner, so up is negative y.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	}
	return 0, 0
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	}
	return "?"
}
