package grid

// Rewards returned by Simulation.Act.
const (
	StepReward = -1
	TrapReward = -1000
)

// Simulation tracks an agent through a world and applies the rules and
// rewards. It reaches a terminal state when the agent lands on a trap or
// the goal, and stays there until Reset.
type Simulation struct {
	world *World
	pos   Position
	score int
}

func NewSimulation(w *World) *Simulation {
	s := &Simulation{world: w}
	s.Reset()
	return s
}

// Reset puts the agent back on the start cell and clears the score.
// Resetting an already fresh simulation changes nothing.
func (s *Simulation) Reset() {
	s.pos = s.world.Start()
	s.score = 0
}

// InTerminalState reports whether the simulation has stopped.
func (s *Simulation) InTerminalState() bool {
	t := s.world.At(s.pos)
	return t == Trap || t == Goal
}

// Act performs the action and returns the reward for that step. Moves into
// a wall or off the grid leave the agent in place but still cost the step.
// Entering a trap costs TrapReward instead. Callers are expected to check
// InTerminalState before acting again.
func (s *Simulation) Act(action Action) int {
	reward := StepReward

	dx, dy := action.Delta()
	candidate := Position{s.pos.X + dx, s.pos.Y + dy}
	if s.validMove(candidate) {
		if s.world.At(candidate) == Trap {
			reward = TrapReward
		}
		s.pos = candidate
	}

	s.score += reward
	return reward
}

func (s *Simulation) validMove(p Position) bool {
	return s.world.InBounds(p) && s.world.At(p) != Wall
}

// Position is the agent's current cell.
func (s *Simulation) Position() Position {
	return s.pos
}

// Score is the cumulative reward since the last reset.
func (s *Simulation) Score() int {
	return s.score
}

func (s *Simulation) World() *World {
	return s.world
}
