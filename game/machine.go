package game

import (
	"github.com/cgratie/simple-reinforcement-learning/grid"
	"github.com/cgratie/simple-reinforcement-learning/policies"
)

// MachinePlayer drives the simulation with a policy and feeds every
// transition to a learner, restarting whenever an episode ends. A learner
// writing into the table its policy reads from changes the behavior
// between ticks.
type MachinePlayer struct {
	policy  policies.Policy
	learner policies.Learner
}

var _ Driver = &MachinePlayer{}

func NewMachinePlayer(policy policies.Policy, learner policies.Learner) *MachinePlayer {
	return &MachinePlayer{policy: policy, learner: learner}
}

// ShouldQuit always reports false; a machine plays until cancelled.
func (p *MachinePlayer) ShouldQuit() bool {
	return false
}

func (p *MachinePlayer) Interact(sim *grid.Simulation) {
	if sim.InTerminalState() {
		sim.Reset()
		return
	}
	oldState := sim.Position()
	action := p.policy.PickAction(oldState)
	reward := sim.Act(action)
	p.learner.Observe(oldState, action, float64(reward), sim.Position())
}
