package policies

import (
	"github.com/cgratie/simple-reinforcement-learning/grid"
)

// QTable approximates the action-value function with a lookup table, which
// works because the state and action spaces here are small and discrete.
// Pairs that were never set read back a configurable default, so a default
// above the best reachable value makes the greedy policy optimistic about
// unexplored moves.
type QTable struct {
	table map[grid.Position]map[grid.Action]float64
	def   float64
}

func NewQTable(def float64) *QTable {
	return &QTable{
		table: make(map[grid.Position]map[grid.Action]float64),
		def:   def,
	}
}

// Get returns the stored value for the pair, or the default. Reading never
// creates an entry.
func (q *QTable) Get(state grid.Position, action grid.Action) float64 {
	if actions, ok := q.table[state]; ok {
		if value, ok := actions[action]; ok {
			return value
		}
	}
	return q.def
}

// Set records the value for the pair, overwriting any previous value.
func (q *QTable) Set(state grid.Position, action grid.Action, value float64) {
	actions, ok := q.table[state]
	if !ok {
		actions = make(map[grid.Action]float64)
		q.table[state] = actions
	}
	actions[action] = value
}

// Best returns the highest-valued action for the state along with its
// value. Actions are compared in grid.AllActions order and the first
// maximum wins, so ties resolve the same way every time.
func (q *QTable) Best(state grid.Position) (grid.Action, float64) {
	best := grid.AllActions[0]
	bestValue := q.Get(state, best)
	for _, action := range grid.AllActions[1:] {
		if value := q.Get(state, action); value > bestValue {
			best, bestValue = action, value
		}
	}
	return best, bestValue
}

// Len reports how many states have at least one stored value.
func (q *QTable) Len() int {
	return len(q.table)
}
