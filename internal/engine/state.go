package engine

import (
	"fmt"
	"slices"
)

// State is the lifecycle position of a Run.
type State int

const (
	Idle State = iota
	Estimating
	EstimateComplete
	Hashing
	Done
	Failed
)

var stateNames = [...]string{
	Idle:             "Idle",
	Estimating:       "Estimating",
	EstimateComplete: "EstimateComplete",
	Hashing:          "Hashing",
	Done:             "Done",
	Failed:           "Failed",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool { return s == Done || s == Failed }

// next lists the legal successors of each state. Idle may fail directly when
// the path is rejected before estimation starts.
var next = map[State][]State{
	Idle:             {Estimating, Failed},
	Estimating:       {EstimateComplete, Failed},
	EstimateComplete: {Hashing},
	Hashing:          {Done, Failed},
}

// CanTransition reports whether from -> to is a legal transition.
func CanTransition(from, to State) bool {
	return slices.Contains(next[from], to)
}
