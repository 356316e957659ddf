package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "EstimateComplete", EstimateComplete.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "State(42)", State(42).String())
}

func TestCanTransition(t *testing.T) {
	legal := [][2]State{
		{Idle, Estimating},
		{Idle, Failed},
		{Estimating, EstimateComplete},
		{Estimating, Failed},
		{EstimateComplete, Hashing},
		{Hashing, Done},
		{Hashing, Failed},
	}
	for _, tr := range legal {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	illegal := [][2]State{
		{Idle, Hashing},
		{Estimating, Hashing},
		{EstimateComplete, Failed},
		{Done, Failed},
		{Failed, Idle},
	}
	for _, tr := range illegal {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Done.Terminal())
	assert.True(t, Failed.Terminal())
	assert.False(t, Hashing.Terminal())
}
