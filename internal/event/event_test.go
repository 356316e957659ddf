package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		want string
		typ  Type
	}{
		{want: "StateChanged", typ: StateChanged},
		{want: "PathVisited", typ: PathVisited},
		{want: "EstimateComplete", typ: EstimateComplete},
		{want: "FileHashed", typ: FileHashed},
		{want: "HashComplete", typ: HashComplete},
		{want: "RunFailed", typ: RunFailed},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestTypeStringUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Type(999).String())
	assert.Equal(t, "Unknown", Type(0).String())
}

func TestEmitStampsTimestamp(t *testing.T) {
	var got []Event
	sink := SinkFunc(func(ev Event) { got = append(got, ev) })

	Emit(sink, Event{Type: RunFailed, Error: errors.New("boom")})

	require.Len(t, got, 1)
	assert.Equal(t, RunFailed, got[0].Type)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestEmitNilSink(t *testing.T) {
	assert.NotPanics(t, func() { Emit(nil, Event{Type: PathVisited}) })
	assert.NotPanics(t, func() { Emit(Discard, Event{Type: PathVisited}) })
}
