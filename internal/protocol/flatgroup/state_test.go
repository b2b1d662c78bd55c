package flatgroup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemember_EvictionRaisesFloor(t *testing.T) {
	r := require.New(t)
	gs := &groupState{}

	for g := uint32(0); g < maxSeen; g++ {
		gs.remember(0, g)
	}
	gs.remember(1, 7)
	r.Len(gs.seen, maxSeen)
	r.Equal(uint32(1), gs.floor(0))
	r.Zero(gs.floor(1))

	r.True(gs.hasSeen(0, 0))
	r.True(gs.hasSeen(0, 1))
	r.True(gs.hasSeen(1, 7))
	r.False(gs.hasSeen(1, 6))
	r.False(gs.hasSeen(0, maxSeen))
}

func TestState_FloorsSurviveMarshal(t *testing.T) {
	r := require.New(t)
	gs := &groupState{groupID: []byte("g"), active: true, epochSecret: []byte("secret")}
	for g := uint32(0); g <= maxSeen; g++ {
		gs.remember(2, g)
	}

	raw, err := gs.marshal()
	r.NoError(err)
	back, err := unmarshalState(raw)
	r.NoError(err)
	r.Equal(gs.floors, back.floors)
	r.True(back.hasSeen(2, 0))
	r.False(back.hasSeen(2, maxSeen+1))
}

func TestState_ReadsVersionOne(t *testing.T) {
	r := require.New(t)
	gs := &groupState{groupID: []byte("g"), active: true, epochSecret: []byte("secret")}
	gs.remember(0, 3)

	raw, err := gs.marshal()
	r.NoError(err)
	// A version 1 state ends the replay window where the floors begin.
	legacy := append([]byte{1}, raw[1:len(raw)-5]...)
	legacy = append(legacy, 0)

	back, err := unmarshalState(legacy)
	r.NoError(err)
	r.Empty(back.floors)
	r.True(back.hasSeen(0, 3))
}
