package frames

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvoidanceStub(t *testing.T) {
	require.True(t, DecodeAvoidanceFrame(nil).ParseFailed)
	require.True(t, DecodeAvoidanceFrame([]byte{1, 2, 3}).ParseFailed)

	f := AvoidanceFrame{AdversaryAngle: 90, AdversaryDetected: 1}
	require.Equal(t, 0, f.Encode(make([]byte, 16)))
}

func TestMovingStub(t *testing.T) {
	require.True(t, DecodeMovingFrame(nil).ParseFailed)
	require.True(t, DecodeMovingFrame([]byte{1, 2, 3}).ParseFailed)

	f := MovingFrame{Move: MoveForward, LinearSpeed: 100}
	require.Equal(t, 0, f.Encode(make([]byte, 32)))
}
