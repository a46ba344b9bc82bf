package actuators

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotek/frames.go/pkg/l0/frames"
)

func TestMotorGroupFromFrame(t *testing.T) {
	f := frames.DecodeMotorFrame([]byte{
		1, 1, 1,
		9, 45, 3, 0x03,
		4, 0x03,
		5, 0x01,
	})
	g, err := MotorGroupFromFrame(&f)
	require.NoError(t, err)
	require.Equal(t, &MotorGroup{
		Controlled: []ControlledMotor{
			{ID: 9, WantedAngle: 45, WantedTurns: 3, Finished: true, NewCommand: true},
		},
		Uncontrolled: []UncontrolledMotor{
			{ID: 4, On: true, Rotation: Trigonometric},
		},
		Brushless: []Brushless{
			{ID: 5, On: true},
		},
	}, g)
}

func TestMotorGroupFromFrameFailed(t *testing.T) {
	f := frames.DecodeMotorFrame([]byte{1, 2})
	require.True(t, f.ParseFailed)
	_, err := MotorGroupFromFrame(&f)
	require.Equal(t, ErrParseFailed, err)

	_, err = MotorGroupFromFrame(nil)
	require.Equal(t, ErrParseFailed, err)
}

func TestMotorGroupRoundTrip(t *testing.T) {
	g := &MotorGroup{
		Controlled: []ControlledMotor{
			{ID: 1, WantedAngle: 213, WantedTurns: 2, NewCommand: true},
			{ID: 3, WantedAngle: 12, WantedTurns: 5, Finished: true},
		},
		Uncontrolled: []UncontrolledMotor{
			{ID: 4, On: true, Rotation: Clockwise},
		},
		Brushless: []Brushless{
			{ID: 5, On: true},
		},
	}
	f, err := g.Frame()
	require.NoError(t, err)

	back, err := MotorGroupFromFrame(&f)
	require.NoError(t, err)
	require.Equal(t, g, back)
}

func TestMotorGroupFrameErrors(t *testing.T) {
	testCases := []struct {
		name  string
		group MotorGroup
		err   error
	}{
		{"zero id controlled", MotorGroup{Controlled: []ControlledMotor{{}}}, ErrZeroID},
		{"zero id uncontrolled", MotorGroup{Uncontrolled: []UncontrolledMotor{{}}}, ErrZeroID},
		{"zero id brushless", MotorGroup{Brushless: []Brushless{{}}}, ErrZeroID},
		{
			"duplicate controlled",
			MotorGroup{Controlled: []ControlledMotor{{ID: 1}, {ID: 1}}},
			ErrDuplicateID,
		},
		{
			"duplicate uncontrolled",
			MotorGroup{Uncontrolled: []UncontrolledMotor{{ID: 1}, {ID: 1}}},
			ErrDuplicateID,
		},
		{
			"duplicate brushless",
			MotorGroup{Brushless: []Brushless{{ID: 1}, {ID: 1}}},
			ErrDuplicateID,
		},
		{
			"too many",
			MotorGroup{Brushless: make([]Brushless, frames.MaxBrushless+1)},
			ErrTooMany,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.group.Frame()
			require.Equal(t, tc.err, err)
		})
	}
}

func TestMotorGroupBytes(t *testing.T) {
	g := &MotorGroup{
		Uncontrolled: []UncontrolledMotor{{ID: 2, On: true}},
	}
	raw, err := g.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 0, 2, 0x02}, raw)
}

func TestMotorJSON(t *testing.T) {
	g := &MotorGroup{
		Uncontrolled: []UncontrolledMotor{{ID: 2, On: true, Rotation: Trigonometric}},
	}
	out, err := json.Marshal(g)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"controlled":null,
		"uncontrolled":[{"id":2, "on":true, "rotation":"trigonometric"}],
		"brushless":null
	}`, string(out))

	var back MotorGroup
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, *g, back)

	var r Rotation
	require.Error(t, json.Unmarshal([]byte(`"widdershins"`), &r))
}
