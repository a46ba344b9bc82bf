package frames

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServoFrameSize(t *testing.T) {
	for n := uint8(0); n <= MaxServos; n++ {
		require.Equal(t, 1+6*int(n), ServoFrameSize(n))
	}
}

func TestServoEncode(t *testing.T) {
	testCases := []struct {
		name   string
		frame  ServoFrame
		expect []byte
	}{
		{"empty", ServoFrame{}, []byte{0}},
		{
			"one servo",
			ServoFrame{
				Servos: [MaxServos]Servo{
					{ID: 3, Position: 1000, Command: 1000, CommandType: 1, BlockingMode: 1, Color: 5},
				},
				Count: 1,
			},
			[]byte{1, 3, 0x03, 0xE8, 0x03, 0xE8, 0x2D},
		},
		{
			"two servos",
			ServoFrame{
				Servos: [MaxServos]Servo{
					{ID: 1, Position: 512, Command: 162, CommandType: 1, Color: 5},
					{ID: 3, Position: 1000, Command: 10, CommandType: 1, Blocked: 1, BlockingMode: 1, Color: 3},
				},
				Count: 2,
			},
			[]byte{
				2,
				1, 0x02, 0x00, 0x00, 0xA2, 0x25,
				3, 0x03, 0xE8, 0x00, 0x0A, 0x3B,
			},
		},
		{
			"gap in slots",
			ServoFrame{
				Servos: [MaxServos]Servo{
					{ID: 7, Position: 1, Command: 2, Color: 1},
					{},
					{ID: 9, Position: 3, Command: 4, Color: 2},
				},
				Count: 3,
			},
			[]byte{
				2,
				7, 0x00, 0x01, 0x00, 0x02, 0x01,
				9, 0x00, 0x03, 0x00, 0x04, 0x02,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, ServoFrameSize(MaxServos))
			n := tc.frame.Encode(buf)
			require.Equal(t, tc.expect, buf[:n])
		})
	}
}

func TestServoEncodeFailures(t *testing.T) {
	frame := ServoFrame{
		Servos: [MaxServos]Servo{{ID: 3, Position: 1000, Command: 1000}},
		Count:  1,
	}

	var nilFrame *ServoFrame
	require.Equal(t, 0, nilFrame.Encode(make([]byte, 16)))
	require.Equal(t, 0, frame.Encode(nil))

	// One byte short: nothing is written.
	buf := make([]byte, ServoFrameSize(1)-1)
	require.Equal(t, 0, frame.Encode(buf))
	require.Equal(t, make([]byte, len(buf)), buf)
}

func TestServoEncodeStaleCount(t *testing.T) {
	// The header counts populated slots, but only the first Count slots
	// are scanned for records.
	frame := ServoFrame{
		Servos: [MaxServos]Servo{{ID: 1, Position: 5, Command: 5}},
	}
	buf := make([]byte, ServoFrameSize(MaxServos))
	n := frame.Encode(buf)
	require.Equal(t, 1, n)
	require.Equal(t, []byte{1}, buf[:n])
}

func TestServoDecode(t *testing.T) {
	raw := []byte{1, 3, 0x03, 0xE8, 0x03, 0xE8, 0x2D}
	f := DecodeServoFrame(raw)
	require.False(t, f.ParseFailed)
	require.Equal(t, uint8(1), f.Count)
	require.Equal(t, Servo{
		ID:           3,
		Position:     1000,
		Command:      1000,
		CommandType:  1,
		BlockingMode: 1,
		Color:        5,
	}, f.Servos[0])
	for i := 1; i < MaxServos; i++ {
		require.Equal(t, uint8(0), f.Servos[i].ID)
	}
}

func TestServoDecodeFailures(t *testing.T) {
	testCases := []struct {
		name string
		raw  []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"count beyond data", []byte{0x02}},
		{"trailing byte", []byte{0, 0xFF}},
		{"truncated record", []byte{1, 3, 0x03, 0xE8, 0x03}},
		{"zero id", []byte{1, 0, 0x03, 0xE8, 0x03, 0xE8, 0x2D}},
		{"count over capacity", append([]byte{9}, make([]byte, 54)...)},
		{
			"duplicate id",
			[]byte{
				2,
				3, 0x03, 0xE8, 0x03, 0xE8, 0x2D,
				3, 0x00, 0x01, 0x00, 0x02, 0x00,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, DecodeServoFrame(tc.raw).ParseFailed)
		})
	}
}

func TestServoRoundTrip(t *testing.T) {
	before := ServoFrame{
		Servos: [MaxServos]Servo{
			{ID: 1, Position: 512, Command: 162, CommandType: 1, Color: 5},
			{ID: 3, Position: 1000, Command: 10, CommandType: 1, Blocked: 1, BlockingMode: 1, Color: 3},
		},
		Count: 2,
	}
	buf := make([]byte, ServoFrameSize(MaxServos))
	n := before.Encode(buf)
	require.Equal(t, ServoFrameSize(2), n)

	after := DecodeServoFrame(buf[:n])
	require.Equal(t, before, after)
}
