package actuators

import (
	"encoding/json"
	"fmt"

	"github.com/robotek/frames.go/pkg/l0/frames"
)

// Control selects how a servo command is interpreted.
type Control uint8

// Control values.
const (
	ControlPosition Control = 0
	ControlSpeed    Control = 1
)

var controlNames = map[Control]string{
	ControlPosition: "position",
	ControlSpeed:    "speed",
}

// String implements fmt.Stringer.
func (c Control) String() string {
	if s, ok := controlNames[c]; ok {
		return s
	}
	return fmt.Sprintf("control(%d)", uint8(c))
}

// MarshalJSON implements json.Marshaler.
func (c Control) MarshalJSON() ([]byte, error) {
	s, ok := controlNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown control %d", uint8(c))
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Control) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for val, name := range controlNames {
		if name == s {
			*c = val
			return nil
		}
	}
	return fmt.Errorf("unknown control %q", s)
}

// BlockingMode is the behavior of a servo opposed by an external force.
type BlockingMode uint8

// BlockingMode values.
const (
	// Unblocking releases the pressure when blocked.
	Unblocking BlockingMode = 0
	// HoldOnBlock keeps the torque to oppose the block.
	HoldOnBlock BlockingMode = 1
)

var blockingModeNames = map[BlockingMode]string{
	Unblocking:  "unblocking",
	HoldOnBlock: "hold_on_block",
}

// String implements fmt.Stringer.
func (m BlockingMode) String() string {
	if s, ok := blockingModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("blocking_mode(%d)", uint8(m))
}

// MarshalJSON implements json.Marshaler.
func (m BlockingMode) MarshalJSON() ([]byte, error) {
	s, ok := blockingModeNames[m]
	if !ok {
		return nil, fmt.Errorf("unknown blocking mode %d", uint8(m))
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *BlockingMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for val, name := range blockingModeNames {
		if name == s {
			*m = val
			return nil
		}
	}
	return fmt.Errorf("unknown blocking mode %q", s)
}

// Color is the color emitted by a servo, a 3-bit code on the wire.
type Color uint8

// Color values.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = map[Color]string{
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// MarshalJSON implements json.Marshaler.
func (c Color) MarshalJSON() ([]byte, error) {
	s, ok := colorNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown color %d", uint8(c))
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for val, name := range colorNames {
		if name == s {
			*c = val
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", s)
}

// Servo is the typed state of one servo.
type Servo struct {
	ID       uint8        `json:"id"`
	Position uint16       `json:"position"`
	Command  uint16       `json:"command"`
	Control  Control      `json:"control"`
	Blocked  bool         `json:"blocked"`
	Mode     BlockingMode `json:"mode"`
	Color    Color        `json:"color"`
}

// ServoGroup is a set of at most 8 servos.
type ServoGroup struct {
	Servos []Servo `json:"servos"`
}

// ServoGroupFromFrame converts a decoded frame. It refuses frames with
// the parse-failure flag set.
func ServoGroupFromFrame(f *frames.ServoFrame) (*ServoGroup, error) {
	if f == nil || f.ParseFailed {
		return nil, ErrParseFailed
	}
	g := &ServoGroup{}
	count := f.Count
	if count > frames.MaxServos {
		count = frames.MaxServos
	}
	for i := uint8(0); i < count; i++ {
		s := f.Servos[i]
		if s.ID == 0 {
			continue
		}
		g.Servos = append(g.Servos, Servo{
			ID:       s.ID,
			Position: s.Position,
			Command:  s.Command,
			Control:  Control(s.CommandType & 1),
			Blocked:  s.Blocked != 0,
			Mode:     BlockingMode(s.BlockingMode & 1),
			Color:    Color(s.Color & 0x07),
		})
	}
	return g, nil
}

// Frame builds a wire frame, validating that ids are non-zero, unique
// and fit the frame capacity.
func (g *ServoGroup) Frame() (frames.ServoFrame, error) {
	var f frames.ServoFrame
	if len(g.Servos) > frames.MaxServos {
		return f, ErrTooMany
	}
	for i, s := range g.Servos {
		if s.ID == 0 {
			return f, ErrZeroID
		}
		for j := 0; j < i; j++ {
			if g.Servos[j].ID == s.ID {
				return f, ErrDuplicateID
			}
		}
		f.Servos[i] = frames.Servo{
			ID:           s.ID,
			Position:     s.Position,
			Command:      s.Command,
			CommandType:  uint8(s.Control) & 1,
			BlockingMode: uint8(s.Mode) & 1,
			Color:        uint8(s.Color) & 0x07,
		}
		if s.Blocked {
			f.Servos[i].Blocked = 1
		}
	}
	f.Count = uint8(len(g.Servos))
	return f, nil
}

// Bytes encodes the group into a freshly allocated frame.
func (g *ServoGroup) Bytes() ([]byte, error) {
	f, err := g.Frame()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, frames.ServoFrameSize(f.Count))
	f.Encode(buf)
	return buf, nil
}
