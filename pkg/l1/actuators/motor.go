package actuators

import (
	"encoding/json"
	"fmt"

	"github.com/robotek/frames.go/pkg/l0/frames"
)

// Rotation is the turning direction of a free-running motor.
type Rotation uint8

// Rotation values.
const (
	Clockwise        Rotation = 0
	Trigonometric    Rotation = 1
	CounterClockwise          = Trigonometric
)

var rotationNames = map[Rotation]string{
	Clockwise:     "clockwise",
	Trigonometric: "trigonometric",
}

// String implements fmt.Stringer.
func (r Rotation) String() string {
	if s, ok := rotationNames[r]; ok {
		return s
	}
	return fmt.Sprintf("rotation(%d)", uint8(r))
}

// MarshalJSON implements json.Marshaler.
func (r Rotation) MarshalJSON() ([]byte, error) {
	s, ok := rotationNames[r]
	if !ok {
		return nil, fmt.Errorf("unknown rotation %d", uint8(r))
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for val, name := range rotationNames {
		if name == s {
			*r = val
			return nil
		}
	}
	return fmt.Errorf("unknown rotation %q", s)
}

// ControlledMotor is the typed state of one position-controlled motor.
type ControlledMotor struct {
	ID          uint8 `json:"id"`
	WantedAngle uint8 `json:"wanted_angle"`
	WantedTurns uint8 `json:"wanted_turns"`
	Finished    bool  `json:"finished"`
	NewCommand  bool  `json:"new_command"`
}

// UncontrolledMotor is the typed state of one free-running motor.
type UncontrolledMotor struct {
	ID       uint8    `json:"id"`
	On       bool     `json:"on"`
	Rotation Rotation `json:"rotation"`
}

// Brushless is the typed state of one brushless unit.
type Brushless struct {
	ID uint8 `json:"id"`
	On bool  `json:"on"`
}

// MotorGroup is a set of at most 8 motors of each kind.
type MotorGroup struct {
	Controlled   []ControlledMotor   `json:"controlled"`
	Uncontrolled []UncontrolledMotor `json:"uncontrolled"`
	Brushless    []Brushless         `json:"brushless"`
}

// MotorGroupFromFrame converts a decoded frame. It refuses frames with
// the parse-failure flag set.
func MotorGroupFromFrame(f *frames.MotorFrame) (*MotorGroup, error) {
	if f == nil || f.ParseFailed {
		return nil, ErrParseFailed
	}
	g := &MotorGroup{}
	for i := 0; i < frames.MaxControlledMotors; i++ {
		m := f.Controlled[i]
		if m.ID == 0 {
			continue
		}
		g.Controlled = append(g.Controlled, ControlledMotor{
			ID:          m.ID,
			WantedAngle: m.WantedAngle,
			WantedTurns: m.WantedTurns,
			Finished:    m.Finished != 0,
			NewCommand:  m.NewCommand != 0,
		})
	}
	for i := 0; i < frames.MaxUncontrolledMotors; i++ {
		m := f.Uncontrolled[i]
		if m.ID == 0 {
			continue
		}
		g.Uncontrolled = append(g.Uncontrolled, UncontrolledMotor{
			ID:       m.ID,
			On:       m.OnOff != 0,
			Rotation: Rotation(m.Rotation & 1),
		})
	}
	for i := 0; i < frames.MaxBrushless; i++ {
		b := f.Brushless[i]
		if b.ID == 0 {
			continue
		}
		g.Brushless = append(g.Brushless, Brushless{
			ID: b.ID,
			On: b.OnOff != 0,
		})
	}
	return g, nil
}

// Frame builds a wire frame, validating that ids are non-zero, unique
// within their kind and fit the frame capacity. The wire codec itself
// does not enforce uniqueness for motors; this layer does.
func (g *MotorGroup) Frame() (frames.MotorFrame, error) {
	var f frames.MotorFrame
	if len(g.Controlled) > frames.MaxControlledMotors ||
		len(g.Uncontrolled) > frames.MaxUncontrolledMotors ||
		len(g.Brushless) > frames.MaxBrushless {
		return f, ErrTooMany
	}
	for i, m := range g.Controlled {
		if m.ID == 0 {
			return f, ErrZeroID
		}
		for j := 0; j < i; j++ {
			if g.Controlled[j].ID == m.ID {
				return f, ErrDuplicateID
			}
		}
		f.Controlled[i] = frames.ControlledMotor{
			ID:          m.ID,
			WantedAngle: m.WantedAngle,
			WantedTurns: m.WantedTurns,
		}
		if m.Finished {
			f.Controlled[i].Finished = 1
		}
		if m.NewCommand {
			f.Controlled[i].NewCommand = 1
		}
	}
	for i, m := range g.Uncontrolled {
		if m.ID == 0 {
			return f, ErrZeroID
		}
		for j := 0; j < i; j++ {
			if g.Uncontrolled[j].ID == m.ID {
				return f, ErrDuplicateID
			}
		}
		f.Uncontrolled[i] = frames.UncontrolledMotor{
			ID:       m.ID,
			Rotation: uint8(m.Rotation) & 1,
		}
		if m.On {
			f.Uncontrolled[i].OnOff = 1
		}
	}
	for i, b := range g.Brushless {
		if b.ID == 0 {
			return f, ErrZeroID
		}
		for j := 0; j < i; j++ {
			if g.Brushless[j].ID == b.ID {
				return f, ErrDuplicateID
			}
		}
		f.Brushless[i] = frames.Brushless{ID: b.ID}
		if b.On {
			f.Brushless[i].OnOff = 1
		}
	}
	return f, nil
}

// Bytes encodes the group into a freshly allocated frame.
func (g *MotorGroup) Bytes() ([]byte, error) {
	f, err := g.Frame()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, frames.MotorFrameSize(
		uint8(len(g.Controlled)), uint8(len(g.Uncontrolled)), uint8(len(g.Brushless))))
	f.Encode(buf)
	return buf, nil
}
