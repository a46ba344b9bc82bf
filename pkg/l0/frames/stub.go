package frames

// Avoidance and moving frames have no wire format yet. Their structures
// are declared so the interface is complete, but decoding always fails
// and encoding always writes nothing. Do not rely on any other field of
// a decoded value until a format is defined.

// AvoidanceFrame is the decoded form of an avoidance detection frame.
type AvoidanceFrame struct {
	AdversaryAngle    int16
	AdversaryDetected uint8
	ParseFailed       bool
}

// DecodeAvoidanceFrame always fails: the avoidance wire format is not
// defined yet.
func DecodeAvoidanceFrame(data []byte) (f AvoidanceFrame) {
	f.ParseFailed = true
	return
}

// Encode always returns 0: the avoidance wire format is not defined yet.
func (f *AvoidanceFrame) Encode(buf []byte) int {
	return 0
}

// MoveType identifies the motion order carried by a moving frame.
type MoveType uint8

// Motion orders.
const (
	MoveStop MoveType = iota
	MoveForward
	MoveBackward
	MoveTurnRelative
	MoveTurnAbsolute
	MoveForwardInfinity
	MoveBackwardInfinity
)

// MovingFrame is the decoded form of a moving command frame.
type MovingFrame struct {
	PosX         uint16
	PosY         uint16
	Angle        uint16
	LinearSpeed  uint16
	AngularSpeed uint16

	Reset           uint8 // non-zero to redefine current coordinates
	Move            MoveType
	Blocked         uint8
	MovingDone      uint8
	AccuracyReached uint8
	ServitudeOnOff  uint8
	LED             uint8

	ParseFailed bool
}

// DecodeMovingFrame always fails: the moving wire format is not defined
// yet.
func DecodeMovingFrame(data []byte) (f MovingFrame) {
	f.ParseFailed = true
	return
}

// Encode always returns 0: the moving wire format is not defined yet.
func (f *MovingFrame) Encode(buf []byte) int {
	return 0
}
