package frames

// Fixed capacities of the motor frame sub-collections.
const (
	MaxControlledMotors   = 8
	MaxUncontrolledMotors = 8
	MaxBrushless          = 8
)

const (
	controlledRecordSize   = 4
	uncontrolledRecordSize = 2
	brushlessRecordSize    = 2
)

// Controlled motor status byte: bit 1 finished, bit 0 new command.
const (
	motorFinishedShift   = 1
	motorNewCommandShift = 0
)

// Uncontrolled motor status byte: bit 1 on/off, bit 0 rotation direction.
const (
	motorOnOffShift    = 1
	motorRotationShift = 0
)

// ControlledMotor is the wire-level state of one position-controlled
// motor. ID 0 marks an unused slot.
type ControlledMotor struct {
	ID          uint8
	WantedAngle uint8
	WantedTurns uint8
	Finished    uint8
	NewCommand  uint8
}

// UncontrolledMotor is the wire-level state of one free-running motor.
// ID 0 marks an unused slot.
type UncontrolledMotor struct {
	ID       uint8
	OnOff    uint8
	Rotation uint8 // 0 clockwise, 1 trigonometric
}

// Brushless is the wire-level state of one brushless unit. ID 0 marks
// an unused slot.
type Brushless struct {
	ID    uint8
	OnOff uint8
}

// MotorFrame is the decoded form of a motor frame.
type MotorFrame struct {
	Controlled   [MaxControlledMotors]ControlledMotor
	Uncontrolled [MaxUncontrolledMotors]UncontrolledMotor
	Brushless    [MaxBrushless]Brushless
	ParseFailed  bool
}

// MotorFrameSize computes the exact frame length for the given record
// counts.
func MotorFrameSize(controlled, uncontrolled, brushless uint8) int {
	return 3 + controlledRecordSize*int(controlled) +
		uncontrolledRecordSize*int(uncontrolled) +
		brushlessRecordSize*int(brushless)
}

// DecodeMotorFrame parses a motor frame.
//
// Layout: <controlled u8> <uncontrolled u8> <brushless u8> then the
// three record sections in that order:
// controlled <id u8> <angle u8> <turns u8> <status u8>,
// uncontrolled <id u8> <status u8>, brushless <id u8> <on_off u8>.
// IDs must be non-zero; unlike servo frames no uniqueness check is
// applied.
func DecodeMotorFrame(data []byte) (f MotorFrame) {
	if len(data) < 3 {
		f.ParseFailed = true
		return
	}
	controlled, uncontrolled, brushless := data[0], data[1], data[2]
	if controlled > MaxControlledMotors ||
		uncontrolled > MaxUncontrolledMotors ||
		brushless > MaxBrushless ||
		len(data) != MotorFrameSize(controlled, uncontrolled, brushless) {
		f.ParseFailed = true
		return
	}
	off := 3
	for i := uint8(0); i < controlled; i++ {
		id := data[off]
		if id == 0 {
			f.ParseFailed = true
			return
		}
		m := &f.Controlled[i]
		m.ID = id
		m.WantedAngle = data[off+1]
		m.WantedTurns = data[off+2]
		status := data[off+3]
		m.Finished = (status >> motorFinishedShift) & 1
		m.NewCommand = (status >> motorNewCommandShift) & 1
		off += controlledRecordSize
	}
	for i := uint8(0); i < uncontrolled; i++ {
		id := data[off]
		if id == 0 {
			f.ParseFailed = true
			return
		}
		m := &f.Uncontrolled[i]
		m.ID = id
		status := data[off+1]
		m.OnOff = (status >> motorOnOffShift) & 1
		m.Rotation = (status >> motorRotationShift) & 1
		off += uncontrolledRecordSize
	}
	for i := uint8(0); i < brushless; i++ {
		id := data[off]
		if id == 0 {
			f.ParseFailed = true
			return
		}
		b := &f.Brushless[i]
		b.ID = id
		b.OnOff = data[off+1]
		off += brushlessRecordSize
	}
	return
}

// Encode writes the frame into buf and returns the number of bytes
// written, or 0 when f is nil, buf is empty or too small. Populated
// slots are counted and emitted over the full arrays regardless of
// their position.
func (f *MotorFrame) Encode(buf []byte) int {
	if f == nil || len(buf) == 0 {
		return 0
	}
	var controlled, uncontrolled, brushless uint8
	for i := 0; i < MaxControlledMotors; i++ {
		if f.Controlled[i].ID > 0 {
			controlled++
		}
	}
	for i := 0; i < MaxUncontrolledMotors; i++ {
		if f.Uncontrolled[i].ID > 0 {
			uncontrolled++
		}
	}
	for i := 0; i < MaxBrushless; i++ {
		if f.Brushless[i].ID > 0 {
			brushless++
		}
	}
	if len(buf) < MotorFrameSize(controlled, uncontrolled, brushless) {
		return 0
	}
	buf[0], buf[1], buf[2] = controlled, uncontrolled, brushless
	size := 3
	for i := 0; i < MaxControlledMotors; i++ {
		m := &f.Controlled[i]
		if m.ID == 0 {
			continue
		}
		buf[size] = m.ID
		buf[size+1] = m.WantedAngle
		buf[size+2] = m.WantedTurns
		buf[size+3] = (m.Finished&1)<<motorFinishedShift |
			(m.NewCommand&1)<<motorNewCommandShift
		size += controlledRecordSize
	}
	for i := 0; i < MaxUncontrolledMotors; i++ {
		m := &f.Uncontrolled[i]
		if m.ID == 0 {
			continue
		}
		buf[size] = m.ID
		buf[size+1] = (m.OnOff&1)<<motorOnOffShift |
			(m.Rotation&1)<<motorRotationShift
		size += uncontrolledRecordSize
	}
	for i := 0; i < MaxBrushless; i++ {
		b := &f.Brushless[i]
		if b.ID == 0 {
			continue
		}
		buf[size] = b.ID
		buf[size+1] = b.OnOff
		size += brushlessRecordSize
	}
	return size
}
