package frames

import "encoding/binary"

// MaxServos is the fixed capacity of a servo frame.
const MaxServos = 8

const servoRecordSize = 6

// Servo status byte layout, most- to least-significant used bits:
// bit 5 command type, bit 4 blocked, bit 3 blocking mode, bits 2-0 color.
const (
	servoCommandTypeShift = 5
	servoBlockedShift     = 4
	servoBlockingShift    = 3
	servoColorMask        = 0x07
)

// Servo is the wire-level state of one servo. ID 0 marks an unused slot.
type Servo struct {
	ID           uint8
	Position     uint16
	Command      uint16
	CommandType  uint8 // 0 position order, 1 speed order
	Blocked      uint8
	BlockingMode uint8 // 0 unblocking, 1 hold on block
	Color        uint8 // 3-bit color code
}

// ServoFrame is the decoded form of a servo frame.
type ServoFrame struct {
	Servos      [MaxServos]Servo
	Count       uint8
	ParseFailed bool
}

// ServoFrameSize computes the exact frame length for count records.
func ServoFrameSize(count uint8) int {
	return 1 + servoRecordSize*int(count)
}

// DecodeServoFrame parses a servo frame.
//
// Layout: <count u8> then count records of
// <id u8> <position u16be> <command u16be> <status u8>.
// IDs must be non-zero and unique within the frame, and the input length
// must match the declared count exactly.
func DecodeServoFrame(data []byte) (f ServoFrame) {
	if len(data) == 0 {
		f.ParseFailed = true
		return
	}
	count := data[0]
	if count > MaxServos || len(data) != ServoFrameSize(count) {
		f.ParseFailed = true
		return
	}
	off := 1
	for i := uint8(0); i < count; i++ {
		id := data[off]
		off++
		if id == 0 {
			f.ParseFailed = true
			return
		}
		for j := 0; j < MaxServos; j++ {
			if f.Servos[j].ID == id {
				f.ParseFailed = true
				return
			}
		}
		s := &f.Servos[i]
		s.ID = id
		s.Position = binary.BigEndian.Uint16(data[off:])
		s.Command = binary.BigEndian.Uint16(data[off+2:])
		status := data[off+4]
		off += 5
		s.CommandType = (status >> servoCommandTypeShift) & 1
		s.Blocked = (status >> servoBlockedShift) & 1
		s.BlockingMode = (status >> servoBlockingShift) & 1
		s.Color = status & servoColorMask
	}
	f.Count = count
	return
}

// Encode writes the frame into buf and returns the number of bytes
// written, or 0 when f is nil, buf is empty or too small.
//
// The leading count covers every populated slot, while records are
// emitted from the first Count slots only, matching the firmware
// encoder. Keep Count in sync with the array to produce a consistent
// frame.
func (f *ServoFrame) Encode(buf []byte) int {
	if f == nil || len(buf) == 0 {
		return 0
	}
	var populated uint8
	for i := 0; i < MaxServos; i++ {
		if f.Servos[i].ID > 0 {
			populated++
		}
	}
	if len(buf) < ServoFrameSize(populated) {
		return 0
	}
	n := int(f.Count)
	if n > MaxServos {
		n = MaxServos
	}
	buf[0] = populated
	size := 1
	for i := 0; i < n; i++ {
		s := &f.Servos[i]
		if s.ID == 0 {
			continue
		}
		buf[size] = s.ID
		binary.BigEndian.PutUint16(buf[size+1:], s.Position)
		binary.BigEndian.PutUint16(buf[size+3:], s.Command)
		buf[size+5] = (s.CommandType&1)<<servoCommandTypeShift |
			(s.Blocked&1)<<servoBlockedShift |
			(s.BlockingMode&1)<<servoBlockingShift |
			s.Color&servoColorMask
		size += servoRecordSize
	}
	return size
}
