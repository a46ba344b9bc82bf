package frames

// IOFrame is the decoded form of an IO frame. Tirette is non-zero when
// the start pull is in place.
type IOFrame struct {
	Tirette     uint8
	ParseFailed bool
}

// IOFrameSize computes the exact frame length. An IO frame is the raw
// tirette state, one byte.
func IOFrameSize() int {
	return 1
}

// DecodeIOFrame parses an IO frame. The first byte is taken verbatim as
// the tirette state.
func DecodeIOFrame(data []byte) (f IOFrame) {
	if len(data) == 0 {
		f.ParseFailed = true
		return
	}
	f.Tirette = data[0]
	return
}

// Encode writes the frame into buf and returns the number of bytes
// written, or 0 when f is nil or buf is empty.
func (f *IOFrame) Encode(buf []byte) int {
	if f == nil || len(buf) == 0 {
		return 0
	}
	buf[0] = f.Tirette
	return 1
}
