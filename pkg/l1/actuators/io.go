package actuators

import "github.com/robotek/frames.go/pkg/l0/frames"

// IO is the typed state of the digital inputs. Tirette is true while
// the start pull is in place.
type IO struct {
	Tirette bool `json:"tirette"`
}

// IOFromFrame converts a decoded frame. It refuses frames with the
// parse-failure flag set.
func IOFromFrame(f *frames.IOFrame) (*IO, error) {
	if f == nil || f.ParseFailed {
		return nil, ErrParseFailed
	}
	return &IO{Tirette: f.Tirette != 0}, nil
}

// Frame builds a wire frame.
func (io *IO) Frame() frames.IOFrame {
	var f frames.IOFrame
	if io.Tirette {
		f.Tirette = 1
	}
	return f
}

// Bytes encodes the state into a freshly allocated frame.
func (io *IO) Bytes() []byte {
	f := io.Frame()
	buf := make([]byte, frames.IOFrameSize())
	f.Encode(buf)
	return buf
}
