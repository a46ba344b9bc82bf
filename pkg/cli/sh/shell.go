// Package sh provides the ishell backed frame inspection shell.
package sh

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotek/frames.go/pkg/l0/frames"
	"github.com/robotek/frames.go/pkg/l1/actuators"
)

// Shell wraps ishell with frame codec commands.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell *ishell.Shell
}

const (
	shellKey = "$shell"
	prompt   = "frames > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&DecodeCmd,
		&EncodeCmd,
		&SizeCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New() *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell: ishell.New(),
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Print renders a decoded value according to the output mode.
func (s *Shell) Print(c *ishell.Context, v interface{}) error {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return err
		}
		c.Println(string(out))
		return nil
	}
	c.Printf("%+v\n", v)
	return nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// ParseHex parses hex byte arguments, spaces allowed between bytes.
func ParseHex(args []string) ([]byte, error) {
	return hex.DecodeString(strings.Join(args, ""))
}

func decodeFrame(frameType string, raw []byte) (interface{}, error) {
	switch frameType {
	case "servo":
		f := frames.DecodeServoFrame(raw)
		return actuators.ServoGroupFromFrame(&f)
	case "motor":
		f := frames.DecodeMotorFrame(raw)
		return actuators.MotorGroupFromFrame(&f)
	case "io":
		f := frames.DecodeIOFrame(raw)
		return actuators.IOFromFrame(&f)
	case "avoidance":
		f := frames.DecodeAvoidanceFrame(raw)
		if f.ParseFailed {
			return nil, actuators.ErrParseFailed
		}
		return &f, nil
	case "moving":
		f := frames.DecodeMovingFrame(raw)
		if f.ParseFailed {
			return nil, actuators.ErrParseFailed
		}
		return &f, nil
	}
	return nil, fmt.Errorf("unknown frame type %q", frameType)
}

func encodeFrame(frameType, doc string) ([]byte, error) {
	switch frameType {
	case "servo":
		var g actuators.ServoGroup
		if err := json.Unmarshal([]byte(doc), &g); err != nil {
			return nil, err
		}
		return g.Bytes()
	case "motor":
		var g actuators.MotorGroup
		if err := json.Unmarshal([]byte(doc), &g); err != nil {
			return nil, err
		}
		return g.Bytes()
	case "io":
		var state actuators.IO
		if err := json.Unmarshal([]byte(doc), &state); err != nil {
			return nil, err
		}
		return state.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown frame type %q", frameType)
}

func frameSize(frameType string, counts []string) (int, error) {
	nums := make([]uint8, len(counts))
	for i, arg := range counts {
		n, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return 0, err
		}
		nums[i] = uint8(n)
	}
	switch frameType {
	case "servo":
		if len(nums) != 1 {
			return 0, fmt.Errorf("usage: size servo COUNT")
		}
		return frames.ServoFrameSize(nums[0]), nil
	case "motor":
		if len(nums) != 3 {
			return 0, fmt.Errorf("usage: size motor CONTROLLED UNCONTROLLED BRUSHLESS")
		}
		return frames.MotorFrameSize(nums[0], nums[1], nums[2]), nil
	case "io":
		if len(nums) != 0 {
			return 0, fmt.Errorf("usage: size io")
		}
		return frames.IOFrameSize(), nil
	}
	return 0, fmt.Errorf("unknown frame type %q", frameType)
}

var (
	// DecodeCmd decodes a hex frame and prints the typed state.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"d"},
		Help:    "TYPE HEXBYTES",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("usage: decode TYPE HEXBYTES"))
				return
			}
			raw, err := ParseHex(c.Args[1:])
			if err != nil {
				c.Err(err)
				return
			}
			v, err := decodeFrame(c.Args[0], raw)
			if err != nil {
				c.Err(err)
				return
			}
			ShellFrom(c).Print(c, v)
		},
	}

	// EncodeCmd builds a frame from a JSON document and prints it in hex.
	EncodeCmd = ishell.Cmd{
		Name:    "encode",
		Aliases: []string{"e"},
		Help:    "TYPE JSON",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("usage: encode TYPE JSON"))
				return
			}
			raw, err := encodeFrame(c.Args[0], strings.Join(c.Args[1:], " "))
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(hex.EncodeToString(raw))
		},
	}

	// SizeCmd prints the exact frame length for given record counts.
	SizeCmd = ishell.Cmd{
		Name:    "size",
		Aliases: []string{"s"},
		Help:    "TYPE [COUNT ...]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("usage: size TYPE [COUNT ...]"))
				return
			}
			n, err := frameSize(c.Args[0], c.Args[1:])
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(n)
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New().Run(flag.Args()...)
}
