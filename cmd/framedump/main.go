package main

//go-build: CGO_ENABLED=0

// framedump decodes frames in bulk, one per input line:
//
//	TYPE HEXBYTES
//
// e.g. "servo 010303e803e82d". Each decoded frame is printed as one
// JSON object. Malformed lines are reported and skipped, so a capture
// with occasional corrupt frames still dumps the rest.

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/robotek/frames.go/pkg/l0/frames"
	"github.com/robotek/frames.go/pkg/l1/actuators"
)

func decodeLine(line string) (interface{}, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("want TYPE HEXBYTES, got %q", line)
	}
	raw, err := hex.DecodeString(strings.Join(fields[1:], ""))
	if err != nil {
		return nil, err
	}
	switch fields[0] {
	case "servo":
		f := frames.DecodeServoFrame(raw)
		return actuators.ServoGroupFromFrame(&f)
	case "motor":
		f := frames.DecodeMotorFrame(raw)
		return actuators.MotorGroupFromFrame(&f)
	case "io":
		f := frames.DecodeIOFrame(raw)
		return actuators.IOFromFrame(&f)
	}
	return nil, fmt.Errorf("unknown frame type %q", fields[0])
}

func dump(name string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for num := 1; scanner.Scan(); num++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := decodeLine(line)
		if err != nil {
			glog.Errorf("%s:%d: %v", name, num, err)
			continue
		}
		out, err := json.Marshal(v)
		if err != nil {
			glog.Errorf("%s:%d: %v", name, num, err)
			continue
		}
		fmt.Println(string(out))
	}
	if err := scanner.Err(); err != nil {
		glog.Errorf("%s: %v", name, err)
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() == 0 {
		dump("stdin", os.Stdin)
		return
	}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			glog.Exitf("%v", err)
		}
		dump(name, f)
		f.Close()
	}
}
