// Package input provides the input sources a session can be driven by.
package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is one tick of scripted input.
type Frame struct {
	Horizontal float64
	Jump       bool
	Shoot      bool
}

// Hold repeats f for n ticks.
func Hold(f Frame, n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = f
	}
	return out
}

// Script replays a fixed list of frames, one per Poll. After the last frame
// it reads as no input. JumpStarted is derived from the jump button going
// down between consecutive frames, ShootStarted likewise.
type Script struct {
	frames []Frame
	index  int
	cur    Frame
	prev   Frame
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Append adds frames to the end of the script.
func (s *Script) Append(frames ...Frame) {
	s.frames = append(s.frames, frames...)
}

func (s *Script) Poll() {
	s.prev = s.cur
	if s.index < len(s.frames) {
		s.cur = s.frames[s.index]
		s.index++
		return
	}
	s.cur = Frame{}
}

// Done reports whether every frame has been played.
func (s *Script) Done() bool {
	return s.index >= len(s.frames)
}

func (s *Script) HorizontalMovement() float64 {
	return s.cur.Horizontal
}

func (s *Script) JumpStarted() bool {
	return s.cur.Jump && !s.prev.Jump
}

func (s *Script) JumpHeld() bool {
	return s.cur.Jump
}

func (s *Script) ShootStarted() bool {
	return s.cur.Shoot && !s.prev.Shoot
}

var scriptActions = map[string]func(*Frame){
	"idle":  func(*Frame) {},
	"left":  func(f *Frame) { f.Horizontal = -1 },
	"right": func(f *Frame) { f.Horizontal = 1 },
	"jump":  func(f *Frame) { f.Jump = true },
	"shoot": func(f *Frame) { f.Shoot = true },
}

// parseAction combines "+"-joined actions such as "right+jump+shoot".
func parseAction(name string) (Frame, error) {
	var f Frame
	for _, part := range strings.Split(strings.ToLower(name), "+") {
		apply, ok := scriptActions[part]
		if !ok {
			return Frame{}, fmt.Errorf("unknown input action %q", name)
		}
		apply(&f)
	}
	return f, nil
}

// ParseScript reads a comma or space separated list of "action[:ticks]"
// steps, e.g. "right:30,right+jump:10,shoot,idle:5". Actions are idle, left,
// right, jump and shoot, combined with "+".
func ParseScript(text string) (*Script, error) {
	s := NewScript()
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	for _, field := range fields {
		name, count, hasCount := strings.Cut(field, ":")
		frame, err := parseAction(name)
		if err != nil {
			return nil, err
		}
		n := 1
		if hasCount {
			n, err = strconv.Atoi(count)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid tick count in %q", field)
			}
		}
		s.Append(Hold(frame, n)...)
	}
	return s, nil
}
