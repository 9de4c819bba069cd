package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

func init() {
	register("1", puzzle{
		solve:  day1,
		sample: day1Sample,
		want:   [2]int64{3, 6},
	})
}

const day1Sample = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
`

func day1(r io.Reader, part int) (int64, error) {
	rots, err := parseRotations(r)
	if err != nil {
		return 0, err
	}
	dump(rots)
	if part == 1 {
		return countLandings(rots), nil
	}
	return countCrossings(rots), nil
}

type direction int8

const (
	left direction = iota
	right
)

func (d direction) String() string {
	if d == left {
		return "L"
	}
	return "R"
}

type rotation struct {
	dir    direction
	clicks int64
}

func (r rotation) String() string {
	return fmt.Sprintf("%s%d", r.dir, r.clicks)
}

func parseRotation(s string) (rotation, error) {
	var r rotation
	if s == "" {
		return r, errors.New("empty rotation")
	}
	switch s[0] {
	case 'L':
		r.dir = left
	case 'R':
		r.dir = right
	default:
		return r, fmt.Errorf("unknown direction %q", s[0])
	}
	n, err := strconv.ParseUint(s[1:], 10, 63)
	if err != nil {
		return r, fmt.Errorf("bad click count in %q: %w", s, err)
	}
	r.clicks = int64(n)
	return r, nil
}

func parseRotations(r io.Reader) ([]rotation, error) {
	var rots []rotation
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rot, err := parseRotation(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rots = append(rots, rot)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rots, nil
}

const (
	dialSize  = 100
	dialStart = 50
)

// A dial is a safe's combination dial with positions 0 through 99.
type dial struct {
	pos int64
}

func newDial() *dial {
	return &dial{pos: dialStart}
}

// turn applies r and reports whether the dial comes to rest at 0.
func (d *dial) turn(r rotation) bool {
	delta := r.clicks % dialSize
	if r.dir == left {
		delta = -delta
	}
	d.pos = mod(d.pos+delta, dialSize)
	return d.pos == 0
}

// sweep applies r and returns how many times the dial points at 0 during
// the rotation: once per full revolution, plus once if the rest of the
// rotation reaches 0.
//
// A left rotation that starts at 0 doesn't count the starting position.
func (d *dial) sweep(r rotation) int64 {
	n := r.clicks / dialSize
	rem := r.clicks % dialSize
	if rem == 0 {
		return n
	}
	switch r.dir {
	case right:
		d.pos += rem
		if d.pos >= dialSize {
			d.pos -= dialSize
			n++
		}
	case left:
		if d.pos != 0 && rem >= d.pos {
			n++
		}
		d.pos = (dialSize + d.pos - rem) % dialSize
	}
	return n
}

func countLandings(rots []rotation) int64 {
	d := newDial()
	var n int64
	for _, r := range rots {
		if d.turn(r) {
			n++
		}
	}
	return n
}

func countCrossings(rots []rotation) int64 {
	d := newDial()
	var n int64
	for _, r := range rots {
		n += d.sweep(r)
	}
	return n
}

// mod is a modulo whose result has the sign of b.
func mod[T constraints.Signed](a, b T) T {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
