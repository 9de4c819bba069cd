package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
)

func runConsole() error {
	c := newConsole()
	l, err := readline.NewEx(&readline.Config{
		Prompt:      c.prompt(),
		HistoryFile: filepath.Join(os.TempDir(), "aoc2025-dial.txt"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			log.Println("Readline error:", err)
			continue
		}
		out, err := c.exec(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
		l.SetPrompt(c.prompt())
	}
}

// A console turns a pair of dials by hand, one counted by landings and the
// other by crossings. Both policies leave the dial at the same position.
type console struct {
	landing   *dial
	crossing  *dial
	landings  int64
	crossings int64
}

func newConsole() *console {
	return &console{landing: newDial(), crossing: newDial()}
}

func (c *console) prompt() string {
	return fmt.Sprintf("[%02d] > ", c.landing.pos)
}

// exec applies the rotations in line, which are separated by spaces or
// commas. The line "reset" puts the dials back in their starting state.
func (c *console) exec(line string) (string, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return "", nil
	}
	if len(fields) == 1 && fields[0] == "reset" {
		*c = *newConsole()
		return c.status(), nil
	}
	rots := make([]rotation, len(fields))
	for i, field := range fields {
		r, err := parseRotation(field)
		if err != nil {
			return "", err
		}
		rots[i] = r
	}
	for _, r := range rots {
		if c.landing.turn(r) {
			c.landings++
		}
		c.crossings += c.crossing.sweep(r)
	}
	return c.status(), nil
}

func (c *console) status() string {
	return fmt.Sprintf("position %d, landed on 0: %d, passed 0: %d", c.landing.pos, c.landings, c.crossings)
}
