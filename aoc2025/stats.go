package main

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
)

type processStats struct {
	elapsed     time.Duration
	cpuUsage    time.Duration // utime+stime; zero if unknown
	maxRSSBytes int64         // zero if unknown
}

func (ps *processStats) String() string {
	s := fmt.Sprintf("elapsed: %s", ps.elapsed.Round(time.Microsecond))
	if ps.cpuUsage > 0 {
		s += fmt.Sprintf(", cpu: %s", ps.cpuUsage.Round(time.Microsecond))
	}
	if ps.maxRSSBytes > 0 {
		s += fmt.Sprintf(", max RSS: %s", humanize.Bytes(uint64(ps.maxRSSBytes)))
	}
	return s
}

// measure reports the resources used by this process since start.
func measure(start time.Time) *processStats {
	ps := &processStats{elapsed: time.Since(start)}
	if err := readUsage(ps); err != nil {
		log.Println("Error reading resource usage:", err)
	}
	return ps
}
