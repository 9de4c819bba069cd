package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

func init() {
	register("2", puzzle{
		solve:  day2,
		sample: day2Sample,
		want:   [2]int64{1227775554, 4174379265},
	})
}

const day2Sample = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124\n"

func day2(r io.Reader, part int) (int64, error) {
	ranges, err := parseRanges(r)
	if err != nil {
		return 0, err
	}
	dump(ranges)
	if part == 1 {
		return sumInvalid(ranges, repeatsTwice), nil
	}
	return sumRepeatedBlocks(ranges), nil
}

// An idRange is an inclusive range of product IDs.
type idRange struct {
	from, to int64
}

func (rg idRange) String() string {
	return fmt.Sprintf("%d-%d", rg.from, rg.to)
}

func parseRange(s string) (idRange, error) {
	var rg idRange
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return rg, fmt.Errorf("malformed range %q", s)
	}
	n0, err := strconv.ParseUint(from, 10, 63)
	if err != nil {
		return rg, fmt.Errorf("bad start of range %q: %w", s, err)
	}
	n1, err := strconv.ParseUint(to, 10, 63)
	if err != nil {
		return rg, fmt.Errorf("bad end of range %q: %w", s, err)
	}
	if n0 > n1 {
		return rg, fmt.Errorf("range %q ends before it starts", s)
	}
	rg.from, rg.to = int64(n0), int64(n1)
	return rg, nil
}

func parseRanges(r io.Reader) ([]idRange, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var ranges []idRange
	for _, field := range strings.Split(string(b), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		rg, err := parseRange(field)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rg)
	}
	return ranges, nil
}

// sumInvalid adds up every ID in ranges whose decimal digits are invalid.
func sumInvalid(ranges []idRange, invalid func(digits []byte) bool) int64 {
	var sum int64
	var b []byte
	for _, rg := range ranges {
		for id := rg.from; ; id++ {
			b = strconv.AppendInt(b[:0], id, 10)
			if invalid(b) {
				sum += id
			}
			if id == rg.to {
				break
			}
		}
	}
	return sum
}

// repeatsTwice reports whether digits is some sequence repeated exactly twice.
func repeatsTwice(digits []byte) bool {
	if len(digits)%2 != 0 {
		return false
	}
	half := len(digits) / 2
	return bytes.Equal(digits[:half], digits[half:])
}

// blockStats counts the work done by repeatsBlock.
type blockStats struct {
	attempts int64 // blocks in every candidate partition
	checks   int64 // blocks actually examined
}

func (st blockStats) String() string {
	var pct int64
	if st.attempts > 0 {
		pct = int64(float64(st.checks) / float64(st.attempts) * 100)
	}
	return fmt.Sprintf("%s/%s (%d%%)", humanize.Comma(st.checks), humanize.Comma(st.attempts), pct)
}

// repeatsBlock reports whether digits is some sequence repeated at least
// twice. Block sizes are tried from largest to smallest.
func repeatsBlock(digits []byte, st *blockStats) bool {
	n := len(digits)
sizeLoop:
	for size := n / 2; size > 0; size-- {
		if n%size != 0 {
			continue
		}
		st.attempts += int64(n / size)
		first := digits[:size]
		st.checks++
		for i := size; i < n; i += size {
			st.checks++
			if !bytes.Equal(digits[i:i+size], first) {
				continue sizeLoop
			}
		}
		return true
	}
	return false
}

func sumRepeatedBlocks(ranges []idRange) int64 {
	var sum int64
	for _, rg := range ranges {
		var st blockStats
		sum += sumInvalid([]idRange{rg}, func(digits []byte) bool {
			return repeatsBlock(digits, &st)
		})
		if verbose {
			log.Printf("%s: %s", rg, st)
		}
	}
	return sum
}
