package main

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

var exampleRanges = []idRange{
	{11, 22},
	{95, 115},
	{998, 1012},
	{1188511880, 1188511890},
	{222220, 222224},
	{1698522, 1698528},
	{446443, 446449},
	{38593856, 38593862},
}

func TestSumInvalidRepeatsTwice(t *testing.T) {
	got := sumInvalid(exampleRanges, repeatsTwice)
	if want := int64(1227775554); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestSumRepeatedBlocks(t *testing.T) {
	ranges := append(exampleRanges[:len(exampleRanges):len(exampleRanges)],
		idRange{565653, 565659},
		idRange{824824821, 824824827},
		idRange{2121212118, 2121212124},
	)
	got := sumRepeatedBlocks(ranges)
	if want := int64(4174379265); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestRepeats(t *testing.T) {
	for _, tt := range []struct {
		id         int64
		wantTwice  bool
		wantBlocks bool
	}{
		{1, false, false},
		{11, true, true},
		{12, false, false},
		{111, false, true},
		{1010, true, true},
		{1111, true, true},
		{1212, true, true},
		{123123, true, true},
		{121212, false, true},
		{1188511885, true, true},
		{824824824, false, true},
		{2121212121, false, true},
		{1698522, false, false},
		{101, false, false},
	} {
		digits := []byte(strconv.FormatInt(tt.id, 10))
		if got := repeatsTwice(digits); got != tt.wantTwice {
			t.Errorf("repeatsTwice(%d): got %t; want %t", tt.id, got, tt.wantTwice)
		}
		var st blockStats
		if got := repeatsBlock(digits, &st); got != tt.wantBlocks {
			t.Errorf("repeatsBlock(%d): got %t; want %t", tt.id, got, tt.wantBlocks)
		}
	}
}

// Every ID that repeats twice also repeats in blocks, and no ID with an
// odd number of digits repeats twice.
func TestRepeatsBlockCoversRepeatsTwice(t *testing.T) {
	var b []byte
	for id := int64(0); id < 200000; id++ {
		b = strconv.AppendInt(b[:0], id, 10)
		twice := repeatsTwice(b)
		if twice && len(b)%2 != 0 {
			t.Fatalf("repeatsTwice(%d) = true for an odd number of digits", id)
		}
		var st blockStats
		if twice && !repeatsBlock(b, &st) {
			t.Fatalf("repeatsTwice(%d) = true but repeatsBlock = false", id)
		}
	}
	sum1 := sumInvalid(exampleRanges, repeatsTwice)
	sum2 := sumRepeatedBlocks(exampleRanges)
	if sum2 < sum1 {
		t.Errorf("block sum %d is less than half sum %d", sum2, sum1)
	}
}

func TestBlockStats(t *testing.T) {
	for _, tt := range []struct {
		id   int64
		want blockStats
	}{
		{7, blockStats{0, 0}},
		{1111, blockStats{attempts: 2, checks: 2}},
		{1234, blockStats{attempts: 6, checks: 4}},
		{121212, blockStats{attempts: 2 + 3, checks: 2 + 3}},
	} {
		var st blockStats
		repeatsBlock([]byte(strconv.FormatInt(tt.id, 10)), &st)
		if st != tt.want {
			t.Errorf("repeatsBlock(%d) stats: got %+v; want %+v", tt.id, st, tt.want)
		}
	}
}

func TestBlockStatsString(t *testing.T) {
	for _, tt := range []struct {
		st   blockStats
		want string
	}{
		{blockStats{}, "0/0 (0%)"},
		{blockStats{attempts: 6, checks: 4}, "4/6 (66%)"},
		{blockStats{attempts: 2000000, checks: 1000000}, "1,000,000/2,000,000 (50%)"},
	} {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("got %q; want %q", got, tt.want)
		}
	}
}

func TestParseRanges(t *testing.T) {
	got, err := parseRanges(strings.NewReader("11-22,95-115,007-010,\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []idRange{{11, 22}, {95, 115}, {7, 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v\n%s", got, want, strings.Join(pretty.Diff(got, want), "\n"))
	}
}

func TestParseRangesError(t *testing.T) {
	for _, in := range []string{
		"11-22,95",
		"5-3",
		"a-5",
		"5-b",
		"1-2-3",
	} {
		if _, err := parseRanges(strings.NewReader(in)); err == nil {
			t.Errorf("parseRanges(%q): got nil error", in)
		}
	}
}

func TestSumInvalidSingleID(t *testing.T) {
	got := sumInvalid([]idRange{{1212, 1212}}, repeatsTwice)
	if want := int64(1212); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func BenchmarkSumRepeatedBlocks(b *testing.B) {
	ranges := []idRange{{1188511880, 1188611880}}
	for i := 0; i < b.N; i++ {
		sumRepeatedBlocks(ranges)
	}
}
