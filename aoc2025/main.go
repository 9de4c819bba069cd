package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

var (
	configFile = flag.String("config", "", "ini config file (default "+defaultConfigFile+" if present)")
	inputFile  = flag.String("input", "", "input file; - means stdin (default from config)")
	sampleMode = flag.Bool("sample", false, "solve the puzzle's example instead of the input")
	fgprofFile = flag.String("fgprof", "", "write a wall-clock profile of the solve to this file")

	verbose bool
	debug   bool
)

func init() {
	flag.BoolVar(&verbose, "v", false, "log telemetry and resource usage")
	flag.BoolVar(&debug, "debug", false, "dump parsed input to stderr")
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	if args[0] == "dial" {
		if err := runConsole(); err != nil {
			log.Fatal(err)
		}
		return
	}

	p, ok := puzzles[args[0]]
	if !ok {
		log.Fatalf("unknown solution %q", args[0])
	}
	part, err := parsePart(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] %s <part-1|part-2>\n", os.Args[0], args[0])
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.verbose {
		verbose = true
	}
	if err := run(args[0], p, part, cfg); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range puzzles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <day> <part-1|part-2>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s dial\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where day is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A puzzle is one day's solver along with the example from the puzzle text.
type puzzle struct {
	solve  func(r io.Reader, part int) (int64, error)
	sample string
	want   [2]int64 // example answers for part 1 and part 2
}

var puzzles = make(map[string]puzzle)

func register(name string, p puzzle) {
	if _, ok := puzzles[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	puzzles[name] = p
}

var errUnknownPart = errors.New("part must be part-1 or part-2")

func parsePart(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUnknownPart
	}
	switch args[0] {
	case "part-1":
		return 1, nil
	case "part-2":
		return 2, nil
	}
	return 0, errUnknownPart
}

func run(name string, p puzzle, part int, cfg *config) error {
	var r io.Reader
	if *sampleMode {
		r = strings.NewReader(p.sample)
	} else {
		path := *inputFile
		if path == "" {
			path = cfg.inputPath(name)
		}
		f, err := openInput(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if *fgprofFile != "" {
		stop, err := startProfile(*fgprofFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
		}()
	}

	start := time.Now()
	answer, err := p.solve(r, part)
	if err != nil {
		return err
	}
	if verbose {
		log.Println(measure(start))
	}
	if *sampleMode {
		if want := p.want[part-1]; answer != want {
			return fmt.Errorf("sample answer is %d; want %d", answer, want)
		}
	}
	fmt.Println(answer)
	return nil
}

func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func dump(v interface{}) {
	if debug {
		pretty.Fprintf(os.Stderr, "%# v\n", v)
	}
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
