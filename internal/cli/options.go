// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"lcf/internal/clibase"
)

// Sampling modes
const (
	ModeSequential = "sequential"
	ModeRepeated   = "repeated"
	ModeIndexed    = "indexed"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFile   string
	IndexFile string // indexed mode; "" builds the index in memory

	// Sampling
	Mode      string
	SliceSize int
	Samples   int
	Cycle     bool
	Limit     int   // max Next calls (0 = until exhausted)
	Get       []int // indexed mode: logical indices to fetch instead of iterating
	Seed      uint64

	// Output
	Output string
	Header bool // true unless --no-header
	OneHot bool
	Count  bool
	Quiet  bool

	Version  bool
	Examples bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, nil)
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.SeqFile, "sequences", "", "FASTA file (plain, gzip, or '-' for sequential modes) [*]")
	fs.StringVar(&opt.IndexFile, "index", "", "FASTA .fai index for --mode indexed (empty = build in memory) []")

	// Sampling
	fs.StringVar(&opt.Mode, "mode", ModeSequential, "sampler: sequential | repeated | indexed ["+ModeSequential+"]")
	fs.IntVar(&opt.SliceSize, "slice-size", 0, "symbols per slice [*]")
	fs.IntVar(&opt.Samples, "samples", 1, "slices per record (repeated, indexed) [1]")
	fs.BoolVar(&opt.Cycle, "cycle", false, "start over after the last record (requires --limit) [false]")
	fs.IntVar(&opt.Limit, "limit", 0, "stop after N steps (0 = until exhausted) [0]")
	var get intSlice
	fs.Var(&get, "get", "indexed mode: logical index to fetch (repeatable or comma-separated)")
	fs.Uint64Var(&opt.Seed, "seed", 0, "seed for reproducible offsets (0 = random) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | fasta | json | jsonl [text]")
	fs.BoolVar(&opt.OneHot, "onehot", false, "json/jsonl: include one-hot vectors [false]")
	fs.BoolVar(&opt.Count, "count", false, "print the number of records at least --slice-size long and exit [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Examples, "examples", false, "print quickstart examples and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	opt.Get = get
	opt.Header = !noHeader

	// Validation
	if opt.SeqFile == "" {
		return opt, errors.New("--sequences is required")
	}
	if opt.SliceSize < 0 {
		return opt, errors.New("--slice-size must be ≥ 0")
	}
	if opt.Count {
		return opt, nil
	}
	switch opt.Mode {
	case ModeSequential, ModeRepeated, ModeIndexed:
	default:
		return opt, fmt.Errorf("invalid --mode %q", opt.Mode)
	}
	if opt.Samples < 1 {
		return opt, errors.New("--samples must be ≥ 1")
	}
	if opt.Limit < 0 {
		return opt, errors.New("--limit must be ≥ 0")
	}
	if opt.Cycle && opt.Limit == 0 && len(opt.Get) == 0 {
		return opt, errors.New("--cycle requires --limit")
	}
	if len(opt.Get) > 0 && opt.Mode != ModeIndexed {
		return opt, errors.New("--get requires --mode indexed")
	}
	if opt.IndexFile != "" && opt.Mode != ModeIndexed {
		return opt, errors.New("--index requires --mode indexed")
	}
	if opt.Mode == ModeIndexed && opt.SeqFile == "-" {
		return opt, errors.New("--mode indexed needs a seekable --sequences file")
	}
	switch opt.Output {
	case "text", "fasta", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// intSlice allows repeatable, comma-separated int flags.
type intSlice []int

func (s *intSlice) String() string {
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (s *intSlice) Set(v string) error {
	for _, f := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("not an integer: %q", f)
		}
		*s = append(*s, n)
	}
	return nil
}
