// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"lcf/internal/version"
)

// UsageCommon installs a grouped Usage() handler on fs.
// extra prints tool-specific sections before the flag groups.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – random one-hot slices from FASTA records\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage of %s:\n", name)

		if extra != nil {
			extra(out)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --sequences file        FASTA file (plain or gzip); '-' for STDIN (sequential modes) [*]")
		fmt.Fprintln(out, "      --index file            .fai index for --mode indexed (empty = build in memory)")

		fmt.Fprintln(out, "\nSampling:")
		fmt.Fprintf(out, "      --mode string           sequential | repeated | indexed [%s]\n", def("mode"))
		fmt.Fprintf(out, "      --slice-size int        Symbols per slice [%s]\n", def("slice-size"))
		fmt.Fprintf(out, "      --samples int           Slices per record (repeated, indexed) [%s]\n", def("samples"))
		fmt.Fprintf(out, "      --cycle                 Start over after the last record (needs --limit) [%s]\n", def("cycle"))
		fmt.Fprintf(out, "      --limit int             Stop after N steps (0 = until exhausted) [%s]\n", def("limit"))
		fmt.Fprintln(out, "      --get list              Logical indices to fetch (indexed; repeatable, comma-separated)")
		fmt.Fprintf(out, "      --seed int              Seed for reproducible offsets (0 = random) [%s]\n", def("seed"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --output string         text | fasta | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --onehot                Include one-hot vectors (json, jsonl) [%s]\n", def("onehot"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --count                 Print the number of records ≥ --slice-size and exit [%s]\n", def("count"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --quiet                 Suppress warnings and the summary line [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
