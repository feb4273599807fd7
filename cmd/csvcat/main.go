package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vegasq/csvcat/internal/output"
	"github.com/vegasq/csvcat/internal/query"
	"github.com/vegasq/csvcat/internal/reader"
	"github.com/vegasq/csvcat/internal/table"
)

// config holds the parsed command line
type config struct {
	file      string
	where     string
	orderBy   string
	aggregate string
	format    string
	delimiter rune
	limit     int
	maxWidth  int
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		printError(stderr, err)
		return 1
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(stderr, "csvcat: ", 0)
	}

	formatter, err := output.NewFormatter(cfg.format, stdout)
	if err != nil {
		printError(stderr, fmt.Errorf("%w (supported: %s)", err, strings.Join(output.Formats, ", ")))
		return 1
	}
	if tf, ok := formatter.(*output.TableFormatter); ok {
		tf.MaxWidth = cfg.maxWidth
	}

	tbl, err := reader.ReadFile(cfg.file, reader.Options{Delimiter: cfg.delimiter})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			printError(stderr, fmt.Errorf("file '%s' not found", cfg.file))
		} else {
			printError(stderr, err)
		}
		return 1
	}
	logger.Printf("loaded %d rows, %d columns from %s", tbl.Len(), len(tbl.Columns), cfg.file)

	result, err := query.Execute(tbl, query.Plan{
		Where:     cfg.where,
		OrderBy:   cfg.orderBy,
		Aggregate: cfg.aggregate,
		Limit:     cfg.limit,
	}, logger)
	if err != nil {
		printError(stderr, err)
		// List available columns to help user
		if errors.Is(err, query.ErrColumnNotFound) {
			printColumns(stderr, tbl)
		}
		return 1
	}

	if err := formatter.Format(result); err != nil {
		printError(stderr, fmt.Errorf("formatting output: %w", err))
		return 1
	}

	return 0
}

// parseFlags parses args into a config and validates flag values
func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("csvcat", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg       config
		delimiter string
	)
	fs.StringVar(&cfg.file, "file", "", "Path to the input file (csv, tsv, parquet; optionally .gz/.zst/.lz4/.br)")
	fs.StringVar(&cfg.where, "where", "", `Filter rows: "column<op>value" with op one of ==, !=, <, >, <=, >=`)
	fs.StringVar(&cfg.orderBy, "order-by", "", `Sort rows: "column=asc" or "column=desc"`)
	fs.StringVar(&cfg.aggregate, "aggregate", "", `Aggregate a column: "column=op" with op one of sum, avg, count, min, max`)
	fs.StringVar(&cfg.format, "f", "table", "Output format: "+strings.Join(output.Formats, ", "))
	fs.StringVar(&delimiter, "d", "", `Field delimiter (default ",", tab for .tsv; "tab" or "\t" for tab)`)
	fs.IntVar(&cfg.limit, "limit", 0, "Limit number of rows (0 = unlimited)")
	fs.IntVar(&cfg.maxWidth, "max-width", 0, "Truncate table cells to this display width (0 = unlimited)")
	fs.BoolVar(&cfg.verbose, "v", false, "Log each processing step to stderr")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: csvcat [options] <file>\n\n")
		fmt.Fprintf(out, "Filter, sort and aggregate a CSV file and print the result as a table.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  csvcat phones.csv\n")
		fmt.Fprintf(out, "  csvcat -where \"price>300\" -order-by \"price=asc\" phones.csv\n")
		fmt.Fprintf(out, "  csvcat -where \"brand==xiaomi\" -aggregate \"price=avg\" phones.csv\n")
		fmt.Fprintf(out, "  csvcat -f csv -limit 10 \"exports/*.csv.gz\"\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Positional file argument, used when -file is not given
	if cfg.file == "" && fs.NArg() > 0 {
		cfg.file = fs.Arg(0)
	}
	if cfg.file == "" {
		fs.Usage()
		return nil, errors.New("missing input file argument")
	}

	if cfg.limit < 0 {
		return nil, fmt.Errorf("-limit must be non-negative, got %d", cfg.limit)
	}
	if cfg.maxWidth < 0 {
		return nil, fmt.Errorf("-max-width must be non-negative, got %d", cfg.maxWidth)
	}

	d, err := parseDelimiter(delimiter)
	if err != nil {
		return nil, err
	}
	cfg.delimiter = d

	return &cfg, nil
}

// parseDelimiter converts the -d flag to a rune; empty means auto
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("-d must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// printError writes "Error: <message>", styling the prefix when w is a terminal
func printError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)
	fmt.Fprintf(w, "%s %v\n", style.Render("Error:"), err)
}

func printColumns(w io.Writer, tbl *table.Table) {
	if len(tbl.Columns) == 0 {
		return
	}
	fmt.Fprintf(w, "\nAvailable columns: %s\n", strings.Join(tbl.Columns, ", "))
}
