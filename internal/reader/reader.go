package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vegasq/csvcat/internal/table"
)

// FileColumn is added to every row of a multi-file read
const FileColumn = "_file"

// maxFiles caps the number of files a glob pattern may expand to
const maxFiles = 1000

// ErrHeaderMismatch is returned when files of a multi-file read disagree on
// their columns
var ErrHeaderMismatch = errors.New("files have different columns")

// Options controls how files are parsed
type Options struct {
	// Delimiter for delimited text. Zero means ',' or '\t' for .tsv files.
	Delimiter rune
}

// ReadFile reads a single file, or every file matching a glob pattern.
//
// A path that names an existing file is read as is, even when it contains
// wildcard characters such as "report[2024].csv".
func ReadFile(path string, opts Options) (*table.Table, error) {
	if strings.ContainsAny(path, "*?[") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return ReadMultipleFiles(path, opts)
		}
	}
	return readSingleFile(path, opts)
}

func readSingleFile(path string, opts Options) (*table.Table, error) {
	compression, inner := DetectCompression(path)
	ext := strings.ToLower(filepath.Ext(inner))

	if ext == ".parquet" {
		if compression != CompressionNone {
			return nil, fmt.Errorf("%s: %s compressed parquet is not supported", path, compression)
		}
		return ReadParquet(path)
	}

	delimiter := opts.Delimiter
	if delimiter == 0 && ext == ".tsv" {
		delimiter = '\t'
	}

	rc, err := openDecompressed(path, compression)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return ReadCSV(rc, delimiter)
}

// ReadMultipleFiles reads all files matching a glob pattern.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// Files are read in lexical order. Each row is tagged with a "_file" column
// holding its source path. Returns an error if no files match, if any file
// fails to read, or if the files do not share a header.
func ReadMultipleFiles(pattern string, opts Options) (*table.Table, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var (
		columns []string
		rows    []table.Row
	)
	for _, filePath := range matches {
		tbl, err := readSingleFile(filePath, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		if columns == nil {
			if tbl.HasColumn(FileColumn) {
				return nil, fmt.Errorf("%s: column %q is reserved for multi-file reads", filePath, FileColumn)
			}
			columns = tbl.Columns
		} else if !slices.Equal(columns, tbl.Columns) {
			return nil, fmt.Errorf("%w: %s has %v, expected %v", ErrHeaderMismatch, filePath, tbl.Columns, columns)
		}

		for _, row := range tbl.Rows {
			tagged := make(table.Row, len(row)+1)
			for k, v := range row {
				tagged[k] = v
			}
			tagged[FileColumn] = filePath
			rows = append(rows, tagged)
		}
	}

	return table.New(append(slices.Clone(columns), FileColumn), rows), nil
}
