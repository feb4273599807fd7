// Package reader loads tabular files into a table.Table.
//
// Supported inputs:
//   - Delimited text (CSV by default, TSV for .tsv files, any single-rune
//     delimiter through Options). The first record is the header.
//   - Apache Parquet files (.parquet), read with segmentio/parquet-go. Leaf
//     columns become text columns named by their dotted path.
//   - Any of the above compressed with gzip (.gz), zstd (.zst, .zstd),
//     lz4 (.lz4) or brotli (.br). Compressed parquet is not supported because
//     parquet needs random access to the file.
//
// Cell values are kept as text; numeric interpretation happens later in the
// query package.
//
// # Basic Usage
//
//	tbl, err := reader.ReadFile("phones.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tbl.Columns, tbl.Len())
//
// # Multi-file Reads
//
// A path containing glob wildcards reads every matching file. All files must
// share the same header; each row gets a "_file" column with its source path:
//
//	tbl, err := reader.ReadFile("exports/2024-*.csv.gz", reader.Options{})
package reader
