// The command "ecdictenrich" enriches the TOEIC vocabulary table with
// translations and part-of-speech tags from the ECDICT dictionary dump.
//
// It reads two fixed inputs:
//   - toeic_vocab_processed.csv: the vocabulary being enriched; ragged
//     rows caused by unescaped commas in the Chinese column are repaired,
//   - data/ecdict.csv: the ECDICT dump, streamed once and filtered down
//     to the normalized English terms that actually occur in the
//     vocabulary,
//
// and writes two fixed outputs:
//   - toeic_vocab_ecdict.csv: the source table with two extra columns,
//     "ecdict_zh" and "ecdict_pos",
//   - public/dict/ecdict.json: the term -> {zh, pos} map, pretty-printed
//     with CJK text kept literal.
//
// The tool is a one-shot batch job: it takes no flags, runs to
// completion or fails outright, and prints one "Wrote <path>" line per
// output file.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"ecdictenrich/pkg/ecdict"
	"ecdictenrich/pkg/enrich"
	"ecdictenrich/pkg/vocab"
)

// Fixed input and output locations, relative to the working directory.
const (
	sourceCSVPath  = "toeic_vocab_processed.csv"
	ecdictCSVPath  = "data/ecdict.csv"
	outputCSVPath  = "toeic_vocab_ecdict.csv"
	outputJSONPath = "public/dict/ecdict.json"
)

func main() {
	if err := run(); err != nil {
		failf("%v", err)
	}
}

// run performs the whole batch: parse the vocabulary, index the
// dictionary against its terms, join, and emit both outputs.
func run() error {
	start := time.Now()

	// Both inputs must exist before anything is written.
	if _, err := os.Stat(sourceCSVPath); err != nil {
		return fmt.Errorf("missing source CSV %q: %w", sourceCSVPath, err)
	}
	if _, err := os.Stat(ecdictCSVPath); err != nil {
		return fmt.Errorf("missing ECDICT CSV %q: %w", ecdictCSVPath, err)
	}

	table, err := parseVocabulary(sourceCSVPath)
	if err != nil {
		return err
	}

	englishIdx, err := table.EnglishIndex()
	if err != nil {
		return fmt.Errorf("%s: %w", sourceCSVPath, err)
	}

	dict, stats, err := indexDictionary(ecdictCSVPath, enrich.LookupTerms(table, englishIdx))
	if err != nil {
		return err
	}

	header, rows := enrich.Extend(table, englishIdx, dict)

	if err := enrich.WriteCSV(outputCSVPath, header, rows); err != nil {
		return fmt.Errorf("write %q: %w", outputCSVPath, err)
	}
	if err := enrich.WriteJSON(outputJSONPath, dict); err != nil {
		return fmt.Errorf("write %q: %w", outputJSONPath, err)
	}

	fmt.Fprintf(os.Stderr,
		"Scanned %d dictionary records (kept %d, matched %d terms) against %d vocabulary rows in %.3f seconds\n",
		stats.Records, stats.Kept, stats.Terms, len(table.Rows), time.Since(start).Seconds())

	fmt.Printf("Wrote %s\n", outputCSVPath)
	fmt.Printf("Wrote %s\n", outputJSONPath)
	return nil
}

// parseVocabulary opens and parses the vocabulary table.
func parseVocabulary(path string) (*vocab.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	table, err := vocab.ParseTable(f)
	if err != nil {
		if errors.Is(err, vocab.ErrEmptyHeader) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return table, nil
}

// indexDictionary opens and indexes the dictionary dump against the
// lookup set.
func indexDictionary(path string, lookup map[string]struct{}) (*ecdict.Map, ecdict.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ecdict.Stats{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	dict, stats, err := ecdict.BuildMap(f, lookup)
	if err != nil {
		return nil, stats, fmt.Errorf("scan %q: %w", path, err)
	}
	return dict, stats, nil
}

// failf prints a formatted error message to standard error and exits
// the process with a non-zero status code.
func failf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, "ecdictenrich:", msg)
	os.Exit(1)
}
