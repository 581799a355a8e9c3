// Package ecdict indexes the ECDICT dictionary dump.
//
// The dump is a large CSV with named columns; only three are used here:
// "word", "translation" and "pos". BuildMap streams the dump once and
// aggregates translations and part-of-speech tags per normalized word,
// restricted to a caller-supplied set of terms of interest, so the
// in-memory index stays proportional to the target vocabulary rather
// than to the full dictionary.
package ecdict

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Stats reports one indexing pass over the dictionary source.
type Stats struct {
	Records int // data records scanned
	Kept    int // matched records with a usable translation
	Terms   int // distinct terms in the resulting map
}

// entryBuilder accumulates the raw per-term sets before joining.
type entryBuilder struct {
	translations []string
	pos          []string
}

// BuildMap scans the dictionary CSV from r and builds the term map for
// every normalized word present in lookup.
//
// Per record: the word is normalized and dropped unless it is a lookup
// member; the translation is normalized and the whole record is dropped
// when it comes out empty; the pos tag is trimmed and an empty tag is
// simply not collected. Several records for the same normalized word
// (different senses) accumulate into one entry, with both sets kept in
// first-seen order and deduplicated by exact string equality.
//
// Missing columns are read as empty strings; a source without a
// "translation" column therefore yields an empty map, not an error.
func BuildMap(r io.Reader, lookup map[string]struct{}) (*Map, Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var stats Stats

	header, err := reader.Read()
	if err == io.EOF {
		return newMap(nil, nil), stats, nil
	}
	if err != nil {
		return nil, stats, fmt.Errorf("read dictionary header: %w", err)
	}

	wordIdx := columnIndex(header, "word")
	translationIdx := columnIndex(header, "translation")
	posIdx := columnIndex(header, "pos")

	var order []string
	builders := make(map[string]*entryBuilder)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read dictionary record: %w", err)
		}
		stats.Records++

		word := NormalizeTerm(cell(record, wordIdx))
		if word == "" {
			continue
		}
		if _, ok := lookup[word]; !ok {
			continue
		}

		translation := NormalizeTranslation(cell(record, translationIdx))
		if translation == "" {
			continue
		}
		pos := strings.TrimSpace(cell(record, posIdx))

		builder, ok := builders[word]
		if !ok {
			builder = &entryBuilder{}
			builders[word] = builder
			order = append(order, word)
		}
		if !slices.Contains(builder.translations, translation) {
			builder.translations = append(builder.translations, translation)
		}
		if pos != "" && !slices.Contains(builder.pos, pos) {
			builder.pos = append(builder.pos, pos)
		}
		stats.Kept++
	}

	m := newMap(order, builders)
	stats.Terms = m.Len()
	return m, stats, nil
}

// columnIndex returns the position of name in header, or -1.
func columnIndex(header []string, name string) int {
	for i, col := range header {
		if col == name {
			return i
		}
	}
	return -1
}

// cell returns record[idx], treating out-of-range positions as empty.
func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
