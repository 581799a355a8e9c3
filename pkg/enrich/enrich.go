// Package enrich joins the parsed vocabulary table with the ECDICT term
// map and writes the two output files: the extended CSV and the JSON
// lookup map.
package enrich

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"ecdictenrich/pkg/ecdict"
	"ecdictenrich/pkg/vocab"
)

// HeaderExtension holds the two column names appended to the source
// header, in output order.
var HeaderExtension = []string{"ecdict_zh", "ecdict_pos"}

// LookupTerms collects the set of normalized English terms present in
// the table. This set drives the dictionary indexer's filter.
func LookupTerms(t *vocab.Table, englishIdx int) map[string]struct{} {
	lookup := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		lookup[ecdict.NormalizeTerm(row[englishIdx])] = struct{}{}
	}
	return lookup
}

// Extend appends the dictionary columns to every row, preserving the
// original row order. Rows whose term is absent from the map get two
// empty cells, so every output row has exactly len(header)+2 cells.
func Extend(t *vocab.Table, englishIdx int, m *ecdict.Map) (header []string, rows [][]string) {
	header = append(slices.Clone(t.Header), HeaderExtension...)

	rows = make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		entry, _ := m.Get(ecdict.NormalizeTerm(row[englishIdx]))
		out := append(slices.Clone(row), entry.Zh, entry.Pos)
		rows = append(rows, out)
	}
	return header, rows
}

// WriteCSV writes header and rows to path, overwriting any previous run.
func WriteCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteJSON writes the term map to path as pretty-printed UTF-8 JSON,
// creating parent directories as needed. Non-ASCII text is preserved
// literally and keys keep their insertion order.
func WriteJSON(path string, m *ecdict.Map) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %q: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
