package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/helixkg/helix/internal/model"
)

// RecordSource yields publication records in input order. Next returns io.EOF
// when the source is exhausted.
type RecordSource interface {
	Next() (model.Record, error)
	Close() error
}

// Columns names the header columns that map to the record fields. Matching is
// case-insensitive; a missing column yields "" for that field on every row.
type Columns struct {
	Title    string
	Abstract string
}

// Open selects a reader by file extension: .xlsx/.xls via excelize, anything
// else treated as CSV.
func Open(path string, cols Columns) (RecordSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return openXLSX(path, cols)
	default:
		return openCSV(path, cols)
	}
}

type csvSource struct {
	file     *os.File
	reader   *csv.Reader
	titleIdx int
	absIdx   int
}

func openCSV(path string, cols Columns) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input '%s': %w", path, err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged; missing cells default to ""

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read CSV header from '%s': %w", path, err)
	}

	titleIdx, absIdx := headerIndexes(header, cols)
	return &csvSource{file: f, reader: r, titleIdx: titleIdx, absIdx: absIdx}, nil
}

func (s *csvSource) Next() (model.Record, error) {
	row, err := s.reader.Read()
	if err == io.EOF {
		return model.Record{}, io.EOF
	}
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to read CSV row: %w", err)
	}
	return recordFromRow(row, s.titleIdx, s.absIdx), nil
}

func (s *csvSource) Close() error {
	return s.file.Close()
}

type xlsxSource struct {
	rows     [][]string
	pos      int
	titleIdx int
	absIdx   int
}

func openXLSX(path string, cols Columns) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook '%s': %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook '%s' has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet '%s' is empty", sheets[0])
	}

	titleIdx, absIdx := headerIndexes(rows[0], cols)
	return &xlsxSource{rows: rows[1:], titleIdx: titleIdx, absIdx: absIdx}, nil
}

func (s *xlsxSource) Next() (model.Record, error) {
	if s.pos >= len(s.rows) {
		return model.Record{}, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return recordFromRow(row, s.titleIdx, s.absIdx), nil
}

func (s *xlsxSource) Close() error { return nil }

func headerIndexes(header []string, cols Columns) (titleIdx, absIdx int) {
	titleIdx, absIdx = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(cols.Title):
			titleIdx = i
		case strings.ToLower(cols.Abstract):
			absIdx = i
		}
	}
	return titleIdx, absIdx
}

func recordFromRow(row []string, titleIdx, absIdx int) model.Record {
	return model.Record{
		Title:    cell(row, titleIdx),
		Abstract: cell(row, absIdx),
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
