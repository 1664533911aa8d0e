package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ventascli/internal/errors"
)

// ReadWorkbook reads the first non-empty sheet of an Excel file and returns
// the header row plus the data rows as raw strings.
func ReadWorkbook(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, errors.NewStorageError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	var rows [][]string
	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(sheetRows) > 0 {
			rows = sheetRows
			break
		}
	}

	if len(rows) == 0 {
		return nil, nil, errors.NewParsingError("workbook contains no data rows", nil).WithContext("path", path)
	}

	return rows[0], rows[1:], nil
}

// ReadCSV reads a CSV export and returns the header row plus the data rows.
// A UTF-8 BOM on the first header cell is stripped.
func ReadCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.NewStorageError("failed to open CSV file", err).WithContext("path", path)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, errors.NewStorageError("failed to read CSV file", err).WithContext("path", path)
	}

	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.NewParsingError("failed to parse CSV content", err).WithContext("path", path)
	}

	if len(records) == 0 {
		return nil, nil, errors.NewParsingError("CSV file contains no rows", nil).WithContext("path", path)
	}

	return records[0], records[1:], nil
}

// ReadFile dispatches on the file extension: .csv goes through ReadCSV,
// everything else is treated as an Excel workbook.
func ReadFile(path string) ([]string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(path)
	}
	return ReadWorkbook(path)
}
