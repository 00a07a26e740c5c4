package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported statement format")
	ErrUnreadableFile    = errors.New("statement file could not be read")
	ErrMissingColumn     = errors.New("statement is missing a required column")
	ErrInvalidRow        = errors.New("statement contains an invalid row")
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2 Jan 2006",
}

// StatementError describes why a statement was rejected. Row is the 1-based
// data row and is zero for file-level problems.
type StatementError struct {
	Kind   error
	Row    int
	Column string
	Err    error
}

func (e *StatementError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Row > 0 {
		fmt.Fprintf(&b, ": row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %q", e.Column)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *StatementError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

type statementLoader struct {
	classifier ClassifierInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

func NewStatementLoader(classifier ClassifierInterface, metrics MetricsRecorderInterface, logger *slog.Logger) StatementLoaderInterface {
	return &statementLoader{
		classifier: classifier,
		metrics:    metrics,
		logger:     logger,
	}
}

// DetectFormat maps a file name to a supported statement format.
func DetectFormat(fileName string) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", &StatementError{Kind: ErrUnsupportedFormat, Err: fmt.Errorf("file %q", fileName)}
	}
}

func (l *statementLoader) Load(ctx context.Context, fileName string, r io.Reader, snapshot models.CategoryMap) (result *models.LoadResult, err error) {
	start := time.Now()

	format, err := DetectFormat(fileName)
	if err != nil {
		l.record(format, "unsupported")
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			l.logger.ErrorContext(ctx, "statement parser panicked", "file", fileName, "panic", rec)
			result = nil
			err = &StatementError{Kind: ErrUnreadableFile, Err: fmt.Errorf("%v", rec)}
			l.record(format, "failed")
		}
	}()

	var rows [][]string
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(r)
	default:
		rows, err = readCSV(r)
	}
	if err != nil {
		l.record(format, "failed")
		return nil, err
	}

	result, err = parseRows(rows)
	if err != nil {
		l.logger.WarnContext(ctx, "statement rejected", "file", fileName, "error", err)
		l.record(format, "rejected")
		return nil, err
	}

	result.FileName = fileName
	result.LoadedAt = time.Now().UTC()
	result.Transactions = l.classifier.Classify(result.Transactions, snapshot)

	for _, txn := range result.Transactions {
		l.metrics.IncrementCounter("statement.row", map[string]string{"flow": txn.Flow.String()})
	}
	l.record(format, "success")
	l.metrics.RecordProcessingTime("statement.load", time.Since(start))

	l.logger.InfoContext(ctx, "statement loaded",
		"file", fileName,
		"format", format,
		"rows", len(result.Transactions),
		"unknown_types", len(result.UnknownTypes),
		"skipped", result.Skipped,
	)
	return result, nil
}

func (l *statementLoader) record(format, status string) {
	l.metrics.IncrementCounter("statement.loaded", map[string]string{"format": format, "status": status})
}

// readXLSX returns the raw cell values of the first sheet. Raw values keep
// numbers unformatted, so amounts are not rounded by the cell's number format
// and date cells arrive as serial numbers.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &StatementError{Kind: ErrUnreadableFile, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &StatementError{Kind: ErrUnreadableFile, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &StatementError{Kind: ErrUnreadableFile, Err: err}
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &StatementError{Kind: ErrUnreadableFile, Err: err}
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &StatementError{Kind: ErrUnreadableFile, Err: err}
	}
	return rows, nil
}

// parseRows turns a header row plus data rows into transactions. Blank rows
// and rows without a completed date (pending card payments) are skipped but
// keep their row number.
func parseRows(rows [][]string) (*models.LoadResult, error) {
	if len(rows) == 0 {
		return nil, &StatementError{Kind: ErrMissingColumn, Column: models.ColumnDescription, Err: errors.New("file is empty")}
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		header = strings.TrimSpace(header)
		if _, dup := columns[header]; !dup {
			columns[header] = i
		}
	}
	for _, required := range models.RequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, &StatementError{Kind: ErrMissingColumn, Column: required}
		}
	}

	cell := func(row []string, column string) string {
		i := columns[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	result := &models.LoadResult{
		Transactions: make([]models.Transaction, 0, len(rows)-1),
		UnknownTypes: []models.UnknownType{},
	}

	for i, row := range rows[1:] {
		rowNum := i + 1
		if isBlankRow(row) {
			result.Skipped++
			continue
		}

		dateCell := cell(row, models.ColumnCompletedDate)
		if dateCell == "" {
			result.Skipped++
			continue
		}
		completed, err := parseDate(dateCell)
		if err != nil {
			return nil, &StatementError{Kind: ErrInvalidRow, Row: rowNum, Column: models.ColumnCompletedDate, Err: err}
		}

		amount, err := parseAmount(cell(row, models.ColumnAmount))
		if err != nil {
			return nil, &StatementError{Kind: ErrInvalidRow, Row: rowNum, Column: models.ColumnAmount, Err: err}
		}

		txnType := cell(row, models.ColumnType)
		flow, known := models.FlowForType(txnType)
		if !known {
			result.UnknownTypes = append(result.UnknownTypes, models.UnknownType{Row: rowNum, Type: txnType})
		}

		result.Transactions = append(result.Transactions, models.Transaction{
			Row:           rowNum,
			CompletedDate: completed,
			Description:   cell(row, models.ColumnDescription),
			Amount:        amount,
			Type:          txnType,
			Flow:          flow,
			Category:      models.UncategorisedCategory,
		})
	}

	return result, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("amount is empty")
	}
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(s)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

// parseDate accepts the text layouts banks export and spreadsheet serial
// numbers. The time of day is dropped.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return truncateDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
