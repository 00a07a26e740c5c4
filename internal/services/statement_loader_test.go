package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type StatementLoaderTestSuite struct {
	suite.Suite
	loader   StatementLoaderInterface
	snapshot models.CategoryMap
	ctx      context.Context
}

func (s *StatementLoaderTestSuite) SetupTest() {
	metrics := NewNoopMetrics()
	s.loader = NewStatementLoader(NewClassifier(nil, metrics, logging.Discard()), metrics, logging.Discard())
	s.snapshot = mustCategories(s.T(),
		models.CategoryEntry{Name: models.UncategorisedCategory},
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}},
		models.CategoryEntry{Name: "Income", Keywords: []string{"Payment from ACME"}},
	)
	s.ctx = context.Background()
}

func TestStatementLoaderSuite(t *testing.T) {
	suite.Run(t, new(StatementLoaderTestSuite))
}

const sampleCSV = `Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance
CARD_PAYMENT,Current,2024-03-01 10:00:00,2024-03-02 09:15:00,Tesco,-12.50,0.00,GBP,COMPLETED,987.50
TOPUP,Current,2024-03-03 08:00:00,2024-03-03 08:00:01,Payment from ACME,"1,500.00",0.00,GBP,COMPLETED,2487.50
CARD_PAYMENT,Current,2024-03-04 12:00:00,,Pret,-4.20,0.00,GBP,PENDING,
FEE,Current,2024-03-05 00:00:00,2024-03-05 00:00:00,Plan fee,-2.99,0.00,GBP,COMPLETED,2484.51
`

func (s *StatementLoaderTestSuite) TestLoad_CSV() {
	result, err := s.loader.Load(s.ctx, "march.csv", strings.NewReader(sampleCSV), s.snapshot)
	s.Require().NoError(err)

	s.Equal("march.csv", result.FileName)
	s.False(result.LoadedAt.IsZero())
	s.Equal(1, result.Skipped)
	s.Require().Len(result.Transactions, 3)

	first := result.Transactions[0]
	s.Equal(1, first.Row)
	s.Equal("Tesco", first.Description)
	s.True(decimal.RequireFromString("-12.50").Equal(first.Amount))
	s.Equal(models.FlowDebit, first.Flow)
	s.Equal("Groceries", first.Category)
	s.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), first.CompletedDate)

	second := result.Transactions[1]
	s.Equal(2, second.Row)
	s.True(decimal.RequireFromString("1500").Equal(second.Amount))
	s.Equal(models.FlowCredit, second.Flow)
	s.Equal("Income", second.Category)

	fee := result.Transactions[2]
	s.Equal(4, fee.Row)
	s.Equal(models.FlowUnknown, fee.Flow)
	s.Equal(models.UncategorisedCategory, fee.Category)
	s.Equal([]models.UnknownType{{Row: 4, Type: "FEE"}}, result.UnknownTypes)
}

func (s *StatementLoaderTestSuite) TestLoad_CSVWithBOMAndPaddedHeaders() {
	data := "\xef\xbb\xbf Description , Amount ,Type,Completed Date\nTesco,-3.00,CARD_PAYMENT,2024-03-02\n"

	result, err := s.loader.Load(s.ctx, "bom.CSV", strings.NewReader(data), s.snapshot)
	s.Require().NoError(err)
	s.Require().Len(result.Transactions, 1)
	s.Equal("Groceries", result.Transactions[0].Category)
}

func (s *StatementLoaderTestSuite) TestLoad_XLSX() {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	s.Require().NoError(f.SetSheetRow(sheet, "A1", &[]interface{}{"Type", "Completed Date", "Description", "Amount"}))
	s.Require().NoError(f.SetSheetRow(sheet, "A2", &[]interface{}{"CARD_PAYMENT", "2024-03-02 09:15:00", "Tesco", -12.5}))
	s.Require().NoError(f.SetSheetRow(sheet, "A3", &[]interface{}{"ATM", "2024-03-04", "Cash", -20}))
	buf, err := f.WriteToBuffer()
	s.Require().NoError(err)

	result, err := s.loader.Load(s.ctx, "march.xlsx", bytes.NewReader(buf.Bytes()), s.snapshot)
	s.Require().NoError(err)
	s.Require().Len(result.Transactions, 2)
	s.Equal("Groceries", result.Transactions[0].Category)
	s.True(decimal.RequireFromString("-12.5").Equal(result.Transactions[0].Amount))
	s.Equal(models.FlowDebit, result.Transactions[1].Flow)
	s.Equal(day("2024-03-04"), result.Transactions[1].CompletedDate)
	s.Empty(result.UnknownTypes)
}

func (s *StatementLoaderTestSuite) TestLoad_UnsupportedFormat() {
	_, err := s.loader.Load(s.ctx, "march.pdf", strings.NewReader("%PDF"), s.snapshot)
	s.ErrorIs(err, ErrUnsupportedFormat)
}

func (s *StatementLoaderTestSuite) TestLoad_CorruptWorkbook() {
	_, err := s.loader.Load(s.ctx, "march.xlsx", strings.NewReader("not a zip"), s.snapshot)
	s.ErrorIs(err, ErrUnreadableFile)
}

func (s *StatementLoaderTestSuite) TestLoad_MissingColumn() {
	data := "Description,Amount,Completed Date\nTesco,-3.00,2024-03-02\n"

	_, err := s.loader.Load(s.ctx, "march.csv", strings.NewReader(data), s.snapshot)
	s.ErrorIs(err, ErrMissingColumn)

	var stmtErr *StatementError
	s.Require().True(errors.As(err, &stmtErr))
	s.Equal(models.ColumnType, stmtErr.Column)
}

func (s *StatementLoaderTestSuite) TestLoad_EmptyFile() {
	_, err := s.loader.Load(s.ctx, "march.csv", strings.NewReader(""), s.snapshot)
	s.ErrorIs(err, ErrMissingColumn)
}

func (s *StatementLoaderTestSuite) TestLoad_InvalidAmountNamesRow() {
	data := "Description,Amount,Type,Completed Date\nTesco,-3.00,CARD_PAYMENT,2024-03-02\nPret,abc,CARD_PAYMENT,2024-03-03\n"

	_, err := s.loader.Load(s.ctx, "march.csv", strings.NewReader(data), s.snapshot)
	s.ErrorIs(err, ErrInvalidRow)

	var stmtErr *StatementError
	s.Require().True(errors.As(err, &stmtErr))
	s.Equal(2, stmtErr.Row)
	s.Equal(models.ColumnAmount, stmtErr.Column)
	s.Contains(err.Error(), "row 2")
}

func (s *StatementLoaderTestSuite) TestLoad_InvalidDate() {
	data := "Description,Amount,Type,Completed Date\nTesco,-3.00,CARD_PAYMENT,yesterday\n"

	_, err := s.loader.Load(s.ctx, "march.csv", strings.NewReader(data), s.snapshot)
	s.ErrorIs(err, ErrInvalidRow)
}

func (s *StatementLoaderTestSuite) TestLoad_BlankRowsKeepNumbering() {
	data := "Description,Amount,Type,Completed Date\n,,,\nTesco,-3.00,CARD_PAYMENT,2024-03-02\n"

	result, err := s.loader.Load(s.ctx, "march.csv", strings.NewReader(data), s.snapshot)
	s.Require().NoError(err)
	s.Equal(1, result.Skipped)
	s.Require().Len(result.Transactions, 1)
	s.Equal(2, result.Transactions[0].Row)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "statement.xlsx", want: FormatXLSX},
		{name: "STATEMENT.XLSM", want: FormatXLSX},
		{name: "statement.csv", want: FormatCSV},
		{name: "statement.xls", wantErr: true},
		{name: "statement", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "-12.50", want: "-12.5"},
		{in: "1,234.56", want: "1234.56"},
		{in: "1 000", want: "1000"},
		{in: "", wantErr: true},
		{in: "twelve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-03-02 09:15:00",
		"2024-03-02 09:15",
		"2024-03-02",
		"2024-03-02T09:15:00Z",
		"02/03/2024 09:15:00",
		"02/03/2024",
		"2 Mar 2024",
		"45353",
	} {
		t.Run(in, func(t *testing.T) {
			got, err := parseDate(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := parseDate("not a date")
	assert.Error(t, err)
}

func TestStatementError_Error(t *testing.T) {
	err := &StatementError{Kind: ErrInvalidRow, Row: 3, Column: models.ColumnAmount, Err: errors.New("invalid amount \"x\"")}

	assert.Equal(t, `statement contains an invalid row: row 3: column "Amount": invalid amount "x"`, err.Error())
	assert.ErrorIs(t, err, ErrInvalidRow)
}
