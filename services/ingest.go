package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/models"
	"github.com/sorteo-loteria/sorteo-backend/repository"
	"github.com/sorteo-loteria/sorteo-backend/utils/logger"

	"github.com/xuri/excelize/v2"
)

// ResultColumn is the header of the spreadsheet column holding each draw as
// a hyphen-delimited string, e.g. "3-17-22-30-41-9".
const ResultColumn = "resultado"

// IngestService loads historical draws from uploaded .xlsx workbooks. An
// upload either replaces the whole historical table or changes nothing.
type IngestService struct {
	historical repository.HistoricalRepository
}

func NewIngestService(historical repository.HistoricalRepository) *IngestService {
	return &IngestService{historical: historical}
}

// Ingest parses the workbook and atomically replaces the historical dataset
// with its rows. Returns the number of inserted draws. Any malformed row
// aborts the whole operation with a *lottery.FormatError; a workbook with no
// usable rows fails with lottery.ErrEmptyDataset.
func (s *IngestService) Ingest(file io.Reader) (int, error) {
	draws, err := ParseWorkbook(file)
	if err != nil {
		return 0, err
	}

	if err := s.historical.ReplaceAll(draws); err != nil {
		return 0, fmt.Errorf("replace historical data: %w", err)
	}

	logger.Infof("Loaded %d historical draws", len(draws))
	return len(draws), nil
}

// ParseWorkbook reads every data row of the workbook's first sheet into
// validated historical draws, in sheet order.
func ParseWorkbook(file io.Reader) ([]models.HistoricalDraw, error) {
	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, lottery.ErrEmptyDataset
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, lottery.ErrEmptyDataset
	}

	col, err := findResultColumn(rows[0])
	if err != nil {
		return nil, err
	}

	var draws []models.HistoricalDraw
	for i, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		var cell string
		if col < len(row) {
			cell = row[col]
		}
		numbers, err := parseResultado(cell)
		if err != nil {
			return nil, &lottery.FormatError{Row: i + 1, Cause: err}
		}
		draws = append(draws, models.HistoricalDraw{
			Balota1: numbers[0],
			Balota2: numbers[1],
			Balota3: numbers[2],
			Balota4: numbers[3],
			Balota5: numbers[4],
			Balota6: numbers[5],
		})
	}

	if len(draws) == 0 {
		return nil, lottery.ErrEmptyDataset
	}
	return draws, nil
}

// findResultColumn locates the result column in the header row.
func findResultColumn(header []string) (int, error) {
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), ResultColumn) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("missing %q column: %w", ResultColumn, lottery.ErrEmptyDataset)
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseResultado splits a hyphen-delimited draw string into 6 validated
// numbers. Tokens may carry surrounding whitespace.
func parseResultado(cell string) ([]int, error) {
	tokens := strings.Split(cell, "-")
	if len(tokens) != lottery.DrawSize {
		return nil, fmt.Errorf("expected 6 numbers, found %d", len(tokens))
	}
	numbers := make([]int, 0, lottery.DrawSize)
	for _, token := range tokens {
		num, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", strings.TrimSpace(token))
		}
		numbers = append(numbers, num)
	}
	if err := lottery.ValidateDraw(numbers); err != nil {
		return nil, err
	}
	return numbers, nil
}
