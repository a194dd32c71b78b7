package services

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook returns an in-memory .xlsx with a header row and one
// resultado cell per given value.
func buildWorkbook(t *testing.T, resultados ...string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "fecha"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "resultado"))
	for i, resultado := range resultados {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), fmt.Sprintf("2024-01-%02d", i+1)))
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), resultado))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseWorkbook_ValidRows(t *testing.T) {
	wb := buildWorkbook(t,
		"3-17-22-30-41-9",
		"1-2-3-4-5-16",
		" 7 - 22 - 35 - 40 - 43 - 1 ", // tokens may carry whitespace
	)

	draws, err := ParseWorkbook(wb)

	require.NoError(t, err)
	require.Len(t, draws, 3)
	assert.Equal(t, models.HistoricalDraw{Balota1: 3, Balota2: 17, Balota3: 22, Balota4: 30, Balota5: 41, Balota6: 9}, draws[0])
	assert.Equal(t, models.HistoricalDraw{Balota1: 7, Balota2: 22, Balota3: 35, Balota4: 40, Balota5: 43, Balota6: 1}, draws[2])
}

func TestParseWorkbook_WrongTokenCount(t *testing.T) {
	wb := buildWorkbook(t,
		"3-17-22-30-41-9",
		"1-2-3-4", // only 4 tokens
	)

	_, err := ParseWorkbook(wb)

	var formatErr *lottery.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 2, formatErr.Row)
}

func TestParseWorkbook_UnparseableToken(t *testing.T) {
	wb := buildWorkbook(t, "3-17-xx-30-41-9")

	_, err := ParseWorkbook(wb)

	var formatErr *lottery.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 1, formatErr.Row)
}

func TestParseWorkbook_OutOfRangeRow(t *testing.T) {
	wb := buildWorkbook(t, "3-17-50-30-41-9") // 50 > 43

	_, err := ParseWorkbook(wb)

	var formatErr *lottery.FormatError
	require.ErrorAs(t, err, &formatErr)
	var vErr *lottery.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseWorkbook_NoDataRows(t *testing.T) {
	wb := buildWorkbook(t)

	_, err := ParseWorkbook(wb)

	assert.ErrorIs(t, err, lottery.ErrEmptyDataset)
}

func TestParseWorkbook_MissingResultColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "fecha"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "2024-01-01"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ParseWorkbook(buf)

	assert.ErrorIs(t, err, lottery.ErrEmptyDataset)
}

func TestIngest_ReplacesDataset(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)
	mockRepo.On("ReplaceAll", mock.AnythingOfType("[]models.HistoricalDraw")).Return(nil)

	service := NewIngestService(mockRepo)
	records, err := service.Ingest(buildWorkbook(t,
		"3-17-22-30-41-9",
		"7-22-35-40-43-1",
	))

	require.NoError(t, err)
	assert.Equal(t, 2, records)
	mockRepo.AssertCalled(t, "ReplaceAll", []models.HistoricalDraw{
		{Balota1: 3, Balota2: 17, Balota3: 22, Balota4: 30, Balota5: 41, Balota6: 9},
		{Balota1: 7, Balota2: 22, Balota3: 35, Balota4: 40, Balota5: 43, Balota6: 1},
	})
}

func TestIngest_MalformedRowLeavesStoreUntouched(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)

	service := NewIngestService(mockRepo)
	_, err := service.Ingest(buildWorkbook(t,
		"3-17-22-30-41-9",
		"1-2-3-4",
	))

	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything)
}

func TestIngest_NotAWorkbook(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)

	service := NewIngestService(mockRepo)
	_, err := service.Ingest(bytes.NewBufferString("this is not an xlsx file"))

	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything)
}
