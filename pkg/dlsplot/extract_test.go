package dlsplot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := Load(path, DefaultOptions())
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadResolvesColumnsOnce(t *testing.T) {
	path := writeWorkbook(t, stockA())

	wb, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "dls.xlsx", wb.BookName)
	require.Equal(t, []string{"StockA"}, wb.Conditions)

	sheet := wb.Sheet("StockA")
	require.NotNil(t, sheet)
	require.Len(t, sheet.Table.Rows, 10)

	back := sheet.Columns[models.ChannelBack]
	require.True(t, back.HasSize)
	require.Equal(t, 0, back.Size.Index)
	require.Empty(t, back.Missing)
	require.Equal(t, 1, back.Distributions[models.WeightingIntensity].Index)
	require.Equal(t, 3, back.Distributions[models.WeightingVolume].Index)

	madls := sheet.Columns[models.ChannelMADLS]
	require.False(t, madls.HasSize)
	require.Len(t, madls.Missing, 4)
}

func TestOpenFromReader(t *testing.T) {
	data, err := os.ReadFile(writeWorkbook(t, stockA()))
	require.NoError(t, err)

	wb, err := Open(bytes.NewReader(data), "upload.xlsx", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "upload.xlsx", wb.BookName)
	require.NotNil(t, wb.Sheet("StockA"))
	require.Nil(t, wb.Sheet("StockB"))
}

func TestLoadAutoDetectBlocks(t *testing.T) {
	fx := sheetFixture{
		name:   "Run1",
		header: []string{"Size", "Intensity", "", "Size", "Volume"},
		rows: [][]any{
			{1, 2, nil, 3, 4},
		},
	}
	path := writeWorkbook(t, fx)

	opts := DefaultOptions()
	opts.AutoDetect = true
	wb, err := Load(path, opts)
	require.NoError(t, err)

	sheet := wb.Sheet("Run1")
	require.Equal(t, models.Block{Channel: models.ChannelBack, First: 0, Last: 1}, sheet.Blocks[models.ChannelBack])
	require.Equal(t, models.Block{Channel: models.ChannelMADLS, First: 3, Last: 4}, sheet.Blocks[models.ChannelMADLS])
	require.Equal(t, 3, sheet.Columns[models.ChannelMADLS].Size.Index)
}

func TestLoadDefinedNameOverridesLayout(t *testing.T) {
	path := writeWorkbook(t, sheetFixture{
		name:   "Run1",
		header: []string{"Size", "Intensity", "Size", "Number"},
		rows:   [][]any{{1, 2, 3, 4}},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "MADLS", RefersTo: "Run1!$C:$D"}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "BackScatter", RefersTo: "Run1!$A:$B"}))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	wb, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	madls := wb.Sheet("Run1").Columns[models.ChannelMADLS]
	require.Equal(t, 2, madls.Size.Index)
	require.Equal(t, 3, madls.Distributions[models.WeightingNumber].Index)
	require.Equal(t, 1, wb.Sheet("Run1").Blocks[models.ChannelBack].Last)

	opts := DefaultOptions()
	opts.IgnoreDefinedNames = true
	wb, err = Load(path, opts)
	require.NoError(t, err)
	require.Equal(t, 7, wb.Sheet("Run1").Blocks[models.ChannelMADLS].First)
}

func TestExtractionErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	err := &ExtractionError{SheetName: "S", Err: inner}
	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), `"S"`)
}
