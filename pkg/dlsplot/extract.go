package dlsplot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/parser"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/resolve"
	"github.com/xuri/excelize/v2"
)

// Load reads a DLS workbook from disk.
func Load(path string, opts Options) (*models.Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extract(f, filepath.Base(path), opts)
}

// Open reads a DLS workbook from r, e.g. an uploaded file. name is recorded
// as the book name.
func Open(r io.Reader, name string, opts Options) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extract(f, name, opts)
}

func extract(f *excelize.File, bookName string, opts Options) (*models.Workbook, error) {
	log := opts.logger().With("book", bookName)

	var overrides map[string]models.Layout
	if !opts.IgnoreDefinedNames {
		var err error
		overrides, err = parser.ExtractBlockNames(f)
		if err != nil {
			// Malformed names only lose the override; the configured layout still applies.
			log.Warn("ignoring block defined names", "error", err)
			overrides = nil
		}
	}

	var wb *models.Workbook
	switch opts.orientation() {
	case models.OrientationWeightingSheets:
		wb = extractWeightingSheets(f, opts, overrides, log)
	default:
		wb = extractConditionSheets(f, opts, overrides, log)
	}
	wb.BookName = bookName

	if len(wb.Conditions) == 0 {
		return nil, ErrNoConditions
	}
	return wb, nil
}

func extractConditionSheets(f *excelize.File, opts Options, overrides map[string]models.Layout, log *slog.Logger) *models.Workbook {
	wb := &models.Workbook{Sheets: make(map[string]*models.Sheet)}

	for _, sheetName := range f.GetSheetList() {
		table, err := parser.ExtractTable(f, sheetName, opts.headerRows())
		if err != nil {
			log.Warn("skipping sheet", "error", &ExtractionError{SheetName: sheetName, Err: err})
			continue
		}

		blocks := sheetLayout(table, opts, overrides)
		columns := make(map[models.Channel]models.ColumnMap, len(blocks))
		for ch, b := range blocks {
			m := resolve.ResolveBlock(table, b)
			if len(m.Missing) > 0 {
				log.Debug("unresolved columns", "sheet", sheetName, "channel", string(ch), "missing", m.Missing)
			}
			columns[ch] = m
		}

		wb.Conditions = append(wb.Conditions, sheetName)
		wb.Sheets[sheetName] = &models.Sheet{
			Table:   table,
			Blocks:  blocks,
			Columns: columns,
		}
	}
	return wb
}

// sheetLayout picks the block per channel: defined-name overrides for the
// sheet, then workbook-wide overrides, then detection, then the configured layout.
func sheetLayout(table *models.Table, opts Options, overrides map[string]models.Layout) models.Layout {
	layout := opts.layout().Clone()

	if opts.AutoDetect {
		params := parser.DefaultBlockParams()
		params.Order = opts.orientation().Channels()
		for ch, b := range parser.DetectBlocks(table, params) {
			layout[ch] = b
		}
	}
	for _, key := range []string{parser.AllSheets, table.Name} {
		for ch, b := range overrides[key] {
			layout[ch] = b
		}
	}
	return layout
}
