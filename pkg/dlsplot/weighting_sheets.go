package dlsplot

import (
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/parser"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/resolve"
)

// extractWeightingSheets regroups a one-sheet-per-weighting workbook into one
// Sheet per condition. Each (channel, weighting) pair contributes its
// diameter column and the condition's value column to the condition table,
// so series extraction is the same as for condition sheets.
func extractWeightingSheets(f *excelize.File, opts Options, overrides map[string]models.Layout, log *slog.Logger) *models.Workbook {
	wb := &models.Workbook{Sheets: make(map[string]*models.Sheet)}
	groups := make(map[string]*conditionGroup)

	sheetNames := f.GetSheetList()
	for _, w := range models.Weightings {
		sheetName, ok := parser.FindSheet(sheetNames, w.Keyword())
		if !ok {
			log.Warn("weighting sheet not found", "weighting", string(w))
			continue
		}
		table, err := parser.ExtractTable(f, sheetName, opts.headerRows())
		if err != nil {
			log.Warn("skipping sheet", "error", &ExtractionError{SheetName: sheetName, Err: err})
			continue
		}

		layout := sheetLayout(table, opts, overrides)
		for _, ch := range opts.orientation().Channels() {
			b, ok := layout[ch]
			if !ok {
				continue
			}
			diameter, conditions, ok := splitBlock(table.Slice(b))
			if !ok {
				log.Debug("no diameter column", "sheet", sheetName, "channel", string(ch))
				continue
			}
			for _, c := range conditions {
				name := conditionName(c)
				g, ok := groups[name]
				if !ok {
					g = newConditionGroup()
					groups[name] = g
					wb.Conditions = append(wb.Conditions, name)
				}
				if !g.add(ch, w, sourceOf(table, diameter), sourceOf(table, c)) {
					log.Warn("duplicate condition column", "sheet", sheetName, "channel", string(ch), "condition", name)
				}
			}
		}
	}

	for _, name := range wb.Conditions {
		wb.Sheets[name] = groups[name].sheet(name)
	}
	return wb
}

// splitBlock picks the diameter column of a block, falling back to the first
// labelled column, and returns the remaining labelled columns as conditions.
func splitBlock(columns []models.Column) (models.Column, []models.Column, bool) {
	var labelled []models.Column
	for _, c := range columns {
		if !parser.IsBlankHeader(c) {
			labelled = append(labelled, c)
		}
	}
	if len(labelled) == 0 {
		return models.Column{}, nil, false
	}

	diameter, ok := resolve.Resolve(labelled, models.DiameterKeyword)
	if !ok {
		diameter, ok = resolve.Resolve(labelled, models.SizeKeyword)
	}
	if !ok {
		diameter = labelled[0]
	}

	conditions := make([]models.Column, 0, len(labelled)-1)
	for _, c := range labelled {
		if c.Index != diameter.Index {
			conditions = append(conditions, c)
		}
	}
	return diameter, conditions, true
}

// conditionName joins the non-empty header cells of c.
func conditionName(c models.Column) string {
	parts := make([]string, 0, len(c.Header))
	for _, h := range c.Header {
		if h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, " ")
}

// sourceColumn is one column lifted out of a weighting sheet.
type sourceColumn struct {
	header [models.HeaderRows]string
	ref    string
	cells  []string
}

func sourceOf(t *models.Table, c models.Column) sourceColumn {
	cells := make([]string, len(t.Rows))
	for r := range t.Rows {
		cells[r] = t.Cell(r, c.Index)
	}
	return sourceColumn{header: c.Header, ref: parser.ColumnRef(t.Name, c.Index), cells: cells}
}

// columnPair is a diameter column and the value column read against it.
type columnPair struct {
	size  sourceColumn
	value sourceColumn
}

// conditionGroup collects the columns of one condition across weighting sheets.
type conditionGroup struct {
	pairs map[models.Channel]map[models.Weighting]columnPair
}

func newConditionGroup() *conditionGroup {
	return &conditionGroup{pairs: make(map[models.Channel]map[models.Weighting]columnPair)}
}

// add records a pair; it reports false when the pair is already present.
func (g *conditionGroup) add(ch models.Channel, w models.Weighting, size, value sourceColumn) bool {
	byWeighting, ok := g.pairs[ch]
	if !ok {
		byWeighting = make(map[models.Weighting]columnPair)
		g.pairs[ch] = byWeighting
	}
	if _, dup := byWeighting[w]; dup {
		return false
	}
	byWeighting[w] = columnPair{size: size, value: value}
	return true
}

// sheet lays the pairs out channel by channel, weighting by weighting, so
// each channel occupies one contiguous block.
func (g *conditionGroup) sheet(name string) *models.Sheet {
	table := &models.Table{Name: name}
	var cells [][]string
	push := func(src sourceColumn) models.Column {
		c := models.Column{Index: len(table.Columns), Header: src.header, Source: src.ref}
		table.Columns = append(table.Columns, c)
		cells = append(cells, src.cells)
		return c
	}

	sheet := &models.Sheet{
		Table:   table,
		Blocks:  make(map[models.Channel]models.Block),
		Columns: make(map[models.Channel]models.ColumnMap),
	}
	for _, ch := range models.Channels {
		byWeighting, ok := g.pairs[ch]
		if !ok {
			continue
		}
		first := len(table.Columns)
		m := models.ColumnMap{
			Sizes:         make(map[models.Weighting]models.Column, len(byWeighting)),
			Distributions: make(map[models.Weighting]models.Column, len(byWeighting)),
		}
		for _, w := range models.Weightings {
			p, ok := byWeighting[w]
			if !ok {
				m.Missing = append(m.Missing, w.Keyword())
				continue
			}
			m.Sizes[w] = push(p.size)
			m.Distributions[w] = push(p.value)
		}
		sheet.Blocks[ch] = models.Block{Channel: ch, First: first, Last: len(table.Columns) - 1}
		sheet.Columns[ch] = m
	}

	rows := 0
	for _, col := range cells {
		rows = max(rows, len(col))
	}
	table.Rows = make([][]string, rows)
	for r := range table.Rows {
		row := make([]string, len(cells))
		for c, col := range cells {
			if r < len(col) {
				row[c] = col[r]
			}
		}
		table.Rows[r] = row
	}
	return sheet
}
