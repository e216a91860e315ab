package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

const missingCell = "missing"

type sheetView struct {
	Condition string            `json:"condition"`
	Channel   models.Channel    `json:"channel"`
	Columns   string            `json:"columns"`
	Resolved  map[string]string `json:"resolved"`
	Missing   []string          `json:"missing,omitempty"`
}

func newSheetsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "sheets <workbook.xlsx>",
		Short: "List conditions and the columns resolved for each channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			opts, err := ctx.loadOptions(logger)
			if err != nil {
				return err
			}
			wb, err := dlsplot.Load(args[0], opts)
			if err != nil {
				return fmt.Errorf("load workbook: %w", err)
			}

			views := buildSheetViews(wb)
			if jsonOut {
				return writeJSON(cmd, views)
			}

			headers := []string{"Condition", "Channel", "Columns", "Size", "Intensity", "Number", "Volume"}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				row := []string{v.Condition, v.Channel.DisplayName(), v.Columns, v.Resolved[models.SizeKeyword]}
				for _, w := range models.Weightings {
					row = append(row, v.Resolved[w.Keyword()])
				}
				rows = append(rows, row)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func buildSheetViews(wb *models.Workbook) []sheetView {
	var views []sheetView
	for _, cond := range wb.Conditions {
		sheet := wb.Sheet(cond)
		for _, ch := range models.Channels {
			block, ok := sheet.Blocks[ch]
			if !ok {
				continue
			}
			cols := sheet.Columns[ch]
			v := sheetView{
				Condition: cond,
				Channel:   ch,
				Columns:   blockRange(block),
				Resolved:  make(map[string]string, 4),
				Missing:   cols.Missing,
			}
			v.Resolved[models.SizeKeyword] = missingCell
			var sources []string
			for _, w := range models.Weightings {
				if c, ok := cols.SizeFor(w); ok && v.Resolved[models.SizeKeyword] == missingCell {
					v.Resolved[models.SizeKeyword] = columnCell(c)
				}
				v.Resolved[w.Keyword()] = missingCell
				if c, ok := cols.Distribution(w); ok {
					v.Resolved[w.Keyword()] = columnCell(c)
					if c.Source != "" {
						sources = append(sources, c.Source)
					}
				}
			}
			// Regrouped tables list where each weighting column came from.
			if len(sources) > 0 {
				v.Columns = strings.Join(sources, ", ")
			}
			views = append(views, v)
		}
	}
	return views
}

func blockRange(b models.Block) string {
	first, err1 := excelize.ColumnNumberToName(b.First + 1)
	last, err2 := excelize.ColumnNumberToName(b.Last + 1)
	if err1 != nil || err2 != nil {
		return b.String()
	}
	return first + ":" + last
}

func columnCell(c models.Column) string {
	if c.Source != "" {
		return c.Source + " " + c.Header[0]
	}
	name, err := excelize.ColumnNumberToName(c.Index + 1)
	if err != nil {
		return c.Label()
	}
	return name + " " + c.Header[0]
}
