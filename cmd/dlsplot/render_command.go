package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/dlsplot-go/internal/config"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/chart"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/output"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/series"
)

var errNothingRendered = errors.New("no series rendered")

type renderFlags struct {
	sheets     []string
	channels   []string
	weightings []string
	mode       string
	backRange  string
	madlsRange string
	backTitle  string
	madlsTitle string
	outDir     string
	zip        bool
	grid       bool
	logX       bool
	jsonOut    bool
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <workbook.xlsx>",
		Short: "Render overlay charts and CSV exports",
		Long: `Render one SVG chart per channel and weighting, overlaying every selected
condition, and one CSV per series with the diameter, raw and normalized values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			opts, err := ctx.loadOptions(logger)
			if err != nil {
				return err
			}
			if err := applyRenderFlags(cmd, cfg, flags); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			req, err := buildRequest(cfg, flags.sheets, logger)
			if err != nil {
				return err
			}

			wb, err := dlsplot.Load(args[0], opts)
			if err != nil {
				return fmt.Errorf("load workbook: %w", err)
			}

			res, err := dlsplot.Render(wb, dlsplot.NewSession(), req)
			if err != nil {
				return err
			}
			if len(res.Series) == 0 {
				return fmt.Errorf("%w (%d warnings)", errNothingRendered, len(res.Warnings))
			}

			size := chartSize{width: vg.Length(cfg.Render.WidthIn) * vg.Inch, height: vg.Length(cfg.Render.HeightIn) * vg.Inch}
			artifacts, err := writeArtifacts(cfg.Output, wb.BookName, res, size, logger)
			if err != nil {
				return err
			}

			summary := res.Summary(wb.BookName)
			summary.Artifacts = artifacts
			if flags.jsonOut {
				return writeJSON(cmd, summary)
			}
			printRenderSummary(cmd, summary)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&flags.sheets, "sheet", nil, "Condition (worksheet) to render; repeatable (default: all)")
	f.StringSliceVar(&flags.channels, "channel", nil, "Channels: back, madls")
	f.StringSliceVar(&flags.weightings, "weighting", nil, "Weightings: intensity, number, volume")
	f.StringVar(&flags.mode, "mode", "", "Normalization: max, peak-region, raw")
	f.StringVar(&flags.backRange, "back-range", "", "Back Scatter x window in nm, min:max")
	f.StringVar(&flags.madlsRange, "madls-range", "", "MADLS x window in nm, min:max")
	f.StringVar(&flags.backTitle, "back-title", "", "Custom Back Scatter chart title")
	f.StringVar(&flags.madlsTitle, "madls-title", "", "Custom MADLS chart title")
	f.StringVarP(&flags.outDir, "out", "o", "", "Output directory")
	f.BoolVar(&flags.zip, "zip", false, "Bundle CSV exports into a ZIP archive")
	f.BoolVar(&flags.grid, "grid", false, "Also write a channel by weighting grid chart")
	f.BoolVar(&flags.logX, "log-x", false, "Use a logarithmic diameter axis")
	f.BoolVar(&flags.jsonOut, "json", false, "Print the render summary as JSON")

	return cmd
}

// applyRenderFlags copies explicitly set flags over the loaded configuration.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, flags renderFlags) error {
	changed := cmd.Flags().Changed
	if changed("channel") {
		cfg.Render.Channels = lower(flags.channels)
	}
	if changed("weighting") {
		cfg.Render.Weightings = lower(flags.weightings)
	}
	if changed("mode") {
		cfg.Render.Mode = strings.ToLower(strings.TrimSpace(flags.mode))
	}
	if changed("back-title") {
		cfg.Render.Back.Title = strings.TrimSpace(flags.backTitle)
	}
	if changed("madls-title") {
		cfg.Render.MADLS.Title = strings.TrimSpace(flags.madlsTitle)
	}
	if changed("out") {
		cfg.Output.Dir = flags.outDir
	}
	if changed("zip") {
		cfg.Output.Zip = flags.zip
	}
	if changed("grid") {
		cfg.Output.Grid = flags.grid
	}
	if changed("log-x") {
		cfg.Render.LogX = flags.logX
	}
	if changed("back-range") {
		r, err := chart.ParseRange(flags.backRange)
		if err != nil {
			return fmt.Errorf("--back-range: %w", err)
		}
		cfg.Render.Back.XMin, cfg.Render.Back.XMax = r.Min, r.Max
	}
	if changed("madls-range") {
		r, err := chart.ParseRange(flags.madlsRange)
		if err != nil {
			return fmt.Errorf("--madls-range: %w", err)
		}
		cfg.Render.MADLS.XMin, cfg.Render.MADLS.XMax = r.Min, r.Max
	}
	return nil
}

func buildRequest(cfg *config.Config, sheets []string, logger *slog.Logger) (dlsplot.Request, error) {
	mode, err := series.ParseMode(cfg.Render.Mode)
	if err != nil {
		return dlsplot.Request{}, err
	}
	req := dlsplot.Request{
		Conditions: sheets,
		Mode:       mode,
		Ranges:     cfg.Ranges(),
		Titles:     cfg.Titles(),
		LogX:       cfg.Render.LogX,
		Logger:     logger,
	}
	for _, name := range cfg.Render.Channels {
		ch, err := models.ParseChannel(name)
		if err != nil {
			return dlsplot.Request{}, err
		}
		req.Channels = append(req.Channels, ch)
	}
	for _, name := range cfg.Render.Weightings {
		w, err := models.ParseWeighting(name)
		if err != nil {
			return dlsplot.Request{}, err
		}
		req.Weightings = append(req.Weightings, w)
	}
	return req, nil
}

type chartSize struct {
	width  vg.Length
	height vg.Length
}

func writeArtifacts(out config.Output, bookName string, res *dlsplot.Result, size chartSize, logger *slog.Logger) ([]output.Artifact, error) {
	dir, err := config.ExpandPath(out.Dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var artifacts []output.Artifact
	write := func(name, kind string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		artifacts = append(artifacts, output.Artifact{Path: path, Kind: kind, Bytes: int64(len(data))})
		logger.Debug("wrote artifact", "path", path, "kind", kind)
		return nil
	}

	for _, panel := range res.Panels {
		if len(panel.Series) == 0 {
			logger.Info("skipping empty chart", "channel", string(panel.Channel), "weighting", string(panel.Weighting))
			continue
		}
		p, err := chart.Overlay(panel.Spec)
		if err != nil {
			return nil, fmt.Errorf("build chart %s/%s: %w", panel.Channel, panel.Weighting, err)
		}
		var buf bytes.Buffer
		if err := chart.WriteSVG(&buf, p, size.width, size.height); err != nil {
			return nil, fmt.Errorf("render chart %s/%s: %w", panel.Channel, panel.Weighting, err)
		}
		if err := write(output.FileName("", panel.Channel, panel.Weighting, "svg"), "chart", buf.Bytes()); err != nil {
			return nil, err
		}
	}

	files, err := res.CSVFiles()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := write(f.Name, "csv", f.Data); err != nil {
			return nil, err
		}
	}

	if out.Zip {
		var buf bytes.Buffer
		if err := output.WriteZip(&buf, files); err != nil {
			return nil, fmt.Errorf("bundle csv files: %w", err)
		}
		name := strings.TrimSuffix(bookName, filepath.Ext(bookName)) + "_series.zip"
		if err := write(name, "zip", buf.Bytes()); err != nil {
			return nil, err
		}
	}

	if out.Grid {
		var buf bytes.Buffer
		rows := res.GridSpecs()
		width := size.width * vg.Length(len(models.Weightings)) * 0.75
		height := size.height * vg.Length(len(rows)) * 0.75
		if err := chart.WriteGrid(&buf, rows, width, height); err != nil {
			return nil, fmt.Errorf("render grid: %w", err)
		}
		if err := write("grid.svg", "chart", buf.Bytes()); err != nil {
			return nil, err
		}
	}

	return artifacts, nil
}

func printRenderSummary(cmd *cobra.Command, sum *output.Summary) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(sum.Artifacts))
	for _, a := range sum.Artifacts {
		rows = append(rows, []string{filepath.Base(a.Path), a.Kind, humanize.Bytes(uint64(a.Bytes))})
	}
	fmt.Fprintln(out, renderTable([]string{"File", "Kind", "Size"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
	fmt.Fprintf(out, "%d series rendered (%s mode)", len(sum.Series), sum.Mode)
	if len(sum.Warnings) > 0 {
		fmt.Fprintf(out, ", %d skipped:\n", len(sum.Warnings))
		for _, w := range sum.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
		return
	}
	fmt.Fprintln(out)
}

func lower(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
