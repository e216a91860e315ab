package dlsplot

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/chart"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/output"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/resolve"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/series"
)

// DefaultRange is the x-axis window used when a request names none.
var DefaultRange = chart.Range{Min: 0, Max: 1000}

// Request selects what to render. Empty selections mean "all".
type Request struct {
	Conditions []string
	Channels   []models.Channel
	Weightings []models.Weighting
	Mode       series.Mode
	// Ranges holds the x-axis window per channel.
	Ranges map[models.Channel]chart.Range
	// Titles holds custom chart titles per channel, applied to the session
	// after the selection is recorded.
	Titles map[models.Channel]string
	LogX   bool
	Logger *slog.Logger
}

// Panel is one chart: every selected condition for a channel and weighting.
type Panel struct {
	Channel   models.Channel
	Weighting models.Weighting
	Spec      chart.Spec
	Series    []models.Series
}

// Result is the outcome of a render.
type Result struct {
	Mode     series.Mode
	Series   []models.Series
	Panels   []Panel
	Warnings []*SeriesError
}

// Render resolves, extracts and normalizes every requested series and
// assembles one panel per (channel, weighting). Per-series failures become
// warnings; only an invalid request returns an error.
func Render(wb *models.Workbook, sess *Session, req Request) (*Result, error) {
	mode := series.ModeMax
	if req.Mode != "" {
		m, err := series.ParseMode(string(req.Mode))
		if err != nil {
			return nil, err
		}
		mode = m
	}
	channels := req.Channels
	if len(channels) == 0 {
		channels = models.Channels
	}
	weightings := req.Weightings
	if len(weightings) == 0 {
		weightings = models.Weightings
	}
	conditions := req.Conditions
	if len(conditions) == 0 {
		conditions = wb.Conditions
	}
	for _, ch := range channels {
		if err := rangeFor(req, ch).Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", ch.DisplayName(), err)
		}
	}
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}
	if sess == nil {
		sess = NewSession()
	}

	res := &Result{Mode: mode}
	warn := func(e *SeriesError) {
		res.Warnings = append(res.Warnings, e)
		log.Warn("skipping series",
			"condition", e.Condition,
			"channel", string(e.Channel),
			"weighting", string(e.Weighting),
			"error", e.Err)
	}

	var selected []string
	seen := make(map[string]bool, len(conditions))
	for _, cond := range conditions {
		if seen[cond] {
			continue
		}
		seen[cond] = true
		if wb.Sheet(cond) == nil {
			warn(NewSeriesError(cond, "", "", ErrUnknownCondition))
			continue
		}
		selected = append(selected, cond)
	}
	if sess.Select(selected) {
		log.Debug("selection changed", "conditions", selected)
	}
	for ch, title := range req.Titles {
		if title != "" {
			sess.SetTitle(ch, title)
		}
	}

	for _, ch := range channels {
		for _, w := range weightings {
			panel := Panel{
				Channel:   ch,
				Weighting: w,
				Spec: chart.Spec{
					Title:  sess.Title(ch) + " - " + output.WeightingTitle(w),
					XLabel: output.DiameterHeader,
					YLabel: yLabel(w, mode),
					Range:  rangeFor(req, ch),
					LogX:   req.LogX,
				},
			}

			for _, cond := range selected {
				s, err := buildSeries(wb.Sheet(cond), cond, ch, w, mode)
				if err != nil {
					var se *SeriesError
					if !errors.As(err, &se) {
						se = NewSeriesError(cond, ch, w, err)
					}
					warn(se)
					continue
				}
				panel.Series = append(panel.Series, s)
				panel.Spec.Lines = append(panel.Spec.Lines, chart.Line{
					Label: cond,
					X:     s.X,
					Y:     s.Normalized,
				})
				res.Series = append(res.Series, s)
			}

			res.Panels = append(res.Panels, panel)
		}
	}

	return res, nil
}

func buildSeries(sheet *models.Sheet, cond string, ch models.Channel, w models.Weighting, mode series.Mode) (models.Series, error) {
	cols, ok := sheet.Columns[ch]
	if !ok {
		return models.Series{}, NewSeriesError(cond, ch, w, fmt.Errorf("no %s block", ch.DisplayName()))
	}
	dist, ok := cols.Distribution(w)
	if !ok {
		return models.Series{}, NewSeriesError(cond, ch, w, fmt.Errorf("%w: %q", resolve.ErrColumnNotFound, w.Keyword()))
	}
	size, ok := cols.SizeFor(w)
	if !ok {
		return models.Series{}, NewSeriesError(cond, ch, w, fmt.Errorf("%w: %q", resolve.ErrColumnNotFound, models.SizeKeyword))
	}

	x, y := series.Extract(sheet.Table, size, dist)
	r, err := series.Normalize(x, y, mode)
	if err != nil {
		return models.Series{}, err
	}
	return models.Series{
		Condition:  cond,
		Channel:    ch,
		Weighting:  w,
		X:          r.X,
		Raw:        r.Raw,
		Normalized: r.Normalized,
	}, nil
}

func rangeFor(req Request, ch models.Channel) chart.Range {
	if r, ok := req.Ranges[ch]; ok {
		return r
	}
	return DefaultRange
}

func yLabel(w models.Weighting, mode series.Mode) string {
	if mode == series.ModeRaw {
		return output.WeightingTitle(w) + " (%)"
	}
	return output.WeightingTitle(w) + " (normalized)"
}

// CSVFiles encodes every series as a CSV file named after its condition,
// channel and weighting. Conditions whose names sanitize to the same file
// name get a numeric suffix.
func (r *Result) CSVFiles() ([]output.File, error) {
	files := make([]output.File, 0, len(r.Series))
	taken := make(map[string]bool, len(r.Series))
	for _, s := range r.Series {
		name := output.UniqueName(output.FileName(s.Condition, s.Channel, s.Weighting, "csv"), taken)
		var buf bytes.Buffer
		if err := output.WriteCSV(&buf, s); err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		files = append(files, output.File{Name: name, Data: buf.Bytes()})
	}
	return files, nil
}

// GridSpecs arranges the panels as one row per channel and one column per
// weighting.
func (r *Result) GridSpecs() [][]chart.Spec {
	var rows [][]chart.Spec
	index := make(map[models.Channel]int)
	for _, p := range r.Panels {
		i, ok := index[p.Channel]
		if !ok {
			i = len(rows)
			index[p.Channel] = i
			rows = append(rows, nil)
		}
		rows[i] = append(rows[i], p.Spec)
	}
	return rows
}

// Summary converts the result into a serializable summary.
func (r *Result) Summary(bookName string) *output.Summary {
	sum := &output.Summary{
		BookName: bookName,
		Mode:     string(r.Mode),
	}
	for _, s := range r.Series {
		sum.Series = append(sum.Series, output.Summarize(s))
	}
	for _, w := range r.Warnings {
		sum.Warnings = append(sum.Warnings, w.Error())
	}
	return sum
}
