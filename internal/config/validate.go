package config

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/chart"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/parser"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/series"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLayout() error {
	if _, err := c.Orientation(); err != nil {
		return err
	}
	if _, err := c.Blocks(); err != nil {
		return err
	}
	if c.Layout.HeaderRows < 0 || c.Layout.HeaderRows > models.HeaderRows {
		return fmt.Errorf("layout.header_rows must be between 0 and %d", models.HeaderRows)
	}
	return nil
}

func (c *Config) validateRender() error {
	if _, err := series.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("render.mode: %w", err)
	}
	for _, ch := range c.Render.Channels {
		if _, err := models.ParseChannel(ch); err != nil {
			return fmt.Errorf("render.channels: %w", err)
		}
	}
	for _, w := range c.Render.Weightings {
		if _, err := models.ParseWeighting(w); err != nil {
			return fmt.Errorf("render.weightings: %w", err)
		}
	}
	if c.Render.WidthIn <= 0 || c.Render.HeightIn <= 0 {
		return errors.New("render.width_in and render.height_in must be positive")
	}
	for ch, r := range c.Ranges() {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("render.%s: %w", ch, err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console, or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}

// Orientation parses layout.orientation.
func (c *Config) Orientation() (models.Orientation, error) {
	o, err := models.ParseOrientation(c.Layout.Orientation)
	if err != nil {
		return "", fmt.Errorf("layout.orientation: %w", err)
	}
	return o, nil
}

// Blocks parses the configured column ranges into a layout. Channels without
// a range use the orientation's default block.
func (c *Config) Blocks() (models.Layout, error) {
	o, err := c.Orientation()
	if err != nil {
		return nil, err
	}
	layout := o.DefaultLayout()
	for ch, ref := range map[models.Channel]string{
		models.ChannelBack:  c.Layout.BackColumns,
		models.ChannelMADLS: c.Layout.MADLSColumns,
	} {
		if ref == "" {
			continue
		}
		first, last, err := parser.ColumnRange(ref)
		if err != nil {
			return nil, fmt.Errorf("layout.%s_columns: %w", ch, err)
		}
		layout[ch] = models.Block{Channel: ch, First: first, Last: last}
	}
	return layout, nil
}

// Ranges returns the configured x window per channel.
func (c *Config) Ranges() map[models.Channel]chart.Range {
	return map[models.Channel]chart.Range{
		models.ChannelBack:  {Min: c.Render.Back.XMin, Max: c.Render.Back.XMax},
		models.ChannelMADLS: {Min: c.Render.MADLS.XMin, Max: c.Render.MADLS.XMax},
	}
}

// Titles returns the configured custom titles per channel; empty means default.
func (c *Config) Titles() map[models.Channel]string {
	return map[models.Channel]string{
		models.ChannelBack:  c.Render.Back.Title,
		models.ChannelMADLS: c.Render.MADLS.Title,
	}
}
