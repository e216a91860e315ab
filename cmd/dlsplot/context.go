package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ukaji3/dlsplot-go/internal/config"
	"github.com/ukaji3/dlsplot-go/internal/logging"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot"
)

type commandContext struct {
	configFlag *string
	logLevel   *string
	logFormat  *string

	config     *config.Config
	configPath string
	configSeen bool
}

func newCommandContext(configFlag, logLevel, logFormat *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		logLevel:   logLevel,
		logFormat:  logFormat,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, path, exists, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	if *c.logLevel != "" {
		cfg.Logging.Level = *c.logLevel
	}
	if *c.logFormat != "" {
		cfg.Logging.Format = *c.logFormat
	}
	c.config = cfg
	c.configPath = path
	c.configSeen = exists
	return cfg, nil
}

// logger builds a logger writing to the command's stderr.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

// loadOptions maps the layout section onto workbook loading options.
func (c *commandContext) loadOptions(logger *slog.Logger) (dlsplot.Options, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return dlsplot.Options{}, err
	}
	orientation, err := cfg.Orientation()
	if err != nil {
		return dlsplot.Options{}, err
	}
	layout, err := cfg.Blocks()
	if err != nil {
		return dlsplot.Options{}, err
	}
	return dlsplot.Options{
		Orientation:        orientation,
		HeaderRows:         cfg.Layout.HeaderRows,
		Layout:             layout,
		AutoDetect:         cfg.Layout.AutoDetect,
		IgnoreDefinedNames: cfg.Layout.IgnoreDefinedNames,
		Logger:             logger,
	}, nil
}
