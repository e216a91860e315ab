package config

import "strings"

func (c *Config) normalize() error {
	c.Layout.Orientation = strings.ToLower(strings.TrimSpace(c.Layout.Orientation))
	c.Layout.BackColumns = strings.ToUpper(strings.TrimSpace(c.Layout.BackColumns))
	c.Layout.MADLSColumns = strings.ToUpper(strings.TrimSpace(c.Layout.MADLSColumns))

	c.Render.Mode = strings.ToLower(strings.TrimSpace(c.Render.Mode))
	c.Render.Channels = lowerAll(c.Render.Channels)
	c.Render.Weightings = lowerAll(c.Render.Weightings)
	c.Render.Back.Title = strings.TrimSpace(c.Render.Back.Title)
	c.Render.MADLS.Title = strings.TrimSpace(c.Render.MADLS.Title)

	if strings.TrimSpace(c.Output.Dir) != "" {
		dir, err := expandPath(strings.TrimSpace(c.Output.Dir))
		if err != nil {
			return err
		}
		c.Output.Dir = dir
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
