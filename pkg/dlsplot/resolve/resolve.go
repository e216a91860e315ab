// Package resolve locates size and distribution columns by header keyword.
package resolve

import (
	"errors"
	"strings"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// ErrColumnNotFound indicates no column header contains the keyword.
var ErrColumnNotFound = errors.New("column not found")

// Resolve returns the first column whose joined header contains keyword.
// Matching is case-insensitive and runs on NFKC-folded text.
func Resolve(columns []models.Column, keyword string) (models.Column, bool) {
	needle := models.FoldHeader(keyword)
	for _, c := range columns {
		if strings.Contains(c.Joined(), needle) {
			return c, true
		}
	}
	return models.Column{}, false
}

// ResolveBlock resolves the size column and every weighting column inside b.
func ResolveBlock(t *models.Table, b models.Block) models.ColumnMap {
	columns := t.Slice(b)
	m := models.ColumnMap{
		Distributions: make(map[models.Weighting]models.Column, len(models.Weightings)),
	}

	if c, ok := Resolve(columns, models.SizeKeyword); ok {
		m.Size = c
		m.HasSize = true
	} else {
		m.Missing = append(m.Missing, models.SizeKeyword)
	}

	for _, w := range models.Weightings {
		c, ok := Resolve(columns, w.Keyword())
		if !ok {
			m.Missing = append(m.Missing, w.Keyword())
			continue
		}
		m.Distributions[w] = c
	}
	return m
}
