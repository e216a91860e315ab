// Package models defines data structures for DLS workbook processing.
package models

// Workbook represents a decoded DLS workbook with one sheet per condition.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Conditions lists sheet names in workbook order.
	Conditions []string `json:"conditions"`
	// Sheets maps condition name to its decoded sheet.
	Sheets map[string]*Sheet `json:"sheets"`
}

// Sheet returns the sheet for a condition, or nil when absent.
func (w *Workbook) Sheet(condition string) *Sheet {
	if w == nil || w.Sheets == nil {
		return nil
	}
	return w.Sheets[condition]
}
