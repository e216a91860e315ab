package output

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// File is one named artifact.
type File struct {
	Name string
	Data []byte
}

// FileName builds a filesystem-safe artifact name such as
// "StockA_back_intensity.csv".
func FileName(condition string, ch models.Channel, w models.Weighting, ext string) string {
	parts := []string{sanitize(condition), string(ch), string(w)}
	if condition == "" {
		parts = parts[1:]
	}
	return strings.Join(parts, "_") + "." + strings.TrimPrefix(ext, ".")
}

// UniqueName returns name, or name with "-2", "-3", ... before the extension
// when it is already in taken. The returned name is added to taken.
func UniqueName(name string, taken map[string]bool) string {
	candidate := name
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 2; taken[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
	}
	taken[candidate] = true
	return candidate
}

// WriteZip bundles files into a ZIP archive. Duplicate names are rejected.
func WriteZip(w io.Writer, files []File) error {
	zw := zip.NewWriter(w)
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if _, ok := seen[f.Name]; ok {
			zw.Close()
			return fmt.Errorf("duplicate archive entry %q", f.Name)
		}
		seen[f.Name] = struct{}{}

		fw, err := zw.Create(f.Name)
		if err != nil {
			zw.Close()
			return err
		}
		if _, err := fw.Write(f.Data); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "sheet"
	}
	return b.String()
}
