package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

func col(idx int, h0, h1, h2 string) models.Column {
	return models.Column{Index: idx, Header: [3]string{h0, h1, h2}}
}

func TestResolveFindsUniqueKeyword(t *testing.T) {
	columns := []models.Column{
		col(0, "Size", "d.nm", "Mean"),
		col(1, "Intensity", "Percent", "Mean"),
		col(2, "Number", "Percent", "Mean"),
	}

	got, ok := Resolve(columns, "number")
	require.True(t, ok)
	require.Equal(t, 2, got.Index)

	got, ok = Resolve(columns, "SIZE")
	require.True(t, ok)
	require.Equal(t, 0, got.Index)
}

func TestResolveMissingKeyword(t *testing.T) {
	columns := []models.Column{
		col(0, "Size", "", ""),
		col(1, "Intensity", "", ""),
	}

	_, ok := Resolve(columns, "volume")
	require.False(t, ok)

	_, ok = Resolve(nil, "size")
	require.False(t, ok)
}

func TestResolveFirstMatchWins(t *testing.T) {
	columns := []models.Column{
		col(3, "Volume", "Percent", ""),
		col(4, "Volume", "Std Dev", ""),
	}

	got, ok := Resolve(columns, "volume")
	require.True(t, ok)
	require.Equal(t, 3, got.Index)
}

func TestResolveMatchesAcrossHeaderRows(t *testing.T) {
	// "mean size" only exists once the rows are joined with a space.
	columns := []models.Column{
		col(0, "Z-Average", "Mean", "Size (d.nm)"),
	}

	_, ok := Resolve(columns, "mean size")
	require.True(t, ok)
}

func TestResolveFoldsCompatibilityCharacters(t *testing.T) {
	columns := []models.Column{
		col(0, "ＳＩＺＥ", "", ""),
	}

	_, ok := Resolve(columns, "size")
	require.True(t, ok)
}

func TestResolveBlock(t *testing.T) {
	table := &models.Table{
		Name: "StockA",
		Columns: []models.Column{
			col(0, "Size", "Size", "Size"),
			col(1, "Intensity", "Intensity", "Intensity"),
			col(2, "Number", "Number", "Number"),
			col(3, "", "", ""),
			col(4, "Size", "", ""),
			col(5, "Volume", "", ""),
		},
	}

	back := ResolveBlock(table, models.Block{Channel: models.ChannelBack, First: 0, Last: 2})
	require.True(t, back.HasSize)
	require.Equal(t, 0, back.Size.Index)
	require.Len(t, back.Distributions, 2)
	require.Equal(t, []string{"volume"}, back.Missing)

	madls := ResolveBlock(table, models.Block{Channel: models.ChannelMADLS, First: 4, Last: 5})
	require.Equal(t, 4, madls.Size.Index)
	c, ok := madls.Distribution(models.WeightingVolume)
	require.True(t, ok)
	require.Equal(t, 5, c.Index)
	require.Equal(t, []string{"intensity", "number"}, madls.Missing)
}
