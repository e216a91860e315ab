package dlsplot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

func TestSessionDefaultTitles(t *testing.T) {
	sess := NewSession()
	require.Equal(t, "Back Scatter", sess.Title(models.ChannelBack))

	sess.Select([]string{"StockA"})
	require.Equal(t, "StockA - Back Scatter", sess.Title(models.ChannelBack))
	require.Equal(t, "StockA - MADLS", sess.Title(models.ChannelMADLS))

	sess.Select([]string{"StockA", "StockB"})
	require.Equal(t, "MADLS", sess.Title(models.ChannelMADLS))
}

func TestSessionSelectionChangeResetsTitles(t *testing.T) {
	sess := NewSession()
	require.True(t, sess.Select([]string{"StockA"}))
	sess.SetTitle(models.ChannelBack, "Custom")
	require.Equal(t, "Custom", sess.Title(models.ChannelBack))

	require.False(t, sess.Select([]string{"StockA"}))
	require.Equal(t, "Custom", sess.Title(models.ChannelBack))

	require.True(t, sess.Select([]string{"StockB"}))
	require.Equal(t, "StockB - Back Scatter", sess.Title(models.ChannelBack))
	require.Equal(t, []string{"StockB"}, sess.Selection())
}

func TestSessionBlankTitleRestoresDefault(t *testing.T) {
	sess := NewSession()
	sess.Select([]string{"S"})
	sess.SetTitle(models.ChannelMADLS, "X")
	sess.SetTitle(models.ChannelMADLS, "  ")
	require.Equal(t, "S - MADLS", sess.Title(models.ChannelMADLS))
}
