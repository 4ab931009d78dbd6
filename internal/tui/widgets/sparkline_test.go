// ABOUTME: Tests for the sparkline widget
// ABOUTME: Verifies scaling, sampling, and edge case behavior

package widgets

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil, 10, lipgloss.Color("")); got != "" {
		t.Errorf("expected empty string for no values, got %q", got)
	}
	if got := Sparkline([]float64{1, 2}, 0, lipgloss.Color("")); got != "" {
		t.Errorf("expected empty string for zero width, got %q", got)
	}
}

func TestSparklineScalesToRange(t *testing.T) {
	out := Sparkline([]float64{0, 100}, 2, lipgloss.Color(""))
	runes := []rune(out)
	if len(runes) != 2 {
		t.Fatalf("expected 2 characters, got %d", len(runes))
	}
	if runes[0] != SparklineBlocks[0] {
		t.Errorf("expected lowest block for minimum, got %c", runes[0])
	}
	if runes[1] != SparklineBlocks[len(SparklineBlocks)-1] {
		t.Errorf("expected highest block for maximum, got %c", runes[1])
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	out := Sparkline([]float64{5, 5, 5}, 3, lipgloss.Color(""))
	mid := SparklineBlocks[len(SparklineBlocks)/2]
	for _, r := range out {
		if r != mid {
			t.Errorf("expected middle block for flat series, got %c", r)
		}
	}
}

func TestSparklinePadsShortSeries(t *testing.T) {
	out := Sparkline([]float64{10}, 4, lipgloss.Color(""))
	if got := len([]rune(out)); got != 4 {
		t.Errorf("expected width 4, got %d", got)
	}
}

func TestSparklineSamplesLongSeries(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	out := Sparkline(values, 10, lipgloss.Color(""))
	if got := len([]rune(out)); got != 10 {
		t.Errorf("expected width 10, got %d", got)
	}
}
