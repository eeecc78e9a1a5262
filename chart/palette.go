package chart

import (
	"fmt"
	"sort"
)

// Palette colors candlesticks and the trend line.
type Palette struct {
	Increasing string `json:"increasing" yaml:"increasing"`
	Decreasing string `json:"decreasing" yaml:"decreasing"`
	Line       string `json:"line,omitempty" yaml:"line,omitempty"`
}

var (
	DefaultPalette    = Palette{Increasing: "#99B668", Decreasing: "#E03616", Line: "#9AC4F8"}
	ColorblindPalette = Palette{Increasing: "#009E73", Decreasing: "#D55E00", Line: "#56B4E9"}
	CandlePalette     = Palette{Increasing: "#35C730", Decreasing: "#C73535"}
)

// BarColors is the five color palette of the indicator bar chart.
var BarColors = []string{"#FFE2D1", "#E1F0C4", "#6BAB90", "#0D5C63", "#5E4C5A"}

var palettes = map[string]Palette{
	"default":    DefaultPalette,
	"colorblind": ColorblindPalette,
	"candles":    CandlePalette,
}

// PaletteByName resolves a named palette.
func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette %q", name)
	}
	return p, nil
}

// PaletteNames lists the known palette names, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
