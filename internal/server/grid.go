package server

import (
	"fmt"

	"github.com/gravitas-015/hexgrid"
	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/internal/config"
	"github.com/gravitas-015/hexgrid/point"
	"github.com/gravitas-015/hexgrid/render"
)

// NewFactory builds the hex factory described by the grid section of
// the config.
func NewFactory(cfg config.GridConfig) (*hex.Factory, error) {
	orientation, err := hexgrid.ParseOrientation(cfg.Orientation)
	if err != nil {
		return nil, fmt.Errorf("invalid grid orientation: %w", err)
	}

	return hex.New(hex.Settings{
		Orientation: orientation,
		Size:        cfg.Size,
		Origin:      point.New(cfg.OriginX, cfg.OriginY),
	}), nil
}

// BuildGrid constructs the named shape around the factory origin.
// Radius drives the hexagon, ring, spiral and triangle shapes; width
// and height drive rectangle and parallelogram.
func BuildGrid(f *hex.Factory, shape string, radius, width, height int) (*grid.Grid, error) {
	center := f.Hex()

	switch shape {
	case "hexagon":
		return grid.Hexagon(f, center, radius), nil
	case "ring":
		return grid.Ring(f, center, radius), nil
	case "spiral":
		return grid.Spiral(f, center, radius), nil
	case "rectangle":
		return grid.Rectangle(f, width, height, center), nil
	case "parallelogram":
		return grid.Parallelogram(f, width, height, center), nil
	case "triangle":
		return grid.Triangle(f, radius, center), nil
	}

	return nil, fmt.Errorf("unknown grid shape %q", shape)
}

// RenderOptions maps the render section of the config onto the render
// package options.
func RenderOptions(cfg config.RenderConfig) render.Options {
	return render.Options{
		Palette:     cfg.Palette,
		Background:  cfg.Background,
		Stroke:      cfg.Stroke,
		Labels:      cfg.Labels,
		Supersample: cfg.Supersample,
		Seed:        cfg.Seed,
	}
}
