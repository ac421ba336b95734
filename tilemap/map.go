// Package tilemap builds tiles, tile ranges and map views on top of the
// projection in package proj.
package tilemap

import (
	"math"

	"github.com/OpticalFlyer/tilenames/proj"
)

// MaxViewportZoom is the maximum zoom level a Viewport steps to.
// Most public tile servers stop at 19.
const MaxViewportZoom = 19

// Viewport is the state of a slippy map view. It is a plain value; guard it
// yourself if several goroutines share one.
type Viewport struct {
	CenterLon float64
	CenterLat float64
	Zoom      int
	Width     int // pixels
	Height    int // pixels
}

// NewViewport creates a view of the given pixel size centered on lon/lat.
// The zoom is clamped to [0, MaxViewportZoom].
func NewViewport(width, height int, lon, lat float64, zoom int) *Viewport {
	return &Viewport{
		CenterLon: lon,
		CenterLat: lat,
		Zoom:      max(0, min(MaxViewportZoom, zoom)),
		Width:     width,
		Height:    height,
	}
}

// center returns the view center in fractional tile coordinates.
func (v *Viewport) center() (x, y float64, err error) {
	return proj.LonLatToTileFloat(v.CenterLon, proj.ClampLatitude(v.CenterLat), v.Zoom)
}

// VisibleTiles determines which tiles are needed for the current view.
// It also returns the view center in fractional tile coordinates.
func (v *Viewport) VisibleTiles() (TileRange, float64, float64, error) {
	centerXTileF, centerYTileF, err := v.center()
	if err != nil {
		return TileRange{}, 0, 0, err
	}

	topLeftXTileF := centerXTileF - float64(v.Width)/2.0/TileSize
	topLeftYTileF := centerYTileF - float64(v.Height)/2.0/TileSize
	bottomRightXTileF := centerXTileF + float64(v.Width)/2.0/TileSize
	bottomRightYTileF := centerYTileF + float64(v.Height)/2.0/TileSize

	minTileX := int(math.Floor(topLeftXTileF))
	minTileY := int(math.Floor(topLeftYTileF))
	maxTileX := int(math.Floor(bottomRightXTileF))
	maxTileY := int(math.Floor(bottomRightYTileF))

	maxCoord := proj.NumTiles(v.Zoom)
	return TileRange{
		Zoom: v.Zoom,
		MinX: max(0, minTileX),
		MaxX: min(maxCoord-1, maxTileX),
		MinY: max(0, minTileY),
		MaxY: min(maxCoord-1, maxTileY),
	}, centerXTileF, centerYTileF, nil
}

// TileOrigin returns the screen position of the top-left corner of t.
func (v *Viewport) TileOrigin(t Tile) (screenX, screenY float64, err error) {
	centerXTileF, centerYTileF, err := v.center()
	if err != nil {
		return 0, 0, err
	}
	scale := math.Ldexp(1, t.Zoom-v.Zoom)
	screenX = float64(v.Width)/2 - (centerXTileF*scale-float64(t.X))*TileSize
	screenY = float64(v.Height)/2 - (centerYTileF*scale-float64(t.Y))*TileSize
	return screenX, screenY, nil
}
