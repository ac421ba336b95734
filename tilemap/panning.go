package tilemap

import (
	"fmt"
	"math"

	"github.com/OpticalFlyer/tilenames/proj"
)

// PanDirection represents a direction to pan the map
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// PanSpeed in pixels per step
const PanSpeed = 50

// Pan moves the map center in the specified direction by a fixed number of pixels
func (v *Viewport) Pan(dir PanDirection) error {
	switch dir {
	case PanLeft:
		return v.PanBy(PanSpeed, 0)
	case PanRight:
		return v.PanBy(-PanSpeed, 0)
	case PanUp:
		return v.PanBy(0, PanSpeed)
	case PanDown:
		return v.PanBy(0, -PanSpeed)
	}
	return fmt.Errorf("unknown pan direction %d", dir)
}

// PanBy moves the map by pixel offsets
// dx,dy are in screen pixels, positive dx moves map west (view east), positive dy moves map south (view north)
func (v *Viewport) PanBy(dx, dy float64) error {
	// Convert pixel offsets to tile coordinates at current zoom level
	pixelsToTiles := 1.0 / TileSize
	tileDX := dx * pixelsToTiles
	tileDY := dy * pixelsToTiles

	// Get current center in tile coordinates
	centerTileX, centerTileY, err := v.center()
	if err != nil {
		return err
	}

	// Move in tile space
	newCenterTileX := centerTileX - tileDX
	newCenterTileY := centerTileY - tileDY

	// Clamp X and Y to valid tile ranges (no wrapping)
	maxTileCoord := float64(proj.NumTiles(v.Zoom))
	newCenterTileX = math.Max(0, math.Min(maxTileCoord, newCenterTileX))
	newCenterTileY = math.Max(0, math.Min(maxTileCoord, newCenterTileY))

	// Convert tile coordinates back to lon/lat
	lon, lat, err := proj.TileFloatToLonLat(newCenterTileX, newCenterTileY, v.Zoom)
	if err != nil {
		return err
	}

	v.CenterLon = lon
	v.CenterLat = lat
	return nil
}
