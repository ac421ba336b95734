package tilemap

import (
	"math"

	"github.com/OpticalFlyer/tilenames/proj"
)

// ZoomIn increases the zoom level if not at max zoom
func (v *Viewport) ZoomIn() {
	if v.Zoom < MaxViewportZoom {
		v.Zoom++
	}
}

// ZoomOut decreases the zoom level if not at minimum zoom
func (v *Viewport) ZoomOut() {
	if v.Zoom > 0 {
		v.Zoom--
	}
}

// ScreenToWorld converts screen coordinates to tile coordinates
func (v *Viewport) ScreenToWorld(screenX, screenY float64) (tileX, tileY float64, err error) {
	// Get current center in tile coordinates
	centerTileX, centerTileY, err := v.center()
	if err != nil {
		return 0, 0, err
	}

	// Convert screen coords to tile coords relative to center
	pixelsToTiles := 1.0 / TileSize
	tileX = centerTileX + (screenX-float64(v.Width)/2)*pixelsToTiles
	tileY = centerTileY + (screenY-float64(v.Height)/2)*pixelsToTiles

	return tileX, tileY, nil
}

// ScreenToLonLat converts screen coordinates to WGS84 coordinates
func (v *Viewport) ScreenToLonLat(screenX, screenY float64) (lon, lat float64, err error) {
	tileX, tileY, err := v.ScreenToWorld(screenX, screenY)
	if err != nil {
		return 0, 0, err
	}
	return proj.TileFloatToLonLat(tileX, tileY, v.Zoom)
}

// ZoomAtPoint zooms the map while keeping the given world point at the same
// screen location. It does nothing at the zoom limits or if the point lies
// outside the world.
func (v *Viewport) ZoomAtPoint(zoomIn bool, screenX, screenY float64) error {
	if (zoomIn && v.Zoom >= MaxViewportZoom) || (!zoomIn && v.Zoom <= 0) {
		return nil
	}

	// Get mouse position in tile coordinates before zoom
	mouseWorldX, mouseWorldY, err := v.ScreenToWorld(screenX, screenY)
	if err != nil {
		return err
	}

	// Check if mouse is within world bounds
	maxTileCoord := float64(proj.NumTiles(v.Zoom))
	if mouseWorldX < 0 || mouseWorldX > maxTileCoord ||
		mouseWorldY < 0 || mouseWorldY > maxTileCoord {
		return nil
	}

	// Change zoom level
	oldZoom := v.Zoom
	if zoomIn {
		v.Zoom++
	} else {
		v.Zoom--
	}

	// Convert mouse world position to the new zoom level
	scaleFactor := math.Ldexp(1, v.Zoom-oldZoom)
	mouseWorldXNewZoom := mouseWorldX * scaleFactor
	mouseWorldYNewZoom := mouseWorldY * scaleFactor

	// Convert screen position to tile offset at new zoom level
	pixelsToTiles := 1.0 / TileSize
	screenTileOffsetX := (screenX - float64(v.Width)/2) * pixelsToTiles
	screenTileOffsetY := (screenY - float64(v.Height)/2) * pixelsToTiles

	// Calculate new center in tile coordinates and convert back to lon/lat
	lon, lat, err := proj.TileFloatToLonLat(
		mouseWorldXNewZoom-screenTileOffsetX,
		mouseWorldYNewZoom-screenTileOffsetY,
		v.Zoom)
	if err != nil {
		return err
	}

	// Clamp to valid ranges
	v.CenterLon = math.Max(-180.0, math.Min(180.0, lon))
	v.CenterLat = proj.ClampLatitude(lat)
	return nil
}
