package tilemap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/tilenames/proj"
)

func TestVisibleTiles(t *testing.T) {
	tests := []struct {
		name             string
		view             *Viewport
		want             TileRange
		centerX, centerY float64
	}{
		{
			name:    "Whole world at zoom 1",
			view:    NewViewport(512, 512, 0, 0, 1),
			want:    TileRange{Zoom: 1, MinX: 0, MaxX: 1, MinY: 0, MaxY: 1},
			centerX: 1,
			centerY: 1,
		},
		{
			name:    "Single tile window at zoom 2",
			view:    NewViewport(256, 256, 0, 0, 2),
			want:    TileRange{Zoom: 2, MinX: 1, MaxX: 2, MinY: 1, MaxY: 2},
			centerX: 2,
			centerY: 2,
		},
		{
			name:    "Window larger than the world is clamped",
			view:    NewViewport(800, 600, 0, 0, 0),
			want:    TileRange{Zoom: 0, MinX: 0, MaxX: 0, MinY: 0, MaxY: 0},
			centerX: 0.5,
			centerY: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cx, cy, err := tt.view.VisibleTiles()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.InDelta(t, tt.centerX, cx, 1e-9)
			require.InDelta(t, tt.centerY, cy, 1e-9)
		})
	}
}

func TestVisibleTilesInvalidZoom(t *testing.T) {
	v := &Viewport{Width: 10, Height: 10, Zoom: -3}
	_, _, _, err := v.VisibleTiles()
	require.ErrorIs(t, err, proj.ErrInvalidZoom)
}

func TestViewportZoomLimits(t *testing.T) {
	v := NewViewport(800, 600, 0, 0, 25)
	require.Equal(t, MaxViewportZoom, v.Zoom)
	v.ZoomIn()
	require.Equal(t, MaxViewportZoom, v.Zoom)

	v = NewViewport(800, 600, 0, 0, 0)
	v.ZoomOut()
	require.Equal(t, 0, v.Zoom)
	v.ZoomIn()
	require.Equal(t, 1, v.Zoom)
}

func TestScreenToLonLat(t *testing.T) {
	v := NewViewport(800, 600, 8.66227, 50.10663, 12)
	lon, lat, err := v.ScreenToLonLat(400, 300)
	require.NoError(t, err)
	require.InDelta(t, 8.66227, lon, 1e-9)
	require.InDelta(t, 50.10663, lat, 1e-9)

	// One tile east of the center.
	lon, _, err = v.ScreenToLonLat(400+TileSize, 300)
	require.NoError(t, err)
	require.InDelta(t, 8.66227+360.0/4096, lon, 1e-9)
}

func TestZoomAtPoint(t *testing.T) {
	v := NewViewport(800, 600, 8.66227, 50.10663, 10)
	beforeLon, beforeLat, err := v.ScreenToLonLat(600, 200)
	require.NoError(t, err)

	require.NoError(t, v.ZoomAtPoint(true, 600, 200))
	require.Equal(t, 11, v.Zoom)

	afterLon, afterLat, err := v.ScreenToLonLat(600, 200)
	require.NoError(t, err)
	require.InDelta(t, beforeLon, afterLon, 1e-7)
	require.InDelta(t, beforeLat, afterLat, 1e-7)

	require.NoError(t, v.ZoomAtPoint(false, 600, 200))
	require.Equal(t, 10, v.Zoom)
	require.InDelta(t, 8.66227, v.CenterLon, 1e-7)
	require.InDelta(t, 50.10663, v.CenterLat, 1e-7)
}

func TestZoomAtPointOutsideWorld(t *testing.T) {
	v := NewViewport(800, 600, 0, 0, 0)
	require.NoError(t, v.ZoomAtPoint(true, 0, 0))
	require.Equal(t, 0, v.Zoom)
	require.Equal(t, 0.0, v.CenterLon)
}

func TestPanBy(t *testing.T) {
	v := NewViewport(800, 600, 0, 0, 1)
	require.NoError(t, v.PanBy(-TileSize/2, 0))
	require.InDelta(t, 90, v.CenterLon, 1e-9)
	require.InDelta(t, 0, v.CenterLat, 1e-9)

	require.NoError(t, v.PanBy(0, TileSize/2))
	require.InDelta(t, 66.51326044311186, v.CenterLat, 1e-9)

	// No wrapping: the center stops at the east edge of the world.
	require.NoError(t, v.PanBy(-10*TileSize, 0))
	require.InDelta(t, 180, v.CenterLon, 1e-9)
}

func TestPan(t *testing.T) {
	v := NewViewport(800, 600, 0, 0, 3)
	require.NoError(t, v.Pan(PanLeft))
	x, _, err := proj.LonLatToTileFloat(v.CenterLon, v.CenterLat, v.Zoom)
	require.NoError(t, err)
	require.InDelta(t, 4-float64(PanSpeed)/TileSize, x, 1e-9)

	require.NoError(t, v.Pan(PanRight))
	require.InDelta(t, 0, v.CenterLon, 1e-9)

	require.NoError(t, v.Pan(PanDown))
	require.Less(t, v.CenterLat, 0.0)
	require.NoError(t, v.Pan(PanUp))
	require.InDelta(t, 0, v.CenterLat, 1e-9)
}

func TestTileOrigin(t *testing.T) {
	v := NewViewport(512, 512, 0, 0, 1)
	x, y, err := v.TileOrigin(Tile{Zoom: 1, X: 1, Y: 1})
	require.NoError(t, err)
	require.InDelta(t, 256, x, 1e-9)
	require.InDelta(t, 256, y, 1e-9)

	x, y, err = v.TileOrigin(Tile{Zoom: 1})
	require.NoError(t, err)
	require.InDelta(t, 0, x, 1e-9)
	require.InDelta(t, 0, y, 1e-9)

	// A child tile drawn under the parent view keeps the same screen origin.
	x, y, err = v.TileOrigin(Tile{Zoom: 2, X: 2, Y: 2})
	require.NoError(t, err)
	require.InDelta(t, 256, x, 1e-9)
	require.InDelta(t, 256, y, 1e-9)
}

func TestPanUnknownDirection(t *testing.T) {
	v := NewViewport(800, 600, 10, 20, 3)
	require.Error(t, v.Pan(PanDirection(42)))
	require.Equal(t, 10.0, v.CenterLon)
	require.Equal(t, 20.0, v.CenterLat)
}
