package tilemap

import "testing"

func BenchmarkVisibleTiles(b *testing.B) {
	views := []*Viewport{
		NewViewport(800, 600, 0, 0, 1),
		NewViewport(1920, 1080, -98.5833, 39.8333, 4),
		NewViewport(800, 600, -122.67890, 45.12345, 15),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range views {
			v.VisibleTiles()
		}
	}
}

func BenchmarkBoundToTileRange(b *testing.B) {
	bounds := []Bound{
		{West: -180, South: -90, East: 180, North: 90},
		{West: 7.409, South: 43.724, East: 7.440, North: 43.752},
		{West: -124.8, South: 24.4, East: -66.9, North: 49.4},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, bd := range bounds {
			BoundToTileRange(bd, 12)
		}
	}
}
