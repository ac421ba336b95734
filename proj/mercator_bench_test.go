package proj

import "testing"

func BenchmarkLonLatToTile(b *testing.B) {
	coords := [][3]float64{
		{0, 0, 1},
		{180, MaxLatitude - 1e-9, 10},
		{-180, -MaxLatitude + 1e-9, 15},
		{-122.67890, 45.12345, 12},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range coords {
			LonLatToTile(c[0], c[1], int(c[2]))
		}
	}
}

func BenchmarkTileToLonLat(b *testing.B) {
	tiles := [][3]int{
		{0, 0, 0},
		{4376, 2932, 13},
		{1023, 1023, 10},
		{5241, 11720, 15},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, t := range tiles {
			TileToLonLat(t[0], t[1], t[2])
		}
	}
}

func BenchmarkMetersToTileFloat(b *testing.B) {
	coords := [][3]float64{
		{0, 0, 1},
		{20037508.34, 20037508.34, 10},
		{-20037508.34, -20037508.34, 15},
		{-13656274.0, 5703158.0, 12}, // Portland, OR
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range coords {
			MetersToTileFloat(c[0], c[1], int(c[2]))
		}
	}
}
