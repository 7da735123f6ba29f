package enums

// CSS-only background patterns the renderer knows how to draw.
var WallpaperPatterns = []string{
	"dots",
	"grid",
	"lines",
	"waves",
	"circles",
	"squares",
	"triangles",
	"hexagons",
	"diagonal",
	"crosshatch",
	"noise",
}

func IsValidWallpaper(pattern string) bool {
	for _, p := range WallpaperPatterns {
		if p == pattern {
			return true
		}
	}
	return false
}
