package vitug

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const dirColor = tcell.ColorDodgerBlue

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"rs":   tcell.ColorOrange,
	"c":    tcell.ColorLightSkyBlue,
	"h":    tcell.ColorLightSkyBlue,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"json": tcell.ColorGold,
	"toml": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"log":  tcell.ColorRosyBrown,
	"tar":  tcell.ColorHotPink,
	"gz":   tcell.ColorHotPink,
	"zip":  tcell.ColorHotPink,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
}

func GetColorByFileExt(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}

// colorTag renders a color as a tview style tag.
func colorTag(color tcell.Color) string {
	return fmt.Sprintf("[#%06x]", color.Hex())
}
