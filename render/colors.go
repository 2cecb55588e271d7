package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 20)
	RgbLimit      = tcell.NewRGBColor(40, 40, 60)

	RgbShip = tcell.NewRGBColor(80, 255, 80)
	RgbBoss = tcell.NewRGBColor(255, 60, 60)

	RgbAlienTier1 = tcell.NewRGBColor(230, 100, 255) // Top rows
	RgbAlienTier2 = tcell.NewRGBColor(80, 220, 255)
	RgbAlienTier3 = tcell.NewRGBColor(120, 255, 120)

	RgbBulletShip  = tcell.NewRGBColor(255, 255, 255)
	RgbBulletEnemy = tcell.NewRGBColor(255, 220, 0)

	RgbFastMove = tcell.NewRGBColor(100, 150, 255)
	RgbFastShot = tcell.NewRGBColor(255, 165, 0)

	RgbStatusBar   = tcell.NewRGBColor(135, 206, 250)
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)
	RgbTitle       = tcell.NewRGBColor(255, 255, 0)
	RgbMenuText    = tcell.NewRGBColor(200, 200, 200)
	RgbMenuCurrent = tcell.NewRGBColor(255, 255, 255)
	RgbWin         = tcell.NewRGBColor(80, 255, 80)
	RgbLose        = tcell.NewRGBColor(255, 60, 60)
)

// Glyphs
const (
	GlyphShip        = '█'
	GlyphBoss        = '▒'
	GlyphAlien       = '▓'
	GlyphBulletUp    = '│'
	GlyphBulletDown  = '┃'
	GlyphFastMove    = '»'
	GlyphFastShot    = '¤'
	GlyphLimitMarker = '┊'
)

// spriteLook returns the glyph and color for one entity
func spriteLook(kind entity.Kind, tier entity.Tier, movingUp bool) (rune, tcell.Color) {
	switch kind {
	case entity.KindPlayerShip:
		return GlyphShip, RgbShip
	case entity.KindBossShip:
		return GlyphBoss, RgbBoss
	case entity.KindAlien:
		switch tier {
		case entity.Tier1:
			return GlyphAlien, RgbAlienTier1
		case entity.Tier2:
			return GlyphAlien, RgbAlienTier2
		default:
			return GlyphAlien, RgbAlienTier3
		}
	case entity.KindBullet:
		if movingUp {
			return GlyphBulletUp, RgbBulletShip
		}
		return GlyphBulletDown, RgbBulletEnemy
	case entity.KindFastMove:
		return GlyphFastMove, RgbFastMove
	case entity.KindFastShot:
		return GlyphFastShot, RgbFastShot
	}
	return '?', RgbMenuText
}
