package entity

import "github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"

// NewPlayerShip creates the player ship at its start position
func NewPlayerShip() *Entity {
	return New(KindPlayerShip, Box{
		X:      parameter.ShipStartX,
		Y:      parameter.ShipStartY,
		Width:  parameter.ShipWidth,
		Height: parameter.ShipHeight,
	})
}

// NewBossShip creates the boss ship parked past the right edge
func NewBossShip() *Entity {
	return New(KindBossShip, Box{
		X:      parameter.BossStartX,
		Y:      parameter.BossStartY,
		Width:  parameter.BossWidth,
		Height: parameter.BossHeight,
	})
}

// NewHorde builds the alien formation in index order, row by row
// The returned last alien is the bottom-right one, the back of the list
func NewHorde() (*List, *Entity) {
	horde := NewList()

	for i := 0; i < parameter.HordeSize; i++ {
		col := i % parameter.HordeColumns
		row := i / parameter.HordeColumns

		alien := New(KindAlien, Box{
			X:      parameter.HordeOffsetX + float64(col)*(parameter.AlienWidth+parameter.AlienGapX),
			Y:      parameter.HordeOffsetY + float64(row)*(parameter.AlienHeight+parameter.AlienGapY),
			Width:  parameter.AlienWidth,
			Height: parameter.AlienHeight,
		})
		alien.Tier = tierForRow(row)

		horde.PushBack(alien)
	}

	return horde, horde.Back()
}

func tierForRow(row int) Tier {
	switch {
	case row < parameter.HordeTier1Rows:
		return Tier1
	case row < parameter.HordeTier2Rows:
		return Tier2
	default:
		return Tier3
	}
}
