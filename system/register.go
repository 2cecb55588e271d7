// Package system implements the per-frame simulation phases run while a round is in play.
package system

import "github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"

// RegisterAll adds the standard pipeline: collisions, ship, horde, boss, bullets, powerups
func RegisterAll(g *engine.Game) {
	g.AddSystem(NewCollisionSystem())
	g.AddSystem(NewShipSystem())
	g.AddSystem(NewHordeSystem())
	g.AddSystem(NewBossSystem())
	g.AddSystem(NewBulletSystem())
	g.AddSystem(NewPowerupSystem())
}
