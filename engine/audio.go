package engine

// Cue is a fire-and-forget sound triggered by a simulation event
type Cue uint8

const (
	CueShipFire Cue = iota
	CueAlienFire
	CueBossFire
	CueAlienExplosion
	CueShipExplosion
	CuePowerup
	CueWin
	CueLose
	CueMenu
	CueCount
)

var cueNames = [CueCount]string{
	CueShipFire:       "ship-fire",
	CueAlienFire:      "alien-fire",
	CueBossFire:       "boss-fire",
	CueAlienExplosion: "alien-explosion",
	CueShipExplosion:  "ship-explosion",
	CuePowerup:        "powerup",
	CueWin:            "win",
	CueLose:           "lose",
	CueMenu:           "menu",
}

func (c Cue) String() string {
	if c < CueCount {
		return cueNames[c]
	}
	return "cue(?)"
}

// Loop is a looping sound started and stopped by state transitions
type Loop uint8

const (
	LoopBackground Loop = iota
	LoopBoss
	LoopCount
)

func (l Loop) String() string {
	switch l {
	case LoopBackground:
		return "background"
	case LoopBoss:
		return "boss"
	}
	return "loop(?)"
}

// Audio receives cue triggers from the core; implementations must not block
type Audio interface {
	Play(cue Cue)
	StartLoop(loop Loop)
	StopLoop(loop Loop)
}

// NopAudio discards every cue
type NopAudio struct{}

func (NopAudio) Play(Cue)       {}
func (NopAudio) StartLoop(Loop) {}
func (NopAudio) StopLoop(Loop)  {}
