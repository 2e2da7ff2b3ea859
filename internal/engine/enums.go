package engine

// Group names a collision group of bodies.
type Group int

const (
	GroupNone Group = iota
	GroupPlayer
	GroupPlatform
	GroupCollectible
	GroupHazard
)

func (g Group) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupPlatform:
		return "platform"
	case GroupCollectible:
		return "collectible"
	case GroupHazard:
		return "hazard"
	default:
		return "none"
	}
}

// Key is one of the directional keys the core polls.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	default:
		return "unknown"
	}
}

// Cue identifies a sound.
type Cue int

const (
	CueBackground Cue = iota + 1
	CueCollect
	CuePowerUp
	CueDeath
)

func (c Cue) String() string {
	switch c {
	case CueBackground:
		return "background"
	case CueCollect:
		return "collect"
	case CuePowerUp:
		return "power-up"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Animation is the closed set of player poses.
type Animation int

const (
	AnimTurn Animation = iota // idle, single pose
	AnimLeft                  // run left, looping
	AnimRight                 // run right, looping
)

func (a Animation) String() string {
	switch a {
	case AnimLeft:
		return "left"
	case AnimRight:
		return "right"
	default:
		return "turn"
	}
}

// Tint is a cosmetic color effect applied to a sprite.
type Tint int

const (
	TintNone Tint = iota
	TintDeath
)

// Sprite selects the visual footprint of a body.
type Sprite int

const (
	SpriteGround Sprite = iota + 1
	SpriteStar
	SpriteDude
	SpriteBomb
)

// TextID names a HUD text surface.
type TextID int

const (
	TextScore TextID = iota + 1
	TextLevel
)
