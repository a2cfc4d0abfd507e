package model

// AggroState represents the behavioural state of an enemy.
type AggroState int32

const (
	// AggroPassive - enemy stands still and ignores the player
	AggroPassive AggroState = iota
	// AggroDialogue - enemy is talking to the player in detection range
	AggroDialogue
	// AggroAggressive - enemy chases the player and deals contact damage
	AggroAggressive
	// AggroDead - terminal, entity is removed from the world
	AggroDead
)

// String returns human-readable aggro state name
func (s AggroState) String() string {
	switch s {
	case AggroPassive:
		return "PASSIVE"
	case AggroDialogue:
		return "SHOWING_DIALOGUE"
	case AggroAggressive:
		return "AGGRESSIVE"
	case AggroDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}
