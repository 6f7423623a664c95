package core

// Event is a discrete simulation notification produced during a tick.
// The core emits them; audio/haptics collaborators consume them.
type Event int

const (
	EventNone Event = iota
	EventFired
	EventHit
	EventKilled
	EventExplosion
	EventPickup
	EventWaveStarted
	EventBossAppeared
	EventBossDefeated
	EventPlayerDamaged
	EventPlayerDied
	EventVictory
)

// String returns a stable name for the event, suitable for logging.
func (e Event) String() string {
	switch e {
	case EventFired:
		return "fired"
	case EventHit:
		return "hit"
	case EventKilled:
		return "killed"
	case EventExplosion:
		return "explosion"
	case EventPickup:
		return "pickup"
	case EventWaveStarted:
		return "wave_started"
	case EventBossAppeared:
		return "boss_appeared"
	case EventBossDefeated:
		return "boss_defeated"
	case EventPlayerDamaged:
		return "player_damaged"
	case EventPlayerDied:
		return "player_died"
	case EventVictory:
		return "victory"
	default:
		return "none"
	}
}
