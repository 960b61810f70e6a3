package audio

// Cue identifies a session sound
type Cue int

const (
	CueDestroy  Cue = iota // Avatar swallowed particles
	CuePanic               // Panic mode started
	CuePrompt              // Click prompt opened
	CueGameOver            // Session ended
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueDestroy:
		return "destroy"
	case CuePanic:
		return "panic"
	case CuePrompt:
		return "prompt"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
