package entity

// Archetype is the result of the food personality quiz.
type Archetype string

const (
	ArchetypeSpicy  Archetype = "spicy"
	ArchetypeSweet  Archetype = "sweet"
	ArchetypeCheesy Archetype = "cheesy"
)

// IsValid reports whether a is a known archetype.
func (a Archetype) IsValid() bool {
	return a == ArchetypeSpicy || a == ArchetypeSweet || a == ArchetypeCheesy
}

// PollVote is the option chosen in a given day's poll.
type PollVote struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Option int    `json:"option"`
}

// Preferences are client-only flags; they can be rebuilt at any time.
type Preferences struct {
	Archetype   Archetype `json:"archetype,omitempty"`
	PollVote    *PollVote `json:"pollVote,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
}
