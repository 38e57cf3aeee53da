package daily

import "time"

// PollOption is one answer of a poll with its seeded vote count.
type PollOption struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll is one entry of the daily rotation.
type Poll struct {
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

// TotalVotes sums the votes of all options.
func (p Poll) TotalVotes() int {
	total := 0
	for _, o := range p.Options {
		total += o.Votes
	}

	return total
}

// WithVote returns a copy of p with one extra vote on the option at index.
func (p Poll) WithVote(index int) Poll {
	options := make([]PollOption, len(p.Options))
	copy(options, p.Options)
	if index >= 0 && index < len(options) {
		options[index].Votes++
	}

	return Poll{Question: p.Question, Options: options}
}

var pollPool = []Poll{
	{
		Question: "Best Street Food Companion?",
		Options: []PollOption{
			{ID: 1, Text: "Masala Chai", Votes: 45},
			{ID: 2, Text: "Thums Up", Votes: 32},
			{ID: 3, Text: "Filter Coffee", Votes: 28},
			{ID: 4, Text: "Sugarcane Juice", Votes: 15},
		},
	},
	{
		Question: "Spiciest Dish Challenge?",
		Options: []PollOption{
			{ID: 1, Text: "Misal Pav", Votes: 62},
			{ID: 2, Text: "Schezwan Vada Pav", Votes: 41},
			{ID: 3, Text: "Kolhapuri Thali", Votes: 35},
			{ID: 4, Text: "Thecha Bhakri", Votes: 22},
		},
	},
	{
		Question: "Late Night Craving?",
		Options: []PollOption{
			{ID: 1, Text: "Maggi", Votes: 89},
			{ID: 2, Text: "Egg Burji", Votes: 54},
			{ID: 3, Text: "Momos", Votes: 47},
			{ID: 4, Text: "Shawarma", Votes: 63},
		},
	},
}

// Polls returns a copy of the rotation pool.
func Polls() []Poll {
	out := make([]Poll, len(pollPool))
	copy(out, pollPool)

	return out
}

// TodaysPoll returns the poll scheduled for t.
func TodaysPoll(t time.Time) Poll {
	poll, _ := Pick(pollPool, t)

	return poll
}
