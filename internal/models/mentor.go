package models

// Mentor and scenario sets are closed at the API boundary: unknown values
// are rejected there rather than silently passed through to the prompt.
// Extending either set is a one-line change here.

type MentorProfile struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

var Mentors = []MentorProfile{
	{Name: "Zig Ziglar", Style: "Moral, optimistic, 'transfer of feeling'."},
	{Name: "Chris Voss", Style: "Tactical empathy, labeling, 'How' questions."},
	{Name: "Grant Cardone", Style: "10X aggression, price is a myth, close hard."},
	{Name: "David Sandler", Style: "Disarming, reverse psychology, 'dummy curve'."},
}

var Scenarios = []string{
	"Price Shock",
	"Spousal Stall",
	"Competitor",
	"Technical",
	"Ghosting",
}

func ValidMentor(name string) bool {
	for _, m := range Mentors {
		if m.Name == name {
			return true
		}
	}
	return false
}

func ValidScenario(name string) bool {
	for _, s := range Scenarios {
		if s == name {
			return true
		}
	}
	return false
}
