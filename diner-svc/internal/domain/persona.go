package domain

import "fmt"

type PersonaKind string

const (
	PersonaFriend     PersonaKind = "friend"
	PersonaLover      PersonaKind = "lover"
	PersonaBusiness   PersonaKind = "business_partner"
	PersonaComedian   PersonaKind = "stranger"
	PersonaCelebrity  PersonaKind = "celebrity"
	PersonaTherapist  PersonaKind = "therapist"
	PersonaDrunkUncle PersonaKind = "drunk_uncle"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type RelationshipStatus string

const (
	StatusSingle    RelationshipStatus = "single"
	StatusCommitted RelationshipStatus = "committed"
	StatusMarried   RelationshipStatus = "married"
	StatusCouple    RelationshipStatus = "couple"
)

type LoverConfig struct {
	Gender             Gender             `json:"gender"`
	RelationshipStatus RelationshipStatus `json:"relationshipStatus"`
}

// Persona is a tagged variant: Lover is set iff Kind is PersonaLover.
type Persona struct {
	Kind  PersonaKind  `json:"kind"`
	Lover *LoverConfig `json:"loverConfig,omitempty"`
}

// Option is a selectable value with its display label and emoji.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

var Personas = []Option{
	{ID: string(PersonaFriend), Label: "Friend", Emoji: "🤗"},
	{ID: string(PersonaLover), Label: "Lover", Emoji: "💕"},
	{ID: string(PersonaBusiness), Label: "Business", Emoji: "💼"},
	{ID: string(PersonaComedian), Label: "Comedian", Emoji: "😂"},
	{ID: string(PersonaCelebrity), Label: "Celebrity", Emoji: "⭐"},
	{ID: string(PersonaTherapist), Label: "Therapist", Emoji: "🧠"},
	{ID: string(PersonaDrunkUncle), Label: "Drunk Uncle", Emoji: "🍺"},
}

var Genders = []Option{
	{ID: string(GenderMale), Label: "Male", Emoji: "👨"},
	{ID: string(GenderFemale), Label: "Female", Emoji: "👩"},
	{ID: string(GenderOther), Label: "Other", Emoji: "🌈"},
}

var RelationshipStatuses = []Option{
	{ID: string(StatusSingle), Label: "Single", Emoji: "💫"},
	{ID: string(StatusCommitted), Label: "Committed", Emoji: "💑"},
	{ID: string(StatusMarried), Label: "Married", Emoji: "💍"},
	{ID: string(StatusCouple), Label: "Couple", Emoji: "❤️‍🔥"},
}

func find(options []Option, id string) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

func ParsePersona(s string) (PersonaKind, error) {
	if _, ok := find(Personas, s); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPersona, s)
	}
	return PersonaKind(s), nil
}

func ParseGender(s string) (Gender, error) {
	if _, ok := find(Genders, s); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
	}
	return Gender(s), nil
}

func ParseRelationshipStatus(s string) (RelationshipStatus, error) {
	if _, ok := find(RelationshipStatuses, s); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRelationshipStatus, s)
	}
	return RelationshipStatus(s), nil
}

// Info returns the label and emoji shown in the chat header.
func (k PersonaKind) Info() Option {
	if o, ok := find(Personas, string(k)); ok {
		return o
	}
	return Personas[0]
}
