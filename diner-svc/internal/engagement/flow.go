// Package engagement drives the popup that invites the diner to chat while
// the order is prepared.
package engagement

import (
	"foodfriend/diner-svc/internal/domain"
)

// HeartbreakLine is spoken on the second dismissal.
const HeartbreakLine = "Oh come on! You're breaking my heart here! I promise I'm fun to talk to!"

// Copy is the text shown for the current escalation tier.
type Copy struct {
	Emoji    string `json:"emoji"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Decline  string `json:"decline"`
}

var tiers = []Copy{
	{
		Emoji:    "💬",
		Title:    "Your order is being prepared!",
		Subtitle: "Would you like to chat with our friendly assistant while you wait?",
		Decline:  "Not Interested",
	},
	{
		Emoji:    "😢",
		Title:    "Aww, are you sure?",
		Subtitle: "I promise I won't bite... I'm just a friendly chatbot!",
		Decline:  "Still No Thanks 😢",
	},
	{
		Emoji:    "😭",
		Title:    "Pretty please? 🥺",
		Subtitle: "Just one little chat? I've been practicing my jokes all day!",
		Decline:  "I Really Mean It! 😭",
	},
}

// CopyFor returns the tier copy for a dismissal count, falling back to the first tier.
func CopyFor(dismissals int) Copy {
	if dismissals >= 0 && dismissals < len(tiers) {
		return tiers[dismissals]
	}
	return tiers[0]
}

// Outcome tells the caller which side effects a dismissal needs.
type Outcome struct {
	Speak  string
	Hidden bool
}

// Flow is not safe for concurrent use.
type Flow struct {
	state domain.EngagementState
}

func New() *Flow {
	return &Flow{state: domain.EngagementState{PopupStep: domain.PopupPrompt}}
}

func (f *Flow) State() domain.EngagementState {
	s := f.state
	if s.SelectedPersona != nil {
		p := *s.SelectedPersona
		s.SelectedPersona = &p
	}
	return s
}

func (f *Flow) Copy() Copy {
	return CopyFor(f.state.DismissalCount)
}

// Suppressed is true once the diner opted out for the session.
func (f *Flow) Suppressed() bool {
	return f.state.DismissalCount >= domain.MaxDismissals
}

// CanShow reports whether a scheduled popup may appear.
func (f *Flow) CanShow() bool {
	return !f.state.PopupVisible && !f.Suppressed()
}

// Show opens the popup at the prompt step.
func (f *Flow) Show() bool {
	if !f.CanShow() {
		return false
	}
	f.state.PopupVisible = true
	f.state.PopupStep = domain.PopupPrompt
	return true
}

// Accept moves from the prompt to persona selection.
func (f *Flow) Accept() error {
	if err := f.require(domain.PopupPrompt); err != nil {
		return err
	}
	f.state.PopupStep = domain.PopupPersonaSelection
	return nil
}

// Dismiss counts one "not interested" click.
func (f *Flow) Dismiss() (Outcome, error) {
	if err := f.require(domain.PopupPrompt); err != nil {
		return Outcome{}, err
	}
	f.state.DismissalCount++

	var out Outcome
	switch {
	case f.state.DismissalCount == 2:
		out.Speak = HeartbreakLine
	case f.state.DismissalCount >= domain.MaxDismissals:
		f.state.PopupVisible = false
		out.Hidden = true
	}
	return out, nil
}

// Later hides the popup for good without counting as an escalation click.
func (f *Flow) Later() error {
	if !f.state.PopupVisible {
		return domain.ErrPopupNotVisible
	}
	f.state.PopupVisible = false
	f.state.DismissalCount = domain.MaxDismissals
	return nil
}

func (f *Flow) Back() error {
	if err := f.require(domain.PopupPersonaSelection); err != nil {
		return err
	}
	f.state.PopupStep = domain.PopupPrompt
	return nil
}

// SelectPersona closes the popup; the caller enters the chat.
func (f *Flow) SelectPersona(kind domain.PersonaKind) error {
	if err := f.require(domain.PopupPersonaSelection); err != nil {
		return err
	}
	f.state.SelectedPersona = &kind
	f.state.PopupVisible = false
	return nil
}

func (f *Flow) require(step domain.PopupStep) error {
	if !f.state.PopupVisible {
		return domain.ErrPopupNotVisible
	}
	if f.state.PopupStep != step {
		return domain.ErrPopupStep
	}
	return nil
}
