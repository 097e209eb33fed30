package session

import (
	"foodfriend/diner-svc/internal/cart"
	"foodfriend/diner-svc/internal/chat"
	"foodfriend/diner-svc/internal/domain"
	"foodfriend/diner-svc/internal/engagement"
	"foodfriend/diner-svc/internal/nutrition"
	"foodfriend/diner-svc/internal/speech"
)

// View is everything the page needs to render the session.
type View struct {
	ID          string         `json:"id"`
	Step        domain.Step    `json:"step"`
	TableNumber int            `json:"tableNumber,omitempty"`
	Scanner     ScannerView    `json:"scanner"`
	Cart        CartView       `json:"cart"`
	Order       *domain.Order  `json:"order,omitempty"`
	Nutrition   nutrition.View `json:"nutrition"`
	Popup       PopupView      `json:"popup"`
	Chat        *ChatView      `json:"chat,omitempty"`
	Speech      []speech.Cue   `json:"speech"`
}

type ScannerView struct {
	Error       string `json:"error,omitempty"`
	ManualEntry bool   `json:"manualEntry"`
}

type CartView struct {
	Items          []domain.CartItem `json:"items"`
	Count          int               `json:"count"`
	Total          float64           `json:"total"`
	FormattedTotal string            `json:"formattedTotal"`
	Open           bool              `json:"open"`
}

type PopupView struct {
	Visible        bool             `json:"visible"`
	Step           domain.PopupStep `json:"step"`
	DismissalCount int              `json:"dismissalCount"`
	Suppressed     bool             `json:"suppressed"`
	Copy           engagement.Copy  `json:"copy"`
	Personas       []domain.Option  `json:"personas,omitempty"`
}

type ChatView struct {
	Persona domain.PersonaKind  `json:"persona"`
	Label   string              `json:"label"`
	Emoji   string              `json:"emoji"`
	Lover   *domain.LoverConfig `json:"loverConfig,omitempty"`
	Stage   chat.Stage          `json:"stage"`
	Options []domain.Option     `json:"options,omitempty"`
	History []domain.Message    `json:"history"`
	Typing  bool                `json:"typing"`
}

func (s *Session) viewLocked() View {
	v := View{
		ID:          s.id,
		Step:        s.step,
		TableNumber: s.table,
		Scanner:     ScannerView{Error: s.scanError, ManualEntry: s.manualEntry},
		Cart: CartView{
			Items:          s.cart.Items(),
			Count:          s.cart.Count(),
			Total:          s.cart.Total(),
			FormattedTotal: cart.FormatPrice(s.cart.Total()),
			Open:           s.cartOpen,
		},
		Nutrition: s.nutrition.View(),
		Speech:    s.speech.Pending(),
	}
	if s.order != nil {
		o := *s.order
		o.Items = append([]domain.CartItem(nil), s.order.Items...)
		v.Order = &o
	}

	state := s.engagement.State()
	v.Popup = PopupView{
		Visible:        state.PopupVisible,
		Step:           state.PopupStep,
		DismissalCount: state.DismissalCount,
		Suppressed:     s.engagement.Suppressed(),
		Copy:           s.engagement.Copy(),
	}
	if state.PopupVisible && state.PopupStep == domain.PopupPersonaSelection {
		v.Popup.Personas = domain.Personas
	}

	if s.chat != nil {
		persona := s.chat.Persona()
		info := persona.Kind.Info()
		cv := &ChatView{
			Persona: persona.Kind,
			Label:   info.Label,
			Emoji:   info.Emoji,
			Lover:   persona.Lover,
			Stage:   s.chat.Stage(),
			History: s.chat.History(),
			Typing:  s.chat.Typing(),
		}
		switch cv.Stage {
		case chat.StageLoverGender:
			cv.Options = domain.Genders
		case chat.StageLoverStatus:
			cv.Options = domain.RelationshipStatuses
		}
		v.Chat = cv
	}
	return v
}
