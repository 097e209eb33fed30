package portal

// Filter values accepted by the board.
const (
	FilterAll       = "all"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// Filters in tab order.
var Filters = []string{FilterAll, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered}

// Transition is the one action offered on a card.
type Transition struct {
	Status string `json:"status"`
	Label  string `json:"label"`
}

var transitions = map[string]Transition{
	StatusConfirmed: {Status: StatusPreparing, Label: "👨‍🍳 Start Preparing"},
	StatusPreparing: {Status: StatusReady, Label: "🔔 Mark Ready"},
	StatusReady:     {Status: StatusDelivered, Label: "✅ Mark Delivered"},
}

// Next returns the status a card advances to, if any.
func Next(status string) (Transition, bool) {
	t, ok := transitions[status]
	return t, ok
}

func Color(status string) string {
	switch status {
	case StatusConfirmed:
		return "#fbbf24"
	case StatusPreparing:
		return "#3b82f6"
	case StatusReady:
		return "#22c55e"
	case StatusDelivered:
		return "#8b5cf6"
	default:
		return "#71717a"
	}
}

func Emoji(status string) string {
	switch status {
	case StatusConfirmed:
		return "📋"
	case StatusPreparing:
		return "👨‍🍳"
	case StatusReady:
		return "🔔"
	case StatusDelivered:
		return "✅"
	default:
		return "📦"
	}
}

// TabLabel is the filter tab caption without its count.
func TabLabel(filter string) string {
	switch filter {
	case StatusConfirmed:
		return "📋 New"
	case StatusPreparing:
		return "👨‍🍳 Preparing"
	case StatusReady:
		return "🔔 Ready"
	case StatusDelivered:
		return "✅ Done"
	default:
		return "All Orders"
	}
}

func validFilter(f string) bool {
	for _, v := range Filters {
		if v == f {
			return true
		}
	}
	return false
}
