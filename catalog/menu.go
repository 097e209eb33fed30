// Package catalog holds the static reference data shared by the services:
// the dishes on the menu and the nutrition facts used when the remote
// nutrition service is unavailable.
package catalog

// MenuItem is immutable reference data; it is never created or destroyed at runtime.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Emoji       string  `json:"emoji"`
	Description string  `json:"description,omitempty"`
}

var menu = []MenuItem{
	{ID: 1, Name: "Margherita Pizza", Price: 12.99, Emoji: "🍕", Description: "Classic tomato & mozzarella"},
	{ID: 2, Name: "Chicken Burger", Price: 9.99, Emoji: "🍔", Description: "Juicy grilled chicken patty"},
	{ID: 3, Name: "Caesar Salad", Price: 8.49, Emoji: "🥗", Description: "Fresh romaine & parmesan"},
	{ID: 4, Name: "Pasta Carbonara", Price: 14.99, Emoji: "🍝", Description: "Creamy bacon pasta"},
	{ID: 5, Name: "Fish & Chips", Price: 13.49, Emoji: "🐟", Description: "Crispy battered fish"},
	{ID: 6, Name: "Veggie Wrap", Price: 7.99, Emoji: "🌯", Description: "Healthy vegetable wrap"},
	{ID: 7, Name: "Sushi Platter", Price: 18.99, Emoji: "🍣", Description: "Assorted fresh sushi"},
	{ID: 8, Name: "Tacos", Price: 10.99, Emoji: "🌮", Description: "Mexican style tacos"},
	{ID: 9, Name: "Grilled Salmon", Price: 16.99, Emoji: "🐠", Description: "Atlantic salmon fillet"},
	{ID: 10, Name: "Butter Chicken", Price: 13.99, Emoji: "🍛", Description: "Creamy Indian curry"},
	{ID: 11, Name: "Mushroom Risotto", Price: 12.49, Emoji: "🍚", Description: "Creamy Italian rice"},
	{ID: 12, Name: "BBQ Ribs", Price: 19.99, Emoji: "🍖", Description: "Slow-cooked pork ribs"},
	{ID: 13, Name: "Greek Salad", Price: 7.99, Emoji: "🥒", Description: "Feta & olive salad"},
	{ID: 14, Name: "Chicken Wings", Price: 11.99, Emoji: "🍗", Description: "Crispy buffalo wings"},
	{ID: 15, Name: "Paneer Tikka", Price: 10.99, Emoji: "🧀", Description: "Grilled Indian cottage cheese"},
	{ID: 16, Name: "Fruit Smoothie", Price: 5.99, Emoji: "🥤", Description: "Fresh blended fruits"},
}

var byID = func() map[int]MenuItem {
	m := make(map[int]MenuItem, len(menu))
	for _, item := range menu {
		m[item.ID] = item
	}
	return m
}()

// Menu returns the dishes in display order. The slice is a copy.
func Menu() []MenuItem {
	items := make([]MenuItem, len(menu))
	copy(items, menu)
	return items
}

// Lookup finds a dish by id.
func Lookup(id int) (MenuItem, bool) {
	item, ok := byID[id]
	return item, ok
}
