package catalog

import "math"

// Metrics is one set of the six tracked nutrition values.
type Metrics struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Scale multiplies every metric by n.
func (m Metrics) Scale(n int) Metrics {
	f := float64(n)
	return Metrics{
		Calories: m.Calories * f,
		Protein:  m.Protein * f,
		Carbs:    m.Carbs * f,
		Fat:      m.Fat * f,
		Fiber:    m.Fiber * f,
		Sugar:    m.Sugar * f,
	}
}

func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
		Fiber:    m.Fiber + o.Fiber,
		Sugar:    m.Sugar + o.Sugar,
	}
}

// DishFacts are the per-serving values for one dish.
type DishFacts struct {
	Metrics
	Vitamins []string
}

// DailyValues is the reference intake used for percentage-of-daily-value.
var DailyValues = Metrics{Calories: 2000, Protein: 50, Carbs: 300, Fat: 65, Fiber: 25, Sugar: 50}

// DefaultFacts applies to any dish missing from the table.
var DefaultFacts = DishFacts{
	Metrics:  Metrics{Calories: 500, Protein: 20, Carbs: 50, Fat: 20, Fiber: 3, Sugar: 10},
	Vitamins: []string{"Various"},
}

var dishFacts = map[string]DishFacts{
	"Margherita Pizza": {Metrics{850, 35, 95, 38, 4, 8}, []string{"Vitamin A", "Calcium"}},
	"Chicken Burger":   {Metrics{650, 38, 45, 32, 3, 6}, []string{"Vitamin B12", "Iron"}},
	"Caesar Salad":     {Metrics{350, 12, 18, 28, 4, 3}, []string{"Vitamin K", "Folate"}},
	"Pasta Carbonara":  {Metrics{750, 28, 85, 35, 3, 4}, []string{"Vitamin B12", "Calcium"}},
	"Fish & Chips":     {Metrics{950, 42, 88, 48, 5, 2}, []string{"Omega-3", "Vitamin D"}},
	"Veggie Wrap":      {Metrics{420, 14, 52, 18, 8, 6}, []string{"Vitamin A", "Fiber"}},
	"Sushi Platter":    {Metrics{580, 28, 75, 12, 3, 8}, []string{"Omega-3", "Iodine"}},
	"Tacos":            {Metrics{520, 24, 48, 26, 6, 4}, []string{"Vitamin C", "Iron"}},
	"Grilled Salmon":   {Metrics{480, 52, 8, 28, 2, 2}, []string{"Omega-3", "Vitamin D"}},
	"Butter Chicken":   {Metrics{650, 38, 35, 42, 4, 8}, []string{"Vitamin A", "Iron"}},
	"Mushroom Risotto": {Metrics{580, 14, 78, 24, 3, 3}, []string{"Vitamin D", "Selenium"}},
	"BBQ Ribs":         {Metrics{1100, 58, 42, 75, 2, 28}, []string{"Vitamin B12", "Zinc"}},
	"Greek Salad":      {Metrics{280, 8, 14, 22, 4, 6}, []string{"Vitamin K", "Calcium"}},
	"Chicken Wings":    {Metrics{680, 48, 8, 52, 1, 2}, []string{"Vitamin B6", "Protein"}},
	"Paneer Tikka":     {Metrics{450, 24, 18, 32, 3, 5}, []string{"Calcium", "Vitamin B12"}},
	"Fruit Smoothie":   {Metrics{220, 4, 48, 2, 4, 38}, []string{"Vitamin C", "Potassium"}},
}

// Facts returns the nutrition facts for a dish name, falling back to DefaultFacts.
// Names match exactly.
func Facts(name string) DishFacts {
	if f, ok := dishFacts[name]; ok {
		return f
	}
	return DefaultFacts
}

const (
	HighProteinTip = "Great protein choice! 💪 Perfect for muscle recovery."
	BalancedTip    = "Enjoy your balanced meal! 😊"
)

// Portion is a dish name and how many servings were ordered.
type Portion struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ItemNutrition is the scaled contribution of one order line.
type ItemNutrition struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Metrics
	Vitamins []string `json:"vitamins,omitempty"`
}

// Percentages are percent of DailyValues. Values above 100 are kept.
// Local reports hold whole numbers; remote ones may carry fractions.
type Percentages struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Report is the aggregate nutrition for an order. Totals is nil when a
// remote producer returned no usable totals.
type Report struct {
	Items            []ItemNutrition `json:"items"`
	Totals           *Metrics        `json:"totals,omitempty"`
	DailyPercentages Percentages     `json:"dailyPercentages"`
	HealthTip        string          `json:"healthTip"`
}

// PercentOfDaily computes round(100 * total / reference) per metric.
func PercentOfDaily(totals Metrics) Percentages {
	pct := func(total, reference float64) float64 {
		return math.Round(total / reference * 100)
	}
	return Percentages{
		Calories: pct(totals.Calories, DailyValues.Calories),
		Protein:  pct(totals.Protein, DailyValues.Protein),
		Carbs:    pct(totals.Carbs, DailyValues.Carbs),
		Fat:      pct(totals.Fat, DailyValues.Fat),
		Fiber:    pct(totals.Fiber, DailyValues.Fiber),
		Sugar:    pct(totals.Sugar, DailyValues.Sugar),
	}
}

// HealthTip picks the tip from the protein share of the daily value.
func HealthTip(p Percentages) string {
	if p.Protein > 50 {
		return HighProteinTip
	}
	return BalancedTip
}

// Calculate builds a report from the static facts table.
func Calculate(portions []Portion) Report {
	var totals Metrics
	items := make([]ItemNutrition, 0, len(portions))
	for _, p := range portions {
		facts := Facts(p.Name)
		scaled := facts.Scale(p.Quantity)
		items = append(items, ItemNutrition{
			Name:     p.Name,
			Quantity: p.Quantity,
			Metrics:  scaled,
			Vitamins: facts.Vitamins,
		})
		totals = totals.Add(scaled)
	}

	pct := PercentOfDaily(totals)
	return Report{
		Items:            items,
		Totals:           &totals,
		DailyPercentages: pct,
		HealthTip:        HealthTip(pct),
	}
}
