package catalog

// Recipe is an immutable catalog entry. Ingredients and Instructions
// are ordered; ingredient order is display order and drives how
// missing ingredients are presented.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	CookTime     string   `json:"cook_time,omitempty"`
	Servings     int      `json:"servings,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions,omitempty"`
}
