package catalog

import "context"

// seedRecipes is the starter catalog inserted when a fresh database is
// created.
var seedRecipes = []*Recipe{
	{
		ID:          "spaghetti-aglio-e-olio",
		Name:        "Spaghetti Aglio e Olio",
		Description: "Classic Roman pasta with garlic and olive oil",
		CookTime:    "20 minutes",
		Servings:    4,
		Cuisine:     "Italian",
		Difficulty:  "easy",
		Ingredients: []string{
			"400g spaghetti",
			"6 cloves garlic",
			"1/2 cup olive oil",
			"1/2 tsp red pepper flakes",
			"1/2 cup parmesan cheese",
			"2 tbsp fresh parsley",
			"salt and pepper to taste",
		},
		Instructions: []string{
			"Cook the spaghetti in salted water until al dente.",
			"Gently fry sliced garlic in olive oil until golden.",
			"Add red pepper flakes and a ladle of pasta water.",
			"Toss the drained pasta in the oil until coated.",
			"Finish with parmesan, parsley, salt and pepper.",
		},
	},
	{
		ID:          "garlic-butter-chicken",
		Name:        "Garlic Butter Chicken",
		Description: "Pan-seared chicken thighs in a garlic butter sauce",
		CookTime:    "30 minutes",
		Servings:    4,
		Cuisine:     "American",
		Difficulty:  "easy",
		Ingredients: []string{
			"4 chicken thighs",
			"3 tbsp butter",
			"4 cloves garlic",
			"1 tsp dried thyme",
			"1/2 cup chicken broth",
			"salt and pepper to taste",
		},
		Instructions: []string{
			"Season the chicken with salt, pepper and thyme.",
			"Sear skin-side down until deeply browned, then flip.",
			"Add butter and garlic, basting the chicken as it melts.",
			"Pour in the broth and simmer until cooked through.",
		},
	},
	{
		ID:          "vegetable-stir-fry",
		Name:        "Vegetable Stir Fry",
		Description: "Quick weeknight stir fry with a soy-ginger sauce",
		CookTime:    "15 minutes",
		Servings:    2,
		Cuisine:     "Chinese",
		Difficulty:  "easy",
		Ingredients: []string{
			"2 cups broccoli florets",
			"1 sliced bell pepper",
			"1 sliced carrot",
			"2 cloves garlic",
			"1 tbsp fresh ginger",
			"3 tbsp soy sauce",
			"1 tbsp sesame oil",
			"2 sliced green onions",
		},
		Instructions: []string{
			"Heat sesame oil in a wok over high heat.",
			"Stir-fry garlic and ginger for thirty seconds.",
			"Add the vegetables and toss until crisp-tender.",
			"Add soy sauce, toss, and top with green onions.",
		},
	},
	{
		ID:          "classic-pancakes",
		Name:        "Classic Pancakes",
		Description: "Fluffy weekend pancakes from scratch",
		CookTime:    "25 minutes",
		Servings:    4,
		Cuisine:     "American",
		Difficulty:  "easy",
		Ingredients: []string{
			"2 cups flour",
			"2 tbsp sugar",
			"1 tbsp baking powder",
			"1/2 tsp salt",
			"2 eggs",
			"2 cups milk",
			"4 tbsp butter",
		},
		Instructions: []string{
			"Whisk the dry ingredients together.",
			"Beat in the eggs, milk and melted butter until just combined.",
			"Cook ladles of batter on a buttered griddle.",
			"Flip once bubbles form and cook until golden.",
		},
	},
	{
		ID:          "tomato-basil-soup",
		Name:        "Tomato Basil Soup",
		Description: "Silky roasted tomato soup with fresh basil",
		CookTime:    "45 minutes",
		Servings:    4,
		Cuisine:     "Italian",
		Difficulty:  "medium",
		Ingredients: []string{
			"2 lbs tomatoes",
			"1 diced onion",
			"4 cloves garlic",
			"2 cups vegetable broth",
			"1/2 cup heavy cream",
			"1/4 cup fresh basil",
			"2 tbsp olive oil",
		},
		Instructions: []string{
			"Roast the tomatoes and garlic in olive oil.",
			"Soften the onion in a pot, then add tomatoes and broth.",
			"Simmer for twenty minutes and blend until smooth.",
			"Stir in the cream and basil before serving.",
		},
	},
	{
		ID:          "chicken-fried-rice",
		Name:        "Chicken Fried Rice",
		Description: "Takeout-style fried rice with egg and scallions",
		CookTime:    "20 minutes",
		Servings:    3,
		Cuisine:     "Chinese",
		Difficulty:  "easy",
		Ingredients: []string{
			"3 cups cooked rice",
			"2 chicken breasts",
			"2 eggs",
			"1 cup frozen peas",
			"3 tbsp soy sauce",
			"2 cloves garlic",
			"2 sliced scallions",
			"1 tbsp vegetable oil",
		},
		Instructions: []string{
			"Scramble the eggs in a hot wok and set aside.",
			"Brown diced chicken with garlic in the oil.",
			"Add rice and peas, pressing into the hot surface.",
			"Return the eggs, add soy sauce and toss with scallions.",
		},
	},
}

func (s *Store) seed(ctx context.Context) error {
	return s.PutAll(ctx, seedRecipes)
}
