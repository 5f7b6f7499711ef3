package engine

// Substitution maps a canonical ingredient to its suggested
// replacements, in preference order.
type Substitution struct {
	Ingredient  string
	Substitutes []string
}

// Alias maps an alternate ingredient name to the canonical name used
// as a substitution table key.
type Alias struct {
	Name string
	Base string
}

// DefaultSubstitutions is the built-in curated substitution table.
// Order matters: fuzzy lookups take the first key above threshold.
var DefaultSubstitutions = []Substitution{
	{"butter", []string{"margarine", "coconut oil", "olive oil"}},
	{"milk", []string{"almond milk", "soy milk", "oat milk"}},
	{"egg", []string{"applesauce", "mashed banana", "flax egg"}},
	{"flour", []string{"almond flour", "coconut flour", "oat flour"}},
	{"sugar", []string{"honey", "maple syrup", "agave nectar"}},
	{"parmesan cheese", []string{"nutritional yeast", "pecorino romano", "asiago"}},
	{"heavy cream", []string{"coconut cream", "evaporated milk", "greek yogurt"}},
	{"sour cream", []string{"greek yogurt", "creme fraiche"}},
	{"buttermilk", []string{"milk with lemon juice", "milk with vinegar"}},
	{"green onions", []string{"chives", "shallots", "leeks"}},
	{"garlic", []string{"garlic powder", "shallots"}},
	{"onion", []string{"shallots", "leeks", "onion powder"}},
	{"lemon juice", []string{"lime juice", "white wine vinegar"}},
	{"soy sauce", []string{"tamari", "coconut aminos", "worcestershire sauce"}},
	{"olive oil", []string{"vegetable oil", "canola oil", "avocado oil"}},
	{"basil", []string{"oregano", "thyme"}},
	{"cilantro", []string{"parsley", "basil"}},
	{"vegetable broth", []string{"chicken broth", "water with bouillon"}},
}

// DefaultAliases is the built-in alias table. Aliases resolve alternate
// names to substitution table keys; a base without a table entry is
// still a valid target and simply yields no suggestions.
var DefaultAliases = []Alias{
	{"scallions", "green onions"},
	{"spring onions", "green onions"},
	{"parmesan", "parmesan cheese"},
	{"parmigiano reggiano", "parmesan cheese"},
	{"eggs", "egg"},
	{"coriander", "cilantro"},
	{"confectioners sugar", "sugar"},
	{"powdered sugar", "sugar"},
	{"stock", "vegetable broth"},
}
