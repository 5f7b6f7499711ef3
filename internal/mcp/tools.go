package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "find_recipes",
		Description: "Find recipes you can cook with the ingredients you have. Returns ranked matches with a match score, which ingredients you have and lack, and substitution suggestions for missing ingredients.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ingredients": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Ingredients you have on hand, free text (e.g. 'garlic', '2 cups flour')",
				},
				"min_match_score": map[string]interface{}{
					"type":        "number",
					"description": "Minimum match score between 0 and 1 (default: 0.3)",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of recipes to return (default: 10)",
				},
			},
			"required": []string{"ingredients"},
		},
	},
	{
		Name:        "get_recipe_details",
		Description: "Get the full details of a recipe by ID, including ingredients and instructions.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"recipe_id": map[string]interface{}{
					"type":        "string",
					"description": "Recipe ID as returned by find_recipes",
				},
			},
			"required": []string{"recipe_id"},
		},
	},
	{
		Name:        "suggest_substitutions",
		Description: "Suggest substitutes for ingredients you are missing. Ingredients with no known substitutes are omitted from the result.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ingredients": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Ingredients to find substitutes for",
				},
			},
			"required": []string{"ingredients"},
		},
	},
}
