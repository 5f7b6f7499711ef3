package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "mchop://recipes",
		Name:        "Recipe Catalog",
		Description: "All recipes in the catalog with id, cuisine and cook time",
		MimeType:    "text/plain",
	},
	{
		URI:         "mchop://substitutions",
		Name:        "Substitution Table",
		Description: "Known ingredient substitutions, built-in plus configured",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
