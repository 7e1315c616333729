package model

// TemplateSummary is the listing form of a catalog template.
type TemplateSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Template is a boilerplate agreement text.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}
