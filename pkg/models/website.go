package models

// Website is a portfolio entry shown on the public site and edited through the
// admin panel. The ID is an opaque unique string; Date uses the "YYYY-MM" form.
type Website struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"         validate:"required"`
	Client       string   `json:"client"`
	Description  string   `json:"description"`
	URL          string   `json:"url"          validate:"omitempty,url"`
	Screenshot   string   `json:"screenshot"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Date         string   `json:"date"`
	Featured     bool     `json:"featured"`
}
