package handler

import "fmt"

// Per-category study links shown by the resources button.
var categoryResources = map[string]string{
	"SQL":        "PostgreSQL docs: https://www.postgresql.org/docs/current/",
	"Algorithms": "CLRS Book Notes (MIT): https://mitpress.mit.edu/9780262046305/",
	"HTML":       "MDN Web Docs: https://developer.mozilla.org/en-US/docs/Web/HTML",
	"CSS":        "MDN Web Docs: https://developer.mozilla.org/en-US/docs/Web/CSS",
	"Python":     "Python docs: https://docs.python.org/3/",
}

func resourcesText(category string) string {
	link, ok := categoryResources[category]
	if !ok {
		link = "General search"
	}
	return fmt.Sprintf("Helpful resources → %s", link)
}
