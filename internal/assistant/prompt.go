package assistant

import (
	"fmt"
	"strings"
)

func suggestionPrompt(names []string, text string) string {
	return fmt.Sprintf(`Pick the legal agreement template that best fits the user input below.
Available templates: %s

User input: %s

Answer with a JSON object with the fields:
best_match: the exact name of one available template
confidence: a number between 0 and 1
explanation: one or two sentences on why the template fits
key_terms: a list of the key terms found in the input`, strings.Join(quote(names), ", "), text)
}

func analysisPrompt(text string) string {
	return fmt.Sprintf(`Review the agreement text below.

Agreement text: %s

Answer with a JSON object with the fields:
summary: a short plain-language summary
key_terms: a list of the key terms
missing_fields: a list of details the agreement should state but does not
risks: a list of clauses that are ambiguous or one-sided`, text)
}

func quote(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
