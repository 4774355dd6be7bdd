package generator

import (
	"fmt"
	"strings"
)

// systemPrompt фиксирует роль модели и формат ответа.
// Требуем ровно один JSON-объект без обрамляющего текста, но парсер всё
// равно готов к markdown-ограждениям и преамбулам (см. extract.go).
const systemPrompt = `You are a technical interview question author. ` +
	`You produce original LeetCode-style practice problems. ` +
	`Always answer with a single JSON object and nothing else.`

// buildPrompt собирает пользовательскую инструкцию с перечислением исключений
func buildPrompt(excludedTitles, excludedCategories []string) string {
	var sb strings.Builder

	sb.WriteString("Generate one new interview practice question as a JSON object with exactly these string fields: ")
	sb.WriteString(`"question" (short unique title), "description", "constraints", "hint", "solution" (prose explanation), "code_solution" (reference implementation), "category" (single lowercase label like "array" or "dynamic programming"), "trivia" (one interesting related fact).`)
	sb.WriteString("\n\n")

	if len(excludedTitles) > 0 {
		sb.WriteString("Do NOT generate any of these existing questions:\n")
		for _, title := range excludedTitles {
			fmt.Fprintf(&sb, "- %s\n", title)
		}
		sb.WriteString("\n")
	}

	if len(excludedCategories) > 0 {
		sb.WriteString("The user already knows these categories, do NOT use them:\n")
		for _, category := range excludedCategories {
			fmt.Fprintf(&sb, "- %s\n", category)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Respond with the JSON object only.")
	return sb.String()
}
