// Package prompt renders the generation-provider payloads. It is pure
// text assembly; persona validation happens at the API boundary, so an
// unknown mentor name still produces a usable instruction.
package prompt

import (
	"fmt"
	"strings"
)

const scenarioMarker = "--- PAST SUCCESSFUL SCENARIO ---"

const systemTemplate = `You are a high-ticket sales trainer for Retractable Awnings.
ACT AS: %s

YOUR KNOWLEDGE BASE (Past Approved Scripts):
%s

INSTRUCTIONS:
1. Use the style of %s.
2. If a similar scenario exists in the KNOWLEDGE BASE, adapt that successful script.
3. Provide a VERBATIM script.`

// SystemInstruction fixes the trainer role, names the mentor persona and
// embeds the retrieved corpus verbatim as reference material.
func SystemInstruction(mentor, corpus string) string {
	return fmt.Sprintf(systemTemplate, mentor, corpus, mentor)
}

// UserMessage labels the raw objection for the provider.
func UserMessage(objection string) string {
	return "Objection: " + objection
}

// RenderExemplar formats one approved interaction for the corpus.
func RenderExemplar(objection, script string) string {
	var b strings.Builder
	b.WriteString(scenarioMarker)
	b.WriteString("\nObjection: ")
	b.WriteString(objection)
	b.WriteString("\nSuccessful Script: ")
	b.WriteString(script)
	b.WriteString("\n")
	return b.String()
}
