package chat

import (
	"strings"
	"testing"
)

func TestBuildSystemPromptEmbedsInstructions(t *testing.T) {
	prompt := BuildSystemPrompt("You are a sommelier. Recommend wine pairings.")

	if !strings.Contains(prompt, "You are a sommelier. Recommend wine pairings.") {
		t.Error("agent instructions missing from system prompt")
	}
	if !strings.Contains(prompt, "CRITICAL RULES") {
		t.Error("scope rules missing from system prompt")
	}
	if !strings.Contains(prompt, "Markdown") {
		t.Error("formatting rules missing from system prompt")
	}
}
