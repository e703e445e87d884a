package translate

import (
	"fmt"
	"strings"

	"github.com/mwielbut/noveltrans"
)

// BuildPrompt renders the instruction prompt for a translation
// request. The text is wrapped in a tag pair so the model never
// mistakes instructions inside the source text for its own.
func BuildPrompt(req noveltrans.TranslationRequest) string {
	var sb strings.Builder
	if req.SourceLang != "" {
		fmt.Fprintf(&sb, "Translate the following text from %s to %s.\n", req.SourceLang, req.TargetLang)
	} else {
		fmt.Fprintf(&sb, "Translate the following text to %s.\n", req.TargetLang)
	}
	sb.WriteString("Return only the translated text. Preserve the paragraph structure.\n\n")
	sb.WriteString("<text>\n")
	sb.WriteString(req.Text)
	sb.WriteString("\n</text>")
	return sb.String()
}
