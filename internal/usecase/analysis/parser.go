package analysis

import (
	"encoding/json"
	"strings"
)

// Parser extracts the evaluation JSON object from a model reply
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ExtractJSONObject locates the first '{' and the last '}' in the reply and
// returns that span, ignoring any surrounding prose the model emitted.
// Known weak point: a brace inside trailing prose widens the span. The model
// is asked for json_object output, so in practice the span is the whole
// reply; this remains a safety net, not a guarantee.
func ExtractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// ParseReply decodes the JSON object embedded in a model reply. On any
// failure the reply is returned as a reportable payload carrying the raw
// text, never as an error: a malformed reply may still be useful to the
// caller.
func (p *Parser) ParseReply(content string) map[string]interface{} {
	jsonStr, ok := ExtractJSONObject(content)
	if !ok {
		return map[string]interface{}{
			"error":        "Failed to parse AI response",
			"raw_response": content,
		}
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return map[string]interface{}{
			"error":        "Failed to parse AI response",
			"raw_response": content,
		}
	}
	return result
}
