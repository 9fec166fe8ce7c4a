package genapi

import "strings"

// apiRequest is the gen-api.ru synchronous chat request.
type apiRequest struct {
	IsSync      bool         `json:"is_sync"`
	Messages    []apiMessage `json:"messages"`
	Model       string       `json:"model"`
	Stream      bool         `json:"stream"`
	Temperature float64      `json:"temperature"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse mirrors the part of the gen-api.ru payload we read.
type apiResponse struct {
	Output struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
}

// content returns the first choice's message text, or "" when absent.
func (r apiResponse) content() string {
	if len(r.Output.Choices) == 0 {
		return ""
	}
	return r.Output.Choices[0].Message.Content
}

// enrichmentPayload is the JSON the model is instructed to return for a
// single word.
type enrichmentPayload struct {
	Translation string   `json:"translation"`
	Examples    []string `json:"examples"`
}

// generatedPayload is one item of the JSON array the model is instructed
// to return for prompt-based generation.
type generatedPayload struct {
	Word        string   `json:"word"`
	Translation string   `json:"translation"`
	Examples    []string `json:"examples"`
}

// stripCodeFence removes a surrounding markdown code fence, which the
// model adds despite being told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
