package usecases

import (
	"errors"
	"strings"
)

var ErrEmptyAnswer = errors.New("model returned an empty answer")

// Labels the model sometimes puts in front of a generated prompt.
var promptLabels = []string{
	"journaling prompt:",
	"journal prompt:",
	"prompt:",
}

// Quote pairs that may wrap the whole answer.
var quotePairs = [][2]string{
	{`"`, `"`},
	{"“", "”"},
	{"'", "'"},
}

// ParsePrompt extracts the journaling prompt from a model answer: surrounding
// whitespace, one leading label and one pair of wrapping quotes are removed.
func ParsePrompt(response string) (string, error) {
	prompt := strings.TrimSpace(response)

	lower := strings.ToLower(prompt)
	for _, label := range promptLabels {
		if strings.HasPrefix(lower, label) {
			prompt = strings.TrimSpace(prompt[len(label):])
			break
		}
	}

	for _, q := range quotePairs {
		if len(prompt) >= len(q[0])+len(q[1]) && strings.HasPrefix(prompt, q[0]) && strings.HasSuffix(prompt, q[1]) {
			prompt = strings.TrimSpace(prompt[len(q[0]) : len(prompt)-len(q[1])])
			break
		}
	}

	if prompt == "" {
		return "", ErrEmptyAnswer
	}
	return prompt, nil
}
