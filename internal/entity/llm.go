package entity

import "encoding/json"

// Chat-completions wire types for the upstream text-generation service.

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   *ChatUsage   `json:"usage,omitempty"`
}

// Raw payload shapes decoded from the model's text. These are untrusted: every
// field is optional and the estimate pipeline applies defaulting afterwards.

// RawQuestion is one clarifying question as the model emits it, before option
// normalization.
type RawQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// RawTask is one breakdown row as the model emits it. TimeRange is nil when
// the model supplied neither a timeRange object nor a scalar time.
type RawTask struct {
	Job        string        `json:"job"`
	Confidence string        `json:"confidence"`
	TimeRange  *Range        `json:"timeRange"`
	Time       *float64      `json:"time"`
	Materials  []RawMaterial `json:"materials"`
}

// RawMaterial tolerates the shapes seen across model revisions: a bare string,
// an object with a priceRange, or an object with a single scalar price.
type RawMaterial struct {
	Name       string
	PriceRange *Range
}

func (m *RawMaterial) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		m.Name = name
		return nil
	}

	var obj struct {
		Name       string   `json:"name"`
		PriceRange *Range   `json:"priceRange"`
		Price      *float64 `json:"price"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	m.Name = obj.Name
	m.PriceRange = obj.PriceRange
	if m.PriceRange == nil && obj.Price != nil {
		m.PriceRange = &Range{Min: *obj.Price, Max: *obj.Price}
	}

	return nil
}
