// Package domain holds the request and result types for decompounding
package domain

// Outcome classifies a decomposition attempt
type Outcome string

const (
	// OutcomeSplit means the word was split into two or more constituents
	OutcomeSplit Outcome = "split"
	// OutcomeSingleWord means the word is valid on its own and has no split
	OutcomeSingleWord Outcome = "single_word"
	// OutcomeNone means no split was found and the word is not valid either
	OutcomeNone Outcome = "none"
	// OutcomeError marks a batch item that failed on its own
	OutcomeError Outcome = "error"
)

// Request asks for one word to be decompounded
type Request struct {
	Word    string   `json:"word" validate:"required"`
	Options []string `json:"options,omitempty" validate:"omitempty,max=3,dive,decompound_option"`
	// Strict turns single_word and none outcomes into errors
	Strict bool `json:"strict,omitempty"`
}

// Result is one decomposition
type Result struct {
	Word         string   `json:"word"`
	Outcome      Outcome  `json:"outcome"`
	Constituents []string `json:"constituents,omitempty"`
	Lookups      int64    `json:"lookups"`
	Error        string   `json:"error,omitempty"`
}

// BatchRequest decompounds many words with shared options
type BatchRequest struct {
	Words   []string `json:"words" validate:"required,min=1"`
	Options []string `json:"options,omitempty" validate:"omitempty,max=3,dive,decompound_option"`
}

// BatchResult keeps results in request order
type BatchResult struct {
	Results []Result `json:"results"`
}
