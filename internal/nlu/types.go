package nlu

// #region classification

// Classification is the intent model's output for one utterance.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// #endregion classification

// #region span

// Span is one labeled span from the token-classification model, in
// emission order. Field names follow the model service's wire format.
type Span struct {
	Kind string `json:"entity_group"`
	Text string `json:"word"`
}

// #endregion span
