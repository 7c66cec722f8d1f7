package extract

// #region kind

// Kind identifies the type of an extracted entity span.
type Kind string

const (
	KindPerson Kind = "PER"
	KindAmount Kind = "AMOUNT"
	KindOrg    Kind = "ORG"
	KindMisc   Kind = "MISC"
)

// NormalizeKind maps a raw tagger label to a canonical Kind.
func NormalizeKind(label string) Kind {
	switch label {
	case "PER", "PERSON", "B-PER", "I-PER":
		return KindPerson
	case "AMOUNT", "MONEY", "AMT":
		return KindAmount
	case "ORG", "ORGANIZATION":
		return KindOrg
	default:
		return KindMisc
	}
}

// #endregion kind

// #region span

// Span is a raw labeled span as emitted by the token-classification model.
type Span struct {
	Label string
	Text  string
}

// #endregion span

// #region entities

// Entity is a normalized, typed entity span.
type Entity struct {
	Kind Kind
	Text string
}

// Entities preserves the tagger's emission order so that repeated
// extraction over the same input is deterministic.
type Entities []Entity

// Get returns the text of the first entity of the given kind.
func (e Entities) Get(kind Kind) (string, bool) {
	for _, ent := range e {
		if ent.Kind == kind {
			return ent.Text, true
		}
	}
	return "", false
}

// Has reports whether any entity of the given kind is present.
func (e Entities) Has(kind Kind) bool {
	_, ok := e.Get(kind)
	return ok
}

// Map converts to a kind->text mapping for response serialization.
func (e Entities) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, ent := range e {
		m[string(ent.Kind)] = ent.Text
	}
	return m
}

// #endregion entities
