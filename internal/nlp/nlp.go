package nlp

import "context"

// Entity labels we act on downstream. The label set mirrors what NER models
// emit for organizations and products.
const (
	LabelOrg     = "ORG"
	LabelProduct = "PRODUCT"
)

// Entity is a span of text tagged with a semantic label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Document is the result of running an Engine over a piece of text.
type Document struct {
	Text     string
	Entities []Entity
}

// Engine is an optional NLP capability. Implementations must be safe for
// concurrent use after construction.
type Engine interface {
	Process(ctx context.Context, text string) (*Document, error)
	Name() string
}

// Blank is the always-available no-op engine: it recognizes nothing.
type Blank struct{}

func (Blank) Process(ctx context.Context, text string) (*Document, error) {
	return &Document{Text: text, Entities: []Entity{}}, nil
}

func (Blank) Name() string { return "blank" }
