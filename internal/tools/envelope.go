// Package tools holds the operation registry and the uniform response
// envelope shared by every operation the service exposes.
package tools

// ErrorPrefix starts the summary text of every error envelope. Callers
// branch on IsError, never on the text; the prefix is for humans.
const ErrorPrefix = "Error: "

// Envelope is the uniform result of any operation: structured content for
// the presentation layer, a short summary line for the model or log reader,
// and an error flag that is the only error-signaling channel. Meta is
// opaque pass-through for the renderer and is never interpreted here.
type Envelope struct {
	StructuredContent interface{}            `json:"structuredContent,omitempty"`
	SummaryText       string                 `json:"summaryText"`
	IsError           bool                   `json:"isError"`
	Meta              map[string]interface{} `json:"_meta,omitempty"`
}

// Success wraps a domain object and its derived summary line.
func Success(content interface{}, summary string) *Envelope {
	return &Envelope{
		StructuredContent: content,
		SummaryText:       summary,
		IsError:           false,
	}
}

// Text wraps a summary-only success, used by operations whose whole
// contract is a human-readable line (and for "nothing to show" outcomes,
// which are valid states, not failures).
func Text(summary string) *Envelope {
	return &Envelope{
		SummaryText: summary,
		IsError:     false,
	}
}

// Failure wraps an error. The envelope carries no structured content.
func Failure(err error) *Envelope {
	return &Envelope{
		SummaryText: ErrorPrefix + err.Error(),
		IsError:     true,
	}
}

// WithMeta attaches opaque renderer metadata and returns the envelope.
func (e *Envelope) WithMeta(meta map[string]interface{}) *Envelope {
	e.Meta = meta
	return e
}
