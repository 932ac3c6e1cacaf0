package document

import (
	"encoding/json"
	"fmt"

	"github.com/dchest/siphash"
)

// Fingerprint keys; fixed so fingerprints stay comparable across runs.
const (
	sipKeyLow  = 0x6170706472616674
	sipKeyHigh = 0x73637265656e7321
)

// Encode renders the document as indented JSON, the form the generation
// backend and the export files use.
func Encode(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses document bytes. JSON-level damage (not even a document)
// comes back as a SchemaError too, so callers have one failure shape.
func Decode(blob []byte) (*Document, error) {
	doc := &Document{}
	err := json.Unmarshal(blob, doc)
	if err != nil {
		return nil, &SchemaError{Problems: []Problem{problemOf(err)}}
	}
	return doc, nil
}

func problemOf(err error) Problem {
	if typed, ok := err.(*json.UnmarshalTypeError); ok {
		return Problem{
			Field:  typed.Field,
			Detail: fmt.Sprintf("wrong type: wanted %s, got %s", typed.Type, typed.Value),
		}
	}
	return Problem{Field: "document", Detail: err.Error()}
}

// Fingerprint is a stable 64-bit digest of the canonical document bytes,
// used for change detection and journal records.
func Fingerprint(doc *Document) string {
	blob, err := json.Marshal(doc)
	if err != nil {
		return "0000000000000000"
	}
	return fmt.Sprintf("%016x", siphash.Hash(sipKeyLow, sipKeyHigh, blob))
}
