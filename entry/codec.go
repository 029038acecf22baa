package entry

import "encoding/json"

// Codec encodes/decodes an Entry to the backend's string value type.
//
// Implementations must be lossless: Decode(Encode(e)) must reproduce e,
// including the modification time down to the stored precision. Schema
// version validation is the store's job, not the codec's.
type Codec interface {
	Encode(Entry) (string, error)
	Decode(string) (Entry, error)
}

// JSON is the canonical v1 interchange codec: a JSON object with exactly the
// three schema fields and the modification time in RFC 3339. The zero value
// is ready to use.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(e Entry) (string, error) {
	b, err := json.Marshal(e)
	return string(b), err
}

func (JSON) Decode(raw string) (Entry, error) {
	var e Entry
	err := json.Unmarshal([]byte(raw), &e)
	return e, err
}
