package entry

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec that serializes entries using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Compact and fast, but binary; the same sharing caveat as CBOR applies.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(e Entry) (string, error) {
	b, err := msgpack.Marshal(e)
	return string(b), err
}

func (Msgpack) Decode(raw string) (Entry, error) {
	var e Entry
	err := msgpack.Unmarshal([]byte(raw), &e)
	return e, err
}
