// Package shiftv1 is the wire contract of the shift service. Messages are
// plain structs carried by a JSON codec; money travels as decimal strings.
package shiftv1

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype every call uses.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// CallOption selects the JSON codec on a client call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
