package server

import "encoding/json"

// JSONCodec marshals plain Go structs for the brewery service, which has no
// protobuf schema. It replaces connect's protojson codec under the "json" name.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}
