package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// CodecName is the content subtype the game service speaks
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec carries the game service messages as JSON over gRPC
type Codec struct{}

// Marshal encodes a message
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %T", v)
	}
	return data, nil
}

// Unmarshal decodes a message
func (Codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.InvalidArgumentf("malformed %T: %v", v, err)
	}
	return nil
}

// Name returns the content subtype
func (Codec) Name() string {
	return CodecName
}
