package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

func TestEnvelopeKeepsKind(t *testing.T) {
	in := actions.MoveItem{ItemID: "6f1b1e0c-3c52-4d8e-9a7c-1a2b3c4d5e6f", Location: "hand"}

	data, err := actions.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"move_item","payload":{"item_id":"6f1b1e0c-3c52-4d8e-9a7c-1a2b3c4d5e6f","location":"hand"}}`, string(data))

	out, err := actions.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := actions.Decode("dance", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDecodeMalformedPayload(t *testing.T) {
	_, err := actions.Decode(actions.KindAttack, []byte(`{"npc_id":7}`))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDecodeEmptyPayload(t *testing.T) {
	a, err := actions.Decode(actions.KindCastSpellOnPlayer, nil)
	require.NoError(t, err)
	assert.Equal(t, actions.CastSpellOnPlayer{}, a)
}
