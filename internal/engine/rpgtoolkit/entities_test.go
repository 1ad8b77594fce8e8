package rpgtoolkit

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

func TestEntitiesImplementCoreEntity(t *testing.T) {
	player := testutils.CreateTestPlayer()
	npcID := uuid.New()

	tests := []struct {
		name     string
		entity   core.Entity
		wantID   string
		wantType string
	}{
		{name: "player", entity: wrapPlayer(&player), wantID: testutils.TestPlayerID.String(), wantType: "player"},
		{name: "npc", entity: &NpcEntity{ID: npcID}, wantID: npcID.String(), wantType: "npc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantID, tc.entity.GetID())
			assert.Equal(t, tc.wantType, tc.entity.GetType())
		})
	}
}
