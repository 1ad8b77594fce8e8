package conversion

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// ViewConverter turns authoritative game state into what the player is
// allowed to see. Npc and fixture details are only filled in once the
// matching knowledge flag is set.
//
//go:generate mockgen -destination=mock/mock_converter.go -package=conversionmock github.com/KirkDiggler/rpg-dungeon/internal/services/conversion ViewConverter
type ViewConverter interface {
	// ToGameView converts the current room and the player into a view.
	// Neither argument is modified.
	ToGameView(state *entities.GameState, player *entities.PlayerCharacter) *GameView

	// ToPlayerView converts the player; the player always knows everything
	// about themself
	ToPlayerView(player *entities.PlayerCharacter) *PlayerView
}
