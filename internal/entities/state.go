package entities

import (
	"github.com/google/uuid"
)

// ExitEnds are the two rooms joined by an exit. RoomB stays nil until
// the far side has been generated.
type ExitEnds struct {
	RoomA uuid.UUID `json:"room_a"`
	RoomB uuid.UUID `json:"room_b"`
}

// FarSide returns the room on the other side of the exit from a room
func (e ExitEnds) FarSide(from uuid.UUID) (uuid.UUID, bool) {
	switch from {
	case e.RoomA:
		return e.RoomB, e.RoomB != uuid.Nil
	case e.RoomB:
		return e.RoomA, e.RoomA != uuid.Nil
	}
	return uuid.Nil, false
}

// World is every room discovered so far and the exits joining them
type World struct {
	Rooms []Room                 `json:"rooms"`
	Exits map[uuid.UUID]ExitEnds `json:"exits"`
}

// AddRoom appends a room and links each of its exits into the graph
func (w *World) AddRoom(room Room) {
	if w.Exits == nil {
		w.Exits = make(map[uuid.UUID]ExitEnds)
	}
	w.Rooms = append(w.Rooms, room)
	for _, exit := range room.Exits {
		ends, ok := w.Exits[exit.ID]
		switch {
		case !ok:
			w.Exits[exit.ID] = ExitEnds{RoomA: room.ID}
		case ends.RoomA != room.ID && ends.RoomB == uuid.Nil:
			ends.RoomB = room.ID
			w.Exits[exit.ID] = ends
		}
	}
}

// Room looks up a room by id
func (w *World) Room(id uuid.UUID) (*Room, bool) {
	for i := range w.Rooms {
		if w.Rooms[i].ID == id {
			return &w.Rooms[i], true
		}
	}
	return nil, false
}

// GameState is the authoritative state of one game
type GameState struct {
	World            World                          `json:"world"`
	CurrentRoomID    uuid.UUID                      `json:"current_room_id"`
	VisitedRooms     map[uuid.UUID]bool             `json:"visited_rooms"`
	DangerLevel      int                            `json:"danger_level"`
	NpcKnowledge     map[uuid.UUID]NpcKnowledge     `json:"npc_knowledge"`
	FixtureKnowledge map[uuid.UUID]FixtureKnowledge `json:"fixture_knowledge"`
}

// NewGameState starts a game in the given room
func NewGameState(start Room) GameState {
	state := GameState{
		CurrentRoomID:    start.ID,
		VisitedRooms:     map[uuid.UUID]bool{start.ID: true},
		NpcKnowledge:     make(map[uuid.UUID]NpcKnowledge),
		FixtureKnowledge: make(map[uuid.UUID]FixtureKnowledge),
	}
	state.World.AddRoom(start)
	return state
}

// CurrentRoom is the room the player stands in. A state whose current room
// is missing from the world is corrupt.
func (s *GameState) CurrentRoom() *Room {
	room, ok := s.World.Room(s.CurrentRoomID)
	if !ok {
		panic("entities: current room " + s.CurrentRoomID.String() + " is not in the world")
	}
	return room
}

// Visited reports whether the player has been in a room
func (s *GameState) Visited(id uuid.UUID) bool {
	return s.VisitedRooms[id]
}

// KnowNpc returns what is known about an npc
func (s *GameState) KnowNpc(id uuid.UUID) NpcKnowledge {
	return s.NpcKnowledge[id]
}

// LearnNpc records new knowledge about an npc
func (s *GameState) LearnNpc(id uuid.UUID, k NpcKnowledge) {
	if s.NpcKnowledge == nil {
		s.NpcKnowledge = make(map[uuid.UUID]NpcKnowledge)
	}
	s.NpcKnowledge[id] = s.NpcKnowledge[id].Merge(k)
}

// KnowFixture returns what is known about a fixture
func (s *GameState) KnowFixture(id uuid.UUID) FixtureKnowledge {
	return s.FixtureKnowledge[id]
}

// LearnFixture records new knowledge about a fixture
func (s *GameState) LearnFixture(id uuid.UUID, k FixtureKnowledge) {
	if s.FixtureKnowledge == nil {
		s.FixtureKnowledge = make(map[uuid.UUID]FixtureKnowledge)
	}
	s.FixtureKnowledge[id] = s.FixtureKnowledge[id].Merge(k)
}

// Clone returns a deep copy
func (s GameState) Clone() GameState {
	out := GameState{
		CurrentRoomID:    s.CurrentRoomID,
		DangerLevel:      s.DangerLevel,
		VisitedRooms:     make(map[uuid.UUID]bool, len(s.VisitedRooms)),
		NpcKnowledge:     make(map[uuid.UUID]NpcKnowledge, len(s.NpcKnowledge)),
		FixtureKnowledge: make(map[uuid.UUID]FixtureKnowledge, len(s.FixtureKnowledge)),
		World: World{
			Rooms: make([]Room, len(s.World.Rooms)),
			Exits: make(map[uuid.UUID]ExitEnds, len(s.World.Exits)),
		},
	}
	for i, room := range s.World.Rooms {
		out.World.Rooms[i] = room.Clone()
	}
	for k, v := range s.World.Exits {
		out.World.Exits[k] = v
	}
	for k, v := range s.VisitedRooms {
		out.VisitedRooms[k] = v
	}
	for k, v := range s.NpcKnowledge {
		out.NpcKnowledge[k] = v
	}
	for k, v := range s.FixtureKnowledge {
		out.FixtureKnowledge[k] = v
	}
	return out
}
