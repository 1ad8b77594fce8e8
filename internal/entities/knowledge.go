package entities

// NpcKnowledge is what the player has learned about an npc
type NpcKnowledge struct {
	NameKnown      bool `json:"name_known"`
	HealthKnown    bool `json:"health_known"`
	InventoryKnown bool `json:"inventory_known"`
}

// Merge keeps every flag already known
func (k NpcKnowledge) Merge(other NpcKnowledge) NpcKnowledge {
	return NpcKnowledge{
		NameKnown:      k.NameKnown || other.NameKnown,
		HealthKnown:    k.HealthKnown || other.HealthKnown,
		InventoryKnown: k.InventoryKnown || other.InventoryKnown,
	}
}

// FixtureKnowledge is what the player has learned about a fixture
type FixtureKnowledge struct {
	ContentsKnown          bool `json:"contents_known"`
	HiddenCompartmentKnown bool `json:"hidden_compartment_known"`
}

// Merge keeps every flag already known
func (k FixtureKnowledge) Merge(other FixtureKnowledge) FixtureKnowledge {
	return FixtureKnowledge{
		ContentsKnown:          k.ContentsKnown || other.ContentsKnown,
		HiddenCompartmentKnown: k.HiddenCompartmentKnown || other.HiddenCompartmentKnown,
	}
}
