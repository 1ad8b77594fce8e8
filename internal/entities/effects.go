package entities

// Poison deals Damage at the end of every turn for Duration turns
type Poison struct {
	Damage   int `json:"damage"`
	Duration int `json:"duration"`
}

// Escalation added to an existing poison by another dose
const (
	PoisonEscalationDamage   = 1
	PoisonEscalationDuration = 2
)

// Escalate strengthens an existing poison
func (p Poison) Escalate() Poison {
	return Poison{
		Damage:   p.Damage + PoisonEscalationDamage,
		Duration: p.Duration + PoisonEscalationDuration,
	}
}

// AuraKind names a lasting protective spell
type AuraKind string

// Aura kinds
const (
	AuraShield       AuraKind = "shield"
	AuraRetribution  AuraKind = "retribution"
	AuraResurrection AuraKind = "resurrection"
)

// Aura is a lasting spell on the player. Shield uses Resistance,
// retribution uses Attack; resurrection has no strength.
type Aura struct {
	Kind       AuraKind `json:"kind"`
	Resistance int      `json:"resistance,omitempty"`
	Attack     *Attack  `json:"attack,omitempty"`
}

// Effects are the lasting conditions on a character
type Effects struct {
	Poison       *Poison `json:"poison,omitempty"`
	Shield       *Aura   `json:"shield,omitempty"`
	Retribution  *Aura   `json:"retribution,omitempty"`
	Resurrection *Aura   `json:"resurrection,omitempty"`
}

// IsPoisoned reports whether a poison is active
func (e Effects) IsPoisoned() bool {
	return e.Poison != nil && e.Poison.Duration > 0
}

// Aura returns the active aura of a kind, or nil
func (e Effects) Aura(kind AuraKind) *Aura {
	switch kind {
	case AuraShield:
		return e.Shield
	case AuraRetribution:
		return e.Retribution
	case AuraResurrection:
		return e.Resurrection
	}
	return nil
}

// SetAura replaces the aura of the same kind
func (e *Effects) SetAura(aura Aura) {
	a := aura.clone()
	switch aura.Kind {
	case AuraShield:
		e.Shield = &a
	case AuraRetribution:
		e.Retribution = &a
	case AuraResurrection:
		e.Resurrection = &a
	}
}

// ClearAura drops the aura of a kind
func (e *Effects) ClearAura(kind AuraKind) {
	switch kind {
	case AuraShield:
		e.Shield = nil
	case AuraRetribution:
		e.Retribution = nil
	case AuraResurrection:
		e.Resurrection = nil
	}
}

// Clone returns a deep copy
func (e Effects) Clone() Effects {
	out := Effects{}
	if e.Poison != nil {
		p := *e.Poison
		out.Poison = &p
	}
	for _, aura := range []*Aura{e.Shield, e.Retribution, e.Resurrection} {
		if aura != nil {
			out.SetAura(*aura)
		}
	}
	return out
}

func (a Aura) clone() Aura {
	if a.Attack != nil {
		atk := *a.Attack
		a.Attack = &atk
	}
	return a
}
