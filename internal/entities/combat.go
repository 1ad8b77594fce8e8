package entities

// Attack is a damage expression: Dice six-sided dice plus Modifier
type Attack struct {
	Dice     int `json:"dice"`
	Modifier int `json:"modifier"`
}

// Add combines two attacks into one pool
func (a Attack) Add(other Attack) Attack {
	return Attack{
		Dice:     a.Dice + other.Dice,
		Modifier: a.Modifier + other.Modifier,
	}
}

// Max is the highest value the attack can roll
func (a Attack) Max() int {
	return a.Dice*6 + a.Modifier
}

// ReductionKind decides how a rolled defense lowers incoming damage
type ReductionKind string

// Reduction kinds
const (
	ReductionSubtractive    ReductionKind = "subtractive"
	ReductionMultiplicative ReductionKind = "multiplicative"
)

// Reduce applies a rolled defense value to a rolled attack value.
func (k ReductionKind) Reduce(attack, defense int) int {
	if attack <= 0 {
		return 0
	}
	if defense <= 0 {
		return attack
	}
	switch k {
	case ReductionMultiplicative:
		return attack * 100 / (100 + 10*defense)
	default:
		if attack <= defense {
			return 0
		}
		return attack - defense
	}
}

// Defense is a rolled damage reduction: Dice six-sided dice plus Modifier
type Defense struct {
	Dice     int           `json:"dice"`
	Modifier int           `json:"modifier"`
	Kind     ReductionKind `json:"kind,omitempty"`
}

// Add combines two defenses, keeping the receiver's reduction kind
func (d Defense) Add(other Defense) Defense {
	return Defense{
		Dice:     d.Dice + other.Dice,
		Modifier: d.Modifier + other.Modifier,
		Kind:     d.Kind,
	}
}
