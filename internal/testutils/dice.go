package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

var _ dice.Roller = (*ScriptedRoller)(nil)

// ScriptedRoller replays a fixed list of rolls in order. Running out of
// rolls, or a roll too large for the die, is an error so tests notice when
// the code rolls more than expected.
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	used  int
}

// NewScriptedRoller creates a roller that returns rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next(size)
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.next(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining is the number of rolls not yet used
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls) - r.used
}

// Used is the number of rolls consumed
func (r *ScriptedRoller) Used() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}

func (r *ScriptedRoller) next(size int) (int, error) {
	if r.used >= len(r.rolls) {
		return 0, errors.Internalf("scripted roller exhausted after %d rolls", r.used)
	}
	v := r.rolls[r.used]
	if v < 1 || v > size {
		return 0, errors.Internalf("scripted roll %d (#%d) does not fit a d%d", v, r.used+1, size)
	}
	r.used++
	return v, nil
}
