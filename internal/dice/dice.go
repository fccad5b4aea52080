// Package dice provides a small dice roller for NdM+K expressions, used to
// randomize NPC wander timers.
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// Roller rolls dice expressions with a configurable random source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source.
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll evaluates a dice expression and returns the total.
// Supported syntax:
//   - Basic dice: "3d6" (roll 3 six-sided dice), "d4" (one die)
//   - A flat modifier: "3d6+5", "2d8-2"
//   - Constants: "5", "10"
func (r *Roller) Roll(expression string) (int, error) {
	expr := strings.TrimSpace(strings.ToLower(expression))
	if expr == "" {
		return 0, fmt.Errorf("empty expression")
	}

	if n, err := strconv.Atoi(expr); err == nil {
		return n, nil
	}

	m := exprPattern.FindStringSubmatch(expr)
	if m == nil {
		return 0, fmt.Errorf("invalid dice expression %q", expression)
	}

	count := 1
	if m[1] != "" {
		var err error
		count, err = strconv.Atoi(m[1])
		if err != nil || count <= 0 {
			return 0, fmt.Errorf("invalid die count in %q", expression)
		}
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil || sides <= 0 {
		return 0, fmt.Errorf("invalid die sides in %q", expression)
	}

	modifier := 0
	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return 0, fmt.Errorf("invalid modifier in %q", expression)
		}
	}

	total := modifier
	for i := 0; i < count; i++ {
		total += r.rng.Intn(sides) + 1
	}
	return total, nil
}
