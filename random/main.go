package random

import (
	"fmt"
	mathRand "math/rand"
	"net"
	"time"
)

type Randomizer struct {
	*mathRand.Rand
}

// NumberBetween returns a random number in [n, m)
func (r *Randomizer) NumberBetween(n int, m int) int {
	return r.Intn(m-n) + n
}

// PortBetween picks a random port in [min, max) that can currently be bound
// on localhost.
func (r *Randomizer) PortBetween(min, max int) (int, error) {
	const attempts = 20
	for i := 0; i < attempts; i++ {
		port := r.NumberBetween(min, max)
		if isAvailable(port) {
			return port, nil
		}
	}
	return 0, fmt.Errorf("couldn't find an available port between %d and %d", min, max)
}

func isAvailable(port int) bool {
	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}

// New returns a preseeded randomizer
func New() *Randomizer {
	return &Randomizer{
		mathRand.New(mathRand.NewSource(time.Now().UTC().UnixNano())),
	}
}
