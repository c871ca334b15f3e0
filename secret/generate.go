package secret

import (
	crand "crypto/rand"
	"fmt"
)

// Generate returns a new random secret of n bytes read from the system
// cryptographic source. A zero n uses DefaultLength.
func Generate(n Length) (Secret, error) {
	data := make([]byte, n.OrDefault())
	if _, err := crand.Read(data); err != nil {
		return Secret{}, fmt.Errorf("generate secret: %w", err)
	}
	return Secret{data: data}, nil
}
