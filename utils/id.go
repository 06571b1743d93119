package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateAppointmentID returns an identifier combining the creation
// timestamp with a short random suffix, e.g. "BP-1718035200000-k3x09qa1z".
// Unique with high probability, not cryptographically guaranteed.
func GenerateAppointmentID() string {
	b := make([]byte, 9)
	rand.Read(b)
	for i := range b {
		b[i] = idAlphabet[int(b[i])%len(idAlphabet)]
	}
	return fmt.Sprintf("BP-%d-%s", time.Now().UnixMilli(), string(b))
}
