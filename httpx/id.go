package httpx

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
)

var connSeq atomic.Uint64

// newConnID returns a short random hex ID used to tag one connection's
// log lines.
func newConnID() string {
	var b [6]byte
	if _, err := rand.Read(b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	// Fallback to a process-local sequence if rand fails (unlikely)
	return "seq-" + strconv.FormatUint(connSeq.Add(1), 10)
}
