package badger

import (
	"fmt"

	"github.com/steunwijzer/steunwijzer/core"
)

// Key prefixes for different data types
const (
	sessionRecordPrefix = "sesrec"
)

// makeSessionKey generates a key for a session record. The caller-supplied
// session ID is hashed so arbitrary strings produce fixed-size keys.
func makeSessionKey(sessionID string) []byte {
	return []byte(fmt.Sprintf("%s:%d", sessionRecordPrefix, core.IDFromContent(sessionID)))
}
