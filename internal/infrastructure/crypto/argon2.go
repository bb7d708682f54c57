package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. 64 MiB / 1 pass / 4 lanes follows the RFC 9106
// second recommended option for memory-constrained environments.
const (
	argonMemory  = 64 * 1024
	argonTime    = 1
	argonThreads = 4
	argonSaltLen = 16
	argonKeyLen  = 32

	// maxMemory bounds the m= parameter accepted from a stored hash, in
	// KiB. 1 GiB is far above any setting this service has ever used.
	maxMemory = 1 << 20
)

// Argon2Hasher hashes passwords with Argon2id and a random per-call salt.
// The output is a standard PHC string, e.g.
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so verification needs only the stored hash and the candidate password.
type Argon2Hasher struct {
	memory  uint32
	time    uint32
	threads uint8
}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{memory: argonMemory, time: argonTime, threads: argonThreads}
}

func (h *Argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.time, h.memory, h.threads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash yields false rather than an error: the caller treats it exactly
// like a wrong password.
func (h *Argon2Hasher) Verify(hash, plaintext string) bool {
	salt, key, time, memory, threads, err := decodeHash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1
}

// decodeHash splits a PHC-encoded Argon2id string into its parts. The
// parameters embedded in the hash take precedence over the hasher's own,
// so hashes produced under older settings keep verifying.
func decodeHash(hash string) (salt, key []byte, time, memory uint32, threads uint8, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed parameters: %w", err)
	}
	// argon2.IDKey panics on zero time or threads; a crafted or corrupted
	// hash must not take the process down. The memory cap bounds the work
	// a single verify can be made to do.
	if time < 1 || threads < 1 || memory < 8*uint32(threads) || memory > maxMemory {
		return nil, nil, 0, 0, 0, fmt.Errorf("parameters out of range")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed key: %w", err)
	}
	if len(key) == 0 {
		return nil, nil, 0, 0, 0, fmt.Errorf("empty key")
	}

	return salt, key, time, memory, threads, nil
}
