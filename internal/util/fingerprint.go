package util

import (
	"fmt"
	"strconv"
)

// Fingerprint hashes client environment attributes into a short base-36
// token used to bucket rate limiting.
//
// This is deliberately a non-cryptographic rolling hash: collisions are
// expected and acceptable, and the value must never be treated as a stable
// user identity. Do not "upgrade" it to a cryptographic hash; that would
// turn a throttling bucket into a tracking mechanism.
func Fingerprint(userAgent, language string, screenWidth, screenHeight, timezoneOffset int) string {
	material := fmt.Sprintf("%s|%s|%dx%d|%d", userAgent, language, screenWidth, screenHeight, timezoneOffset)

	var hash int32
	for _, c := range material {
		hash = hash<<5 - hash + int32(c)
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
