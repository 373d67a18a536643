package session

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const idSuffixLen = 10

// NewID returns an opaque random identifier: "r_" plus a fixed ten-character
// base-36 suffix, zero-padded when the random draw comes up short. The ids
// carry no meaning for the agent service; uniqueness only matters within one
// session's lifetime.
func NewID() string {
	s := strconv.FormatUint(rand.Uint64(), 36)
	if len(s) > idSuffixLen {
		s = s[:idSuffixLen]
	}
	if len(s) < idSuffixLen {
		s += strings.Repeat("0", idSuffixLen-len(s))
	}
	return "r_" + s
}

// NewClientActivityID returns a fresh id for tagging an outbound reply.
// Same alphabet as NewID but without the prefix, matching what the webchat
// widget puts in channelData.
func NewClientActivityID() string {
	return strings.TrimPrefix(NewID(), "r_")
}
