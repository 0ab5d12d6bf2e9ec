// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels            = errors.New("buffer must have at least one channel")
	ErrChannelLengthMismatch = errors.New("all channels must have the same length")
	ErrNilIntBuffer          = errors.New("nil IntBuffer or format")
	ErrUnsupportedBitDepth   = errors.New("bit depth must be 8, 16 or 24")
	ErrUnsupportedChannels   = errors.New("channel count must be 1 or 2")
)
