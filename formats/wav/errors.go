package wav

import "errors"

var (
	ErrInvalidContainer         = errors.New("not a RIFF/WAVE byte stream")
	ErrMissingChunk             = errors.New("fmt or data chunk not found")
	ErrUnsupportedCompression   = errors.New("compressed WAV (non-PCM) not supported")
	ErrUnsupportedChannelLayout = errors.New("only mono and stereo are supported")
	ErrUnsupportedBitDepth      = errors.New("bit depth must be 8, 16 or 24")
	ErrInconsistentHeader       = errors.New("header byte rate or block align is inconsistent")
	ErrSizeMismatch             = errors.New("encoded size fields do not match written bytes")
)
