package sniff

import (
	"bytes"
	"encoding/base64"
	"reflect"
)

// Format is a serialisation format guessed from a Go value's shape.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatBinary Format = "bin"
	FormatText   Format = "txt"
)

// AudioFormat is an audio container recognised from its leading bytes.
type AudioFormat string

const (
	AudioMP3     AudioFormat = "mp3"
	AudioWAV     AudioFormat = "wav"
	AudioUnknown AudioFormat = "unknown"
)

// IsBase64 reports whether s is standard, padded base64 that re-encodes to
// exactly s.
func IsBase64(s string) bool {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == s
}

// GuessFormat picks a format from the container type alone: maps are json,
// lists are csv, byte slices are bin and everything else is txt. Content is
// never inspected.
func GuessFormat(data interface{}) Format {
	if _, ok := data.([]byte); ok {
		return FormatBinary
	}
	if data == nil {
		return FormatText
	}
	switch reflect.TypeOf(data).Kind() {
	case reflect.Map:
		return FormatJSON
	case reflect.Slice, reflect.Array:
		return FormatCSV
	default:
		return FormatText
	}
}

var (
	id3Tag     = []byte("ID3")
	riffHeader = []byte("RIFF")
	waveMarker = []byte("WAVE")
)

// DetectAudioFormat recognises MP3 (an ID3 tag or an MPEG frame sync) and
// WAV (a RIFF header with WAVE in bytes 8 to 16).
func DetectAudioFormat(data []byte) AudioFormat {
	if bytes.HasPrefix(data, id3Tag) || isFrameSync(data) {
		return AudioMP3
	}
	if bytes.HasPrefix(data, riffHeader) && len(data) > 8 {
		end := min(len(data), 16)
		if bytes.Contains(data[8:end], waveMarker) {
			return AudioWAV
		}
	}
	return AudioUnknown
}

// isFrameSync checks for the 11 set bits that open an MPEG audio frame.
func isFrameSync(data []byte) bool {
	return len(data) > 1 && data[0] == 0xFF && data[1]&0xE0 == 0xE0
}
