package encodedword

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// qSafe reports whether a byte may appear raw in the data field of a
// Q-encoded word destined for the given context. Everything else must be
// written as =XX (or "_" for space).
func qSafe(b byte, ctx Context) bool {
	if b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' {
		return true
	}

	switch ctx {
	case Phrase:
		// RFC 2047 section 5 (3): in a phrase, only alphanumerics and a
		// short punctuation list may appear unencoded. "=" and "_" are in
		// that list too, but they already carry meaning inside Q data.
		return strings.IndexByte("!*+-/", b) >= 0
	case Comment:
		if b == '(' || b == ')' || b == '"' || b == '\\' {
			return false
		}
	}

	// Printable ASCII, minus the bytes Q reserves.
	return b > ' ' && b < 0x7f && b != '=' && b != '?' && b != '_'
}

// qEncodedLen returns how many bytes the Q encoding of b takes.
func qEncodedLen(b byte, ctx Context) int {
	if b == ' ' || qSafe(b, ctx) {
		return 1
	}
	return 3
}

// qAppend appends the Q encoding of b.
func qAppend(sb *strings.Builder, b byte, ctx Context) {
	switch {
	case b == ' ':
		sb.WriteByte('_')
	case qSafe(b, ctx):
		sb.WriteByte(b)
	default:
		sb.WriteByte('=')
		sb.WriteByte(upperhex[b>>4])
		sb.WriteByte(upperhex[b&0xf])
	}
}

// qEncodeSplit Q-encodes text into data chunks no longer than max bytes
// each, splitting only at rune boundaries so every chunk decodes to valid
// UTF-8 on its own. It always returns at least one chunk.
func qEncodeSplit(text string, ctx Context, max int) []string {
	chunks := []string{}
	var sb strings.Builder
	for _, r := range text {
		bs := string(r)

		need := 0
		for i := 0; i < len(bs); i++ {
			need += qEncodedLen(bs[i], ctx)
		}

		if sb.Len()+need > max && sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}

		for i := 0; i < len(bs); i++ {
			qAppend(&sb, bs[i], ctx)
		}
	}

	chunks = append(chunks, sb.String())
	return chunks
}

// qDecode decodes the data field of a Q-encoded word back into raw bytes.
func qDecode(data string) ([]byte, error) {
	raw := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		switch b := data[i]; b {
		case '_':
			raw = append(raw, ' ')
		case '=':
			if i+2 >= len(data) {
				return nil, fmt.Errorf("truncated =XX escape at byte %d", i)
			}
			hi, ok1 := unhex(data[i+1])
			lo, ok2 := unhex(data[i+2])
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("bad =XX escape %q at byte %d", data[i:i+3], i)
			}
			raw = append(raw, hi<<4|lo)
			i += 2
		default:
			raw = append(raw, b)
		}
	}
	return raw, nil
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

// bEncodeSplit base64-encodes text into data chunks no longer than max
// bytes each. Raw input is chunked at rune boundaries so each chunk is
// independently decodable UTF-8. It always returns at least one chunk.
func bEncodeSplit(text string, max int) []string {
	// Padding rounds base64 output up to multiples of 4, so the largest
	// raw chunk is found from whole output quads.
	maxRaw := max / 4 * 3

	chunks := []string{}
	start := 0
	for i, r := range text {
		if i-start+len(string(r)) > maxRaw {
			chunks = append(chunks, base64.StdEncoding.EncodeToString([]byte(text[start:i])))
			start = i
		}
	}

	chunks = append(chunks, base64.StdEncoding.EncodeToString([]byte(text[start:])))
	return chunks
}

// bDecode decodes the data field of a B-encoded word.
func bDecode(data string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(data)
}
