package encodedword

import "strings"

// isEncodedWord reports whether s matches the encoded-word grammar for
// the given context: "=?" charset "?" encoding "?" data "?=", where
// charset and encoding are non-empty tokens and the data holds only bytes
// allowed in that context. This is purely structural; whether the charset
// or encoding is one this package can decode is Decode's business.
func isEncodedWord(s string, ctx Context) bool {
	if !strings.HasPrefix(s, "=?") || !strings.HasSuffix(s, "?=") {
		return false
	}

	parts := strings.Split(s[2:len(s)-2], "?")
	if len(parts) != 3 {
		return false
	}

	charset, encoding, data := parts[0], parts[1], parts[2]
	if !isToken(charset) || !isToken(encoding) {
		return false
	}

	for i := 0; i < len(data); i++ {
		if !isEncodedTextByte(data[i], ctx) {
			return false
		}
	}

	return true
}

// tokenSpecials are the bytes RFC 2045 excludes from tokens, plus the
// extra characters RFC 2047 reserves inside an encoded-word.
const tokenSpecials = "()<>@,;:\\\"/[]?.= "

// isToken reports whether s is a non-empty RFC 2047 token.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b <= ' ' || b >= 0x7f || strings.IndexByte(tokenSpecials, b) >= 0 {
			return false
		}
	}
	return true
}

// isEncodedTextByte reports whether b may appear in the data field of an
// encoded-word in the given context. Space and "?" are never allowed; a
// comment additionally forbids the bytes that would terminate or escape
// the surrounding comment; a phrase is restricted to the short list of
// RFC 2047 section 5 (3).
func isEncodedTextByte(b byte, ctx Context) bool {
	if b <= ' ' || b >= 0x7f || b == '?' {
		return false
	}

	switch ctx {
	case Phrase:
		if b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' {
			return true
		}
		return strings.IndexByte("!*+-/=_", b) >= 0
	case Comment:
		return b != '(' && b != ')' && b != '"' && b != '\\'
	}

	return true
}
