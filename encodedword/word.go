package encodedword

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Errors returned while parsing and decoding encoded-words.
var (
	// ErrInvalidEncodedWord is returned by Parse when the given text does
	// not match the encoded-word grammar for the given context.
	ErrInvalidEncodedWord = errors.New("not a valid encoded word")

	// ErrMalformed is returned by Decode when the word is structurally
	// broken: shorter than the minimum possible encoded-word or missing
	// one of the "?" delimiters.
	ErrMalformed = errors.New("malformed encoded word")

	// ErrUnsupportedCharset is returned by Decode when the charset field
	// names anything other than utf8.
	ErrUnsupportedCharset = errors.New("unsupported charset in encoded word")

	// ErrUnknownEncoding is returned by Decode when the encoding field is
	// not exactly "B" or "Q".
	ErrUnknownEncoding = errors.New("unknown encoding in encoded word")

	// ErrBrokenEncoding is returned by Decode when the data field cannot
	// be decoded or the decoded bytes are not valid UTF-8 text.
	ErrBrokenEncoding = errors.New("broken encoding in encoded word")
)

// Charset is the charset label this package reads and writes. Decoding a
// word with any other charset fails with ErrUnsupportedCharset.
const Charset = "utf8"

// MaxLength is the longest a single encoded-word may be, per RFC 2047.
// Encode splits its output into multiple words to stay under it.
const MaxLength = 75

// Context names the kind of header location an encoded-word is destined
// for. The contexts differ in which bytes the Q encoding may carry raw,
// because the surrounding grammar reserves different characters.
type Context int

const (
	// Text is an unstructured header body, such as Subject.
	Text Context = iota

	// Phrase is a structured position such as the display name of an
	// address. Only alphanumerics and a small punctuation set may appear
	// unencoded.
	Phrase

	// Comment is the inside of a "(...)" header comment, where the
	// parentheses and the quote character must never appear raw.
	Comment
)

// String returns the name of the context.
func (c Context) String() string {
	switch c {
	case Text:
		return "text"
	case Phrase:
		return "phrase"
	case Comment:
		return "comment"
	}
	return fmt.Sprintf("context(%d)", int(c))
}

// Encoding selects how the data field of an encoded-word encodes the
// underlying bytes.
type Encoding byte

const (
	// Base64 is the B encoding of RFC 2047.
	Base64 Encoding = 'B'

	// QuotedPrintable is the Q encoding of RFC 2047. It is not quite the
	// quoted-printable of message bodies: space becomes "_" and the safe
	// character set depends on the Context.
	QuotedPrintable Encoding = 'Q'
)

// Word is a single validated encoded-word together with the context it
// targets. A Word obtained from Encode or Parse is immutable and always
// syntactically valid for its context. The zero Word is not valid.
type Word struct {
	text string
	ctx  Context
}

// String returns the ASCII wire form of the word, byte-for-byte what
// belongs in the header.
func (w Word) String() string { return w.text }

// Context returns the header context the word was validated for.
func (w Word) Context() Context { return w.ctx }

// Parse validates the given ASCII text against the encoded-word grammar
// for the given context and returns it as a Word. It returns
// ErrInvalidEncodedWord when the text does not match. Parse checks
// structure only; the charset and encoding fields are not interpreted
// until Decode.
func Parse(text string, ctx Context) (Word, error) {
	if !isEncodedWord(text, ctx) {
		return Word{}, fmt.Errorf("%w in %s context: %q", ErrInvalidEncodedWord, ctx, text)
	}
	return Word{text, ctx}, nil
}

// Encode converts UTF-8 text into one or more encoded-words for the given
// context. It always returns at least one word. When the encoded form
// would not fit MaxLength, the text is split greedily at rune boundaries
// into as many individually valid words as needed; decoding the words in
// order and concatenating the results reproduces the input.
func Encode(text string, enc Encoding, ctx Context) []Word {
	// Everything but the data field: "=?utf8?" + enc + "?" + "?="
	overhead := len("=?") + len(Charset) + len("?") + 1 + len("?") + len("?=")
	max := MaxLength - overhead

	var chunks []string
	switch enc {
	case QuotedPrintable:
		chunks = qEncodeSplit(text, ctx, max)
	default:
		chunks = bEncodeSplit(text, max)
	}

	words := make([]Word, len(chunks))
	for i, data := range chunks {
		words[i] = Word{
			text: fmt.Sprintf("=?%s?%c?%s?=", Charset, enc, data),
			ctx:  ctx,
		}
	}
	return words
}

// Decode extracts the charset, encoding, and data fields of the word and
// returns the decoded text. The field boundaries are found by scanning:
// the first "?" after the "=?" prefix ends the charset, the next one ends
// the encoding, and the data runs to the "?=" suffix, whose position is
// computed from the total length so that a stray "?" inside the data is
// never mistaken for a delimiter.
//
// Decode fails with ErrMalformed when the word is shorter than the
// minimum or a delimiter is missing, ErrUnsupportedCharset when the
// charset is not utf8, ErrUnknownEncoding when the encoding field is not
// exactly "B" or "Q", and ErrBrokenEncoding when the data does not decode
// to valid UTF-8 text. It does not re-check the full grammar; that
// happened at Parse or Encode time.
func (w Word) Decode() (string, error) {
	s := w.text
	if len(s) < 8 {
		return "", fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	// s[1] is the "?" of the leading "=?".
	const first = 1

	second := strings.IndexByte(s[first+1:], '?')
	if second < 0 {
		return "", fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	second += first + 1

	third := strings.IndexByte(s[second+1:], '?')
	if third < 0 {
		return "", fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	third += second + 1

	// The "?" of the trailing "?=". When the scan for the third delimiter
	// lands on it, there is no data field at all.
	last := len(s) - 2
	if third+1 > last {
		return "", fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	charset := s[first+1 : second]
	encoding := s[second+1 : third]
	data := s[third+1 : last]

	if charset != Charset {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
	}

	var (
		raw []byte
		err error
	)
	switch encoding {
	case "B":
		raw, err = bDecode(data)
	case "Q":
		raw, err = qDecode(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBrokenEncoding, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: data is not valid UTF-8", ErrBrokenEncoding)
	}

	return string(raw), nil
}
