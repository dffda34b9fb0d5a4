package template

import "github.com/zostay/go-email-template/mime"

// DefaultTemplateStem is the file stem FromDir looks for to find the
// template file of an alternative directory when the Settings don't name
// another one.
const DefaultTemplateStem = "mail"

// TypeInfo tells discovery what an alternative type means.
type TypeInfo struct {
	// MediaType is the media type of the body this alternative renders,
	// e.g. text/html for the "html" alternative.
	MediaType *mime.MediaType
}

// Settings configures directory discovery: which alternative types are
// recognized and in what order, plus the stem naming the template file.
// Registration order matters — it becomes the sub-template order of the
// discovered Spec, and with it the precedence of the alternatives in the
// final multipart structure.
type Settings struct {
	order        []string
	infos        map[string]TypeInfo
	templateStem string
}

// NewSettings returns empty Settings with the default template stem.
func NewSettings() *Settings {
	return &Settings{infos: map[string]TypeInfo{}}
}

// DefaultSettings returns Settings recognizing the usual "text" and
// "html" alternatives, text first so HTML wins the alternative choice.
func DefaultSettings() *Settings {
	s := NewSettings()

	text, err := mime.New("text/plain", "charset", "utf-8")
	if err != nil {
		panic(err)
	}
	s.Register("text", TypeInfo{MediaType: text})

	html, err := mime.New("text/html", "charset", "utf-8")
	if err != nil {
		panic(err)
	}
	s.Register("html", TypeInfo{MediaType: html})

	return s
}

// Register adds or replaces the info for an alternative type. A type
// keeps its original position in the order when registered again.
func (s *Settings) Register(name string, info TypeInfo) {
	if _, known := s.infos[name]; !known {
		s.order = append(s.order, name)
	}
	s.infos[name] = info
}

// TypeInfo looks up the info registered for an alternative type.
func (s *Settings) TypeInfo(name string) (TypeInfo, bool) {
	info, ok := s.infos[name]
	return info, ok
}

// Types returns the registered alternative types in registration order.
func (s *Settings) Types() []string { return s.order }

// SetTemplateStem changes the stem naming the template file inside each
// alternative directory and returns the previous value.
func (s *Settings) SetTemplateStem(stem string) string {
	prev := s.TemplateStem()
	s.templateStem = stem
	return prev
}

// TemplateStem returns the configured template file stem, or
// DefaultTemplateStem when none was set.
func (s *Settings) TemplateStem() string {
	if s.templateStem == "" {
		return DefaultTemplateStem
	}
	return s.templateStem
}
