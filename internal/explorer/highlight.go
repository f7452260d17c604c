package explorer

import (
	"path"
	"regexp"
	"strings"
	"unicode"
)

// FileType selects the line tokenizer.
type FileType int

const (
	Plain FileType = iota
	Markup
	BuildScript
	Source
	Properties
)

func (t FileType) String() string {
	switch t {
	case Markup:
		return "markup"
	case BuildScript:
		return "build-script"
	case Source:
		return "source"
	case Properties:
		return "properties"
	default:
		return "plain"
	}
}

// Role is the semantic class of a span.
type Role int

const (
	RolePlain Role = iota
	RoleComment
	RoleKeyword   // keywords and markup tag markers
	RoleAttribute // attribute names, annotations, property keys
	RoleString    // quoted literals and property values
)

// Span is a run of text with a single role. The spans of a line concatenate
// back to the line.
type Span struct {
	Text string
	Role Role
}

// DetectFileType maps a file name to its tokenizer by extension.
func DetectFileType(name string) FileType {
	lower := strings.ToLower(path.Base(name))
	switch {
	case strings.HasSuffix(lower, ".gradle.kts"), strings.HasSuffix(lower, ".gradle"):
		return BuildScript
	case strings.HasSuffix(lower, ".xml"):
		return Markup
	case strings.HasSuffix(lower, ".java"), strings.HasSuffix(lower, ".kt"):
		return Source
	case strings.HasSuffix(lower, ".properties"),
		strings.HasSuffix(lower, ".yml"),
		strings.HasSuffix(lower, ".yaml"):
		return Properties
	}
	return Plain
}

// Tokenize splits one line into styled spans. Rules are line-local.
func Tokenize(t FileType, line string) []Span {
	if line == "" {
		return nil
	}
	switch t {
	case Markup:
		return tokenizeMarkup(line)
	case BuildScript:
		return tokenizeCode(line, buildScriptKeywords)
	case Source:
		return tokenizeSource(line)
	case Properties:
		return tokenizeProperties(line)
	}
	return []Span{{Text: line}}
}

var (
	tagPattern  = regexp.MustCompile(`(</?[a-zA-Z][a-zA-Z0-9:.-]*)([^>]*?)(/?>)`)
	attrPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9:.-]*)\s*=\s*("[^"]*"|'[^']*')`)
)

func tokenizeMarkup(line string) []Span {
	if strings.HasPrefix(strings.TrimSpace(line), "<!--") {
		return []Span{{Text: line, Role: RoleComment}}
	}
	matches := tagPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return []Span{{Text: line}}
	}

	var b spanBuilder
	pos := 0
	for _, m := range matches {
		b.add(line[pos:m[0]], RolePlain)
		b.add(line[m[2]:m[3]], RoleKeyword)
		b.attributes(line[m[4]:m[5]])
		b.add(line[m[6]:m[7]], RoleKeyword)
		pos = m[1]
	}
	b.add(line[pos:], RolePlain)
	return b.spans
}

func (b *spanBuilder) attributes(region string) {
	pos := 0
	for _, m := range attrPattern.FindAllStringSubmatchIndex(region, -1) {
		b.add(region[pos:m[2]], RolePlain)
		b.add(region[m[2]:m[3]], RoleAttribute)
		b.add(region[m[3]:m[4]], RolePlain)
		b.add(region[m[4]:m[5]], RoleString)
		pos = m[1]
	}
	b.add(region[pos:], RolePlain)
}

var buildScriptKeywords = keywordSet(
	"plugins", "dependencies", "repositories", "java", "tasks",
	"implementation", "testImplementation", "runtimeOnly", "compileOnly",
	"api", "annotationProcessor", "developmentOnly", "id", "version", "apply",
	"group", "sourceCompatibility", "targetCompatibility", "mavenCentral",
	"jcenter", "buildscript", "allprojects", "subprojects", "ext",
	"sourceSets", "configurations", "springBoot", "bootJar", "bootRun",
)

var sourceKeywords = keywordSet(
	"package", "import", "class", "interface", "enum", "record", "public",
	"private", "protected", "static", "final", "abstract", "void", "int",
	"long", "double", "float", "boolean", "char", "byte", "short", "return",
	"if", "else", "for", "while", "do", "switch", "case", "default", "new",
	"this", "super", "extends", "implements", "throws", "throw", "try",
	"catch", "finally", "var", "null", "true", "false",
	// kotlin
	"fun", "val", "object", "companion", "data", "override", "when", "is", "in",
)

func keywordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func tokenizeSource(line string) []Span {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, "@") {
		return tokenizeCode(line, sourceKeywords)
	}
	indent := line[:len(line)-len(trimmed)]
	end := 1
	for end < len(trimmed) && (isWordByte(trimmed[end]) || trimmed[end] == '.') {
		end++
	}
	var b spanBuilder
	b.add(indent, RolePlain)
	b.add(trimmed[:end], RoleAttribute)
	b.spans = append(b.spans, tokenizeCode(trimmed[end:], sourceKeywords)...)
	return b.spans
}

func tokenizeCode(line string, keywords map[string]bool) []Span {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") {
		return []Span{{Text: line, Role: RoleComment}}
	}

	var b spanBuilder
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			b.add(line[i:], RoleComment)
			return b.spans
		case c == '"' || c == '\'':
			end := strings.IndexByte(line[i+1:], c)
			if end < 0 {
				b.add(line[i:], RoleString)
				return b.spans
			}
			b.add(line[i:i+end+2], RoleString)
			i += end + 2
		case isWordStart(c):
			j := i + 1
			for j < len(line) && isWordByte(line[j]) {
				j++
			}
			word := line[i:j]
			if keywords[word] {
				b.add(word, RoleKeyword)
			} else {
				b.add(word, RolePlain)
			}
			i = j
		default:
			b.add(line[i:i+1], RolePlain)
			i++
		}
	}
	return b.spans
}

func tokenizeProperties(line string) []Span {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(trimmed, "#") {
		return []Span{{Text: line, Role: RoleComment}}
	}
	indent := line[:len(line)-len(trimmed)]

	sep := -1
	if eq := strings.IndexByte(trimmed, '='); eq > 0 {
		sep = eq
	} else if colon := strings.IndexByte(trimmed, ':'); colon > 0 && !strings.HasPrefix(trimmed, "---") {
		sep = colon
	}
	if sep < 0 {
		return []Span{{Text: line}}
	}

	var b spanBuilder
	b.add(indent, RolePlain)
	b.add(trimmed[:sep], RoleAttribute)
	b.add(trimmed[sep:sep+1], RolePlain)
	b.add(trimmed[sep+1:], RoleString)
	return b.spans
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordByte(c byte) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}

// spanBuilder appends spans, dropping empty text and merging adjacent spans
// of the same role.
type spanBuilder struct {
	spans []Span
}

func (b *spanBuilder) add(text string, role Role) {
	if text == "" {
		return
	}
	if n := len(b.spans); n > 0 && b.spans[n-1].Role == role {
		b.spans[n-1].Text += text
		return
	}
	b.spans = append(b.spans, Span{Text: text, Role: role})
}
