package classifier

// The tokenizer is deliberately language-neutral: it knows nothing about any
// particular grammar. Identifiers survive verbatim, numeric and string
// literals collapse to generic token classes, and operator characters are
// emitted as short punctuation runs. Frequency tables trained with the same
// tokenizer then become comparable across languages.

const (
	numberToken = "<NUM>"
	stringToken = "<STR>"

	// maxTokens bounds tokenizer output so classification cost stays
	// proportional to the content sample, not the vocabulary.
	maxTokens = 100000
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' || b == '\v'
}

func isPunct(b byte) bool {
	switch {
	case isSpace(b), isIdentPart(b):
		return false
	case b == '"' || b == '\'':
		return false
	case b >= 0x80: // leave multi-byte runes out of punctuation runs
		return false
	}
	return b > 0x20 && b < 0x7f
}

// Tokenize splits content into the lexical token stream the classifier
// scores. The output is deterministic for identical input.
func Tokenize(content []byte) []string {
	tokens := make([]string, 0, 256)
	i := 0
	n := len(content)

	for i < n && len(tokens) < maxTokens {
		b := content[i]

		switch {
		case isSpace(b):
			i++

		case isIdentStart(b):
			start := i
			for i < n && isIdentPart(content[i]) {
				i++
			}
			tokens = append(tokens, string(content[start:i]))

		case isDigit(b):
			for i < n && (isIdentPart(content[i]) || content[i] == '.') {
				i++
			}
			tokens = append(tokens, numberToken)

		case b == '"' || b == '\'':
			quote := b
			i++
			for i < n && content[i] != quote && content[i] != '\n' {
				if content[i] == '\\' && i+1 < n {
					i++
				}
				i++
			}
			if i < n && content[i] == quote {
				i++
			}
			tokens = append(tokens, stringToken)

		case isPunct(b):
			start := i
			for i < n && isPunct(content[i]) && i-start < 3 {
				i++
			}
			tokens = append(tokens, string(content[start:i]))

		default:
			// multi-byte rune or control byte, skip
			i++
		}
	}

	return tokens
}
