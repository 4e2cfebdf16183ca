package catalog

import (
	"fmt"
	"strings"
)

// kitSeparator splits the kit name from the instrument tag in a sample
// filename. The split happens at the LAST occurrence: kit names may
// themselves contain hyphens or even "- ", so taking the last occurrence
// maximizes the chance the trailing segment is the intended tag.
const kitSeparator = " - "

// ParsedName is the successful result of parsing a sample filename.
type ParsedName struct {
	KitName    string
	Instrument string
}

// ParseError explains why a filename was rejected. Rejections are
// expected during a scan and never abort it.
type ParseError struct {
	Filename string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Filename, e.Reason)
}

// ParseFilename extracts the kit name and instrument tag from a filename
// of the form "<kit name> - <instrument><ext>". It is pure: no I/O, no
// side effects, deterministic for a given input.
func ParseFilename(filename string, vocabulary []string, requiredExt string) (ParsedName, error) {
	if !strings.HasSuffix(filename, requiredExt) {
		return ParsedName{}, &ParseError{Filename: filename, Reason: fmt.Sprintf("extension is not %q", requiredExt)}
	}
	stem := strings.TrimSuffix(filename, requiredExt)

	i := strings.LastIndex(stem, kitSeparator)
	if i < 0 {
		return ParsedName{}, &ParseError{Filename: filename, Reason: fmt.Sprintf("no %q separator", kitSeparator)}
	}

	name := strings.TrimSpace(stem[:i])
	tag := strings.ToLower(strings.TrimSpace(stem[i+len(kitSeparator):]))

	if !containsTag(vocabulary, tag) {
		return ParsedName{}, &ParseError{Filename: filename, Reason: fmt.Sprintf("unrecognized instrument %q", tag)}
	}
	return ParsedName{KitName: name, Instrument: tag}, nil
}

func containsTag(vocabulary []string, tag string) bool {
	for _, v := range vocabulary {
		if v == tag {
			return true
		}
	}
	return false
}
