// internal/selector/parser.go
package selector

import (
	"regexp"
	"strconv"
)

// Descriptor is the structured, ephemeral decomposition of a selector
// string. It is produced only for matching and carries whatever the regex
// pass could recover from possibly partial or malformed input.
type Descriptor struct {
	TagName    string
	ID         string
	Classes    []string
	Attributes map[string]AttributeMatch
	// NthIndex is the argument of a trailing :nth-child/:nth-of-type, or 0.
	NthIndex int
}

// AttributeMatch records one attribute requirement from the selector.
// Exact is false for presence-only selectors like [disabled].
type AttributeMatch struct {
	Value string
	Exact bool
}

var (
	descTagRe   = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9-]*)`)
	descIDRe    = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)
	descClassRe = regexp.MustCompile(`\.([A-Za-z0-9_-]+)`)
	descAttrRe  = regexp.MustCompile(`\[\s*([A-Za-z0-9_-]+)\s*(?:[~|^$*]?=\s*(?:"([^"]*)"|'([^']*)'|([^\]'"\s]+)))?\s*\]`)
	descNthRe   = regexp.MustCompile(`:nth-(?:child|of-type)\(\s*(\d+)\s*\)`)
)

// ParseDescriptor decomposes selector text into a Descriptor. It is
// deliberately tolerant: unknown syntax is ignored, nothing ever fails, and
// only the pieces that matched are filled in. At most maxDescriptorAttrs
// attribute requirements are kept.
func ParseDescriptor(text string) Descriptor {
	d := Descriptor{Attributes: make(map[string]AttributeMatch)}

	// Strip attribute blocks before scanning for #id and .class tokens so
	// values like [href="#top"] do not masquerade as id selectors.
	stripped := descAttrRe.ReplaceAllString(text, "")

	if m := descTagRe.FindStringSubmatch(stripped); m != nil {
		d.TagName = m[1]
	}
	if m := descIDRe.FindStringSubmatch(stripped); m != nil {
		d.ID = m[1]
	}
	for _, m := range descClassRe.FindAllStringSubmatch(stripped, -1) {
		d.Classes = append(d.Classes, m[1])
	}
	for _, m := range descAttrRe.FindAllStringSubmatch(text, -1) {
		if len(d.Attributes) >= maxDescriptorAttrs {
			break
		}
		name := m[1]
		switch {
		case m[2] != "":
			d.Attributes[name] = AttributeMatch{Value: m[2], Exact: true}
		case m[3] != "":
			d.Attributes[name] = AttributeMatch{Value: m[3], Exact: true}
		case m[4] != "":
			d.Attributes[name] = AttributeMatch{Value: m[4], Exact: true}
		default:
			d.Attributes[name] = AttributeMatch{}
		}
	}
	if m := descNthRe.FindStringSubmatch(stripped); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			d.NthIndex = n
		}
	}
	return d
}

// IsEmpty reports whether the descriptor recovered nothing usable.
func (d Descriptor) IsEmpty() bool {
	return d.TagName == "" && d.ID == "" && len(d.Classes) == 0 &&
		len(d.Attributes) == 0 && d.NthIndex == 0
}
