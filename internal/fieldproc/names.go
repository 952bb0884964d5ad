package fieldproc

import (
	"strings"
)

// EtAl is the value stored for a truncated author list.
const EtAl = "et al."

// Names splits an "and"-separated name list into one field per person. Names
// are stored as "Family|Given|Given"; verbatim names use tag+":ASIS" and
// corporate names tag+":CORP".
func Names(c *Context, tag, value string, level int) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if addListed(c, tag, value, level) {
		return
	}

	tokens := strings.Fields(value)
	tokens, etal := trimEtAl(tokens)
	for _, group := range splitAnd(tokens) {
		AddName(c, tag, group, level)
	}
	if etal {
		c.Out.Add(tag+":ASIS", EtAl, level)
	}
}

// AddName stores a single name given as whitespace tokens.
func AddName(c *Context, tag string, tokens []string, level int) {
	if len(tokens) == 0 {
		return
	}
	whole := strings.Join(tokens, " ")
	if addListed(c, tag, whole, level) {
		return
	}
	if len(tokens) == 1 {
		c.Out.Add(tag+":ASIS", strings.TrimRight(tokens[0], ","), level)
		return
	}
	c.Out.Add(tag, ParseName(tokens), level)
}

func addListed(c *Context, tag, name string, level int) bool {
	switch {
	case c.Options.IsAsis(name):
		c.Out.Add(tag+":ASIS", name, level)
	case c.Options.IsCorp(name):
		c.Out.Add(tag+":CORP", name, level)
	default:
		return false
	}
	return true
}

// ParseName decomposes name tokens into "Family|Given|Given". A comma after a
// token marks everything up to it as the family name; without one the last
// token is the family name.
func ParseName(tokens []string) string {
	comma := -1
	for i, t := range tokens {
		if strings.HasSuffix(t, ",") {
			comma = i
			break
		}
	}

	var family []string
	var given []string
	if comma >= 0 {
		family = tokens[:comma+1]
		given = tokens[comma+1:]
	} else {
		family = tokens[len(tokens)-1:]
		given = tokens[:len(tokens)-1]
	}

	parts := []string{strings.TrimRight(strings.Join(family, " "), ",")}
	for _, g := range given {
		g = strings.Trim(g, ",")
		if g != "" {
			parts = append(parts, g)
		}
	}
	return strings.Join(parts, "|")
}

// splitAnd groups tokens on standalone "and", collapsing repeats.
func splitAnd(tokens []string) [][]string {
	var groups [][]string
	var cur []string
	for _, t := range tokens {
		if strings.EqualFold(t, "and") {
			if len(cur) > 0 {
				groups = append(groups, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// trimEtAl removes trailing "others", "et al." or "et al" markers.
func trimEtAl(tokens []string) ([]string, bool) {
	etal := false
	for {
		n := len(tokens)
		switch {
		case n > 0 && strings.EqualFold(tokens[n-1], "and"):
			tokens = tokens[:n-1]
			continue
		case n > 0 && strings.EqualFold(tokens[n-1], "others"):
			tokens = tokens[:n-1]
		case n > 1 && isEt(tokens[n-2]) && isAl(tokens[n-1]):
			tokens = tokens[:n-2]
		default:
			return tokens, etal
		}
		etal = true
	}
}

func isEt(s string) bool {
	return strings.EqualFold(strings.TrimLeft(s, ","), "et")
}

func isAl(s string) bool {
	s = strings.ToLower(s)
	return s == "al." || s == "al"
}
