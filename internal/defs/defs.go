// Package defs supplies the static tables the scanner consults: URI
// schemes, the HTML parser blacklist, and void-tag sets. The scanner
// depends on these as an external "definitions provider" collaborator;
// this package is the default implementation of that collaborator.
package defs

import "strings"

// Definitions is the collaborator interface the scanner depends on. A
// caller may supply an alternate implementation (e.g. one that adds
// site-specific URI schemes) via scanner.Options.
type Definitions interface {
	// IsURIScheme reports whether scheme (already lowercased) is a
	// recognized URI scheme. withAuthority selects which table to check:
	// true for schemes that were followed by "//", false otherwise.
	IsURIScheme(scheme string, withAuthority bool) bool
	// IsParserBlacklisted reports whether name (lowercased, trimmed) is a
	// tag whose body must be treated as literal text.
	IsParserBlacklisted(name string) bool
	// IsSingle reports whether name may appear without a closing tag.
	IsSingle(name string) bool
	// IsSingleOnly reports whether name must never have a closing tag.
	IsSingleOnly(name string) bool
}

// uriSchemes are the schemes recognized when followed by "//"; a bare
// scheme (no "//") must also be in uriSchemesAuthorityOptional.
var uriSchemes = newSet(
	"bitcoin", "ftp", "ftps", "geo", "git", "gopher", "http", "https",
	"irc", "ircs", "magnet", "mailto", "mms", "news", "nntp", "redis",
	"sftp", "sip", "sips", "sms", "ssh", "svn", "tel", "telnet", "urn",
	"worldwind", "xmpp",
)

// uriSchemesAuthorityOptional may appear without a following "//".
var uriSchemesAuthorityOptional = newSet(
	"bitcoin", "geo", "magnet", "mailto", "news", "sip", "sips", "sms",
	"tel", "urn", "xmpp",
)

var parserBlacklist = newSet(
	"categorytree", "ce", "chem", "gallery", "graph", "hiero", "imagemap",
	"inputbox", "math", "nowiki", "pre", "score", "section", "source",
	"syntaxhighlight", "templatedata", "timeline",
)

var single = newSet(
	"br", "wbr", "hr", "meta", "link", "img", "li", "dt", "dd", "th",
	"td", "tr",
)

var singleOnly = newSet(
	"br", "wbr", "hr", "meta", "link", "img",
)

func newSet(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Default is the baseline Definitions table.
type Default struct {
	// Extra* allow a caller to widen the baseline tables (e.g. a site with
	// custom parser-blacklisted extension tags) without forking the
	// package. A zero-value Default behaves exactly like the static
	// baseline tables above.
	ExtraURISchemes            []string
	ExtraURISchemesNoAuthority []string
	ExtraParserBlacklist       []string
}

func (d Default) IsURIScheme(scheme string, withAuthority bool) bool {
	scheme = strings.ToLower(scheme)
	if withAuthority {
		if _, ok := uriSchemes[scheme]; ok {
			return true
		}
	} else {
		// A scheme with an optional authority is valid either way; a
		// scheme requiring an authority is only valid when withAuthority.
		if _, ok := uriSchemesAuthorityOptional[scheme]; ok {
			return true
		}
	}
	for _, s := range d.ExtraURISchemes {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	if !withAuthority {
		for _, s := range d.ExtraURISchemesNoAuthority {
			if strings.EqualFold(s, scheme) {
				return true
			}
		}
	}
	return false
}

func (d Default) IsParserBlacklisted(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := parserBlacklist[name]; ok {
		return true
	}
	for _, n := range d.ExtraParserBlacklist {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func (d Default) IsSingle(name string) bool {
	_, ok := single[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (d Default) IsSingleOnly(name string) bool {
	_, ok := singleOnly[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
