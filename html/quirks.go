package html

import (
	"strings"

	"github.com/chrisuehlinger/domtree/dom"
	"golang.org/x/net/html"
)

// Public identifiers that put a document in quirks mode when they begin the
// doctype's public id (compared case-insensitively).
var quirkyPublicPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0 level 1//",
	"-//ietf//dtd html 2.0 level 2//",
	"-//ietf//dtd html 2.0 strict level 1//",
	"-//ietf//dtd html 2.0 strict level 2//",
	"-//ietf//dtd html 2.0 strict//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var quirkyPublicIDs = []string{
	"-//w3o//dtd w3 html strict 3.0//en//",
	"-/w3c/dtd html 4.0 transitional/en",
	"html",
}

const quirkySystemID = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

// HTML 4.01 frameset and transitional doctypes are quirky without a system
// id and limited-quirky with one.
var html401Prefixes = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

var limitedQuirkyPublicPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

// QuirksModeFor returns the quirks mode a document with the given doctype is
// parsed in. A nil doctype means the document had none. An empty system id
// is treated as missing; the parser distinguishes the two.
func QuirksModeFor(doctype *dom.Doctype) dom.QuirksMode {
	if doctype == nil {
		return dom.Quirks
	}
	return quirksMode(doctype.Name(), doctype.PublicID(), doctype.SystemID(), doctype.SystemID() != "")
}

// doctypeQuirksMode computes the quirks mode from a golang.org/x/net/html
// doctype node, which carries a "system" attribute only when the doctype
// has a system identifier, possibly empty.
func doctypeQuirksMode(n *html.Node) dom.QuirksMode {
	if n == nil {
		return dom.Quirks
	}
	var publicID, systemID string
	hasSystemID := false
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			publicID = a.Val
		case "system":
			systemID = a.Val
			hasSystemID = true
		}
	}
	return quirksMode(n.Data, publicID, systemID, hasSystemID)
}

func quirksMode(name, publicID, systemID string, hasSystemID bool) dom.QuirksMode {
	if !strings.EqualFold(name, "html") {
		return dom.Quirks
	}

	publicID = strings.ToLower(publicID)
	systemID = strings.ToLower(systemID)

	for _, id := range quirkyPublicIDs {
		if publicID == id {
			return dom.Quirks
		}
	}
	if systemID == quirkySystemID {
		return dom.Quirks
	}
	if hasAnyPrefix(publicID, quirkyPublicPrefixes) {
		return dom.Quirks
	}
	if hasAnyPrefix(publicID, html401Prefixes) {
		if !hasSystemID {
			return dom.Quirks
		}
		return dom.LimitedQuirks
	}
	if hasAnyPrefix(publicID, limitedQuirkyPublicPrefixes) {
		return dom.LimitedQuirks
	}
	return dom.NoQuirks
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
