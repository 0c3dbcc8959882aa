package nlp

import (
	"strings"
	"unicode"
)

// UniversalPOS maps a Penn Treebank tag to a universal part of speech.
func UniversalPOS(tag string) string {
	switch {
	case tag == "NNP" || tag == "NNPS":
		return POSPropn
	case strings.HasPrefix(tag, "NN"):
		return POSNoun
	case tag == "MD":
		return POSAux
	case strings.HasPrefix(tag, "VB"):
		return POSVerb
	case strings.HasPrefix(tag, "JJ"):
		return POSAdj
	case strings.HasPrefix(tag, "RB") || tag == "WRB":
		return POSAdv
	case tag == "IN":
		return POSAdp
	case tag == "DT" || tag == "PDT" || tag == "WDT" || tag == "PRP$" || tag == "WP$":
		return POSDet
	case tag == "PRP" || tag == "WP" || tag == "EX":
		return POSPron
	case tag == "CD":
		return POSNum
	case tag == "CC":
		return POSCconj
	case tag == "TO" || tag == "RP" || tag == "POS":
		return POSPart
	case tag == "" || strings.ContainsAny(tag, ".,:;()\"'`$#") || tag == "-LRB-" || tag == "-RRB-":
		return POSPunct
	}
	return POSX
}

// IsAlpha reports whether s is non-empty and made of letters only.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NewToken builds an unlabelled token from its text and Penn tag.
func NewToken(text, tag string) Token {
	return Token{
		Text:    text,
		Tag:     tag,
		POS:     UniversalPOS(tag),
		Head:    -1,
		IsStop:  IsStopWord(text),
		IsAlpha: IsAlpha(text),
	}
}
