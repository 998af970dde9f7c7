// Package entity provides a lookup table for named HTML5 character
// references, backing the &name; form of entity reference used by the
// mmark inline scanner. It deliberately covers a representative subset
// of the full HTML5 table rather than all ~2200 names: the parser's
// contract only depends on some table existing with this Lookup shape.
package entity

// table maps entity names (without the surrounding "&"/";") to their
// replacement text.
var table = map[string]string{
	"amp":      "&",
	"lt":       "<",
	"gt":       ">",
	"quot":     "\"",
	"apos":     "'",
	"nbsp":     " ",
	"copy":     "©",
	"reg":      "®",
	"trade":    "™",
	"mdash":    "—",
	"ndash":    "–",
	"hellip":   "…",
	"rarr":     "→",
	"larr":     "←",
	"uarr":     "↑",
	"darr":     "↓",
	"harr":     "↔",
	"lsquo":    "‘",
	"rsquo":    "’",
	"ldquo":    "“",
	"rdquo":    "”",
	"bull":     "•",
	"dagger":   "†",
	"Dagger":   "‡",
	"permil":   "‰",
	"euro":     "€",
	"pound":    "£",
	"yen":      "¥",
	"cent":     "¢",
	"sect":     "§",
	"para":     "¶",
	"middot":   "·",
	"deg":      "°",
	"plusmn":   "±",
	"times":    "×",
	"divide":   "÷",
	"frac12":   "½",
	"frac14":   "¼",
	"frac34":   "¾",
	"sup1":     "¹",
	"sup2":     "²",
	"sup3":     "³",
	"alpha":    "α",
	"beta":     "β",
	"gamma":    "γ",
	"delta":    "δ",
	"epsilon":  "ε",
	"pi":       "π",
	"sigma":    "σ",
	"omega":    "ω",
	"infin":    "∞",
	"ne":       "≠",
	"le":       "≤",
	"ge":       "≥",
	"equiv":    "≡",
	"sum":      "∑",
	"prod":     "∏",
	"radic":    "√",
	"part":     "∂",
	"nabla":    "∇",
	"forall":   "∀",
	"exist":    "∃",
	"isin":     "∈",
	"notin":    "∉",
	"cap":      "∩",
	"cup":      "∪",
	"sub":      "⊂",
	"sup":      "⊃",
	"oline":    "‾",
	"shy":      "­",
	"circ":     "ˆ",
	"tilde":    "˜",
	"Agrave":   "À",
	"Aacute":   "Á",
	"Acirc":    "Â",
	"Atilde":   "Ã",
	"Auml":     "Ä",
	"Aring":    "Å",
	"AElig":    "Æ",
	"Ccedil":   "Ç",
	"Egrave":   "È",
	"Eacute":   "É",
	"Ecirc":    "Ê",
	"Euml":     "Ë",
	"Igrave":   "Ì",
	"Iacute":   "Í",
	"Icirc":    "Î",
	"Iuml":     "Ï",
	"Ntilde":   "Ñ",
	"Ograve":   "Ò",
	"Oacute":   "Ó",
	"Ocirc":    "Ô",
	"Otilde":   "Õ",
	"Ouml":     "Ö",
	"Oslash":   "Ø",
	"Ugrave":   "Ù",
	"Uacute":   "Ú",
	"Ucirc":    "Û",
	"Uuml":     "Ü",
	"Yacute":   "Ý",
	"agrave":   "à",
	"aacute":   "á",
	"acirc":    "â",
	"atilde":   "ã",
	"auml":     "ä",
	"aring":    "å",
	"aelig":    "æ",
	"ccedil":   "ç",
	"egrave":   "è",
	"eacute":   "é",
	"ecirc":    "ê",
	"euml":     "ë",
	"igrave":   "ì",
	"iacute":   "í",
	"icirc":    "î",
	"iuml":     "ï",
	"ntilde":   "ñ",
	"ograve":   "ò",
	"oacute":   "ó",
	"ocirc":    "ô",
	"otilde":   "õ",
	"ouml":     "ö",
	"oslash":   "ø",
	"ugrave":   "ù",
	"uacute":   "ú",
	"ucirc":    "û",
	"uuml":     "ü",
	"yacute":   "ý",
	"yuml":     "ÿ",
	"szlig":    "ß",
}

// Lookup returns the replacement text for a named HTML5 character
// reference (without the surrounding "&"/";"), and whether it exists.
func Lookup(name string) (string, bool) {
	s, ok := table[name]
	return s, ok
}
