package token

// symbolKinds maps every recognized punctuation byte to its kind.
// Quote characters are listed for completeness: the lexer handles ' and "
// as string openers before it consults this table.
var symbolKinds = [128]Kind{
	'=':  EqualsSign,
	'+':  PlusSign,
	'-':  Hyphen,
	'/':  Slash,
	',':  Comma,
	'.':  FullStop,
	'*':  Asterisk,
	'~':  Tilde,
	'!':  ExclamationMark,
	'@':  AtSign,
	'#':  Hash,
	'$':  Dollar,
	'%':  Percent,
	'^':  CircumflexAccent,
	'&':  Ampersand,
	'(':  LeftParenthesis,
	')':  RightParenthesis,
	'{':  LeftCurlyBracket,
	'}':  RightCurlyBracket,
	'[':  LeftBracket,
	']':  RightBracket,
	':':  Colon,
	';':  SemiColon,
	'<':  LessThanSign,
	'>':  GreaterThanSign,
	'?':  QuestionMark,
	'|':  VerticalLine,
	'\\': Backslash,
	'`':  GraveAccent,
	'\'': SingleQuote,
	'_':  Underscore,
}

// SymbolKind looks up the punctuation kind for b.
func SymbolKind(b byte) (Kind, bool) {
	if b >= 128 {
		return Unknown, false
	}
	k := symbolKinds[b]
	return k, k != Unknown
}
