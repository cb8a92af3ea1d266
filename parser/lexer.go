package parser

import "github.com/alecthomas/participle/v2/lexer"

// Lexer tokenizes polyglot source. Grounded on the teacher's stateful
// lexer construction (parser/ast/ast.go's Lexer), collapsed to a single
// "Root" state since this surface language has no nested lexical modes
// (no string interpolation, no heredocs).
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Comment", `#[^\n]*`, nil},
		{"Num", `[0-9]+\.[0-9]+`, nil},
		{"Int", `[0-9]+`, nil},
		{"Bool", `\b(true|false)\b`, nil},
		{"Str", `"(?:\\.|[^"\\])*"`, nil},
		{"Char", `'(?:\\.|[^'\\])'`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Op", `\*\*=|--=|::|\+=|-=|\*=|/=|%=|==|!=|<=|>=|&&|\|\||->|[-+*/%(){}\[\]:,.<>=!]`, nil},
	},
})
