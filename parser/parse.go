package parser

import (
	"strings"

	participle "github.com/alecthomas/participle/v2"
)

// Parser builds the concrete syntax tree rooted at *Module. Grounded on
// the teacher's v2-era grammar construction (parser/ast/ast.go's
// `participle.MustBuild(&Module{}, participle.Lexer(Lexer), ...)`).
var Parser = participle.MustBuild(
	&Module{},
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse builds a CST from src. filename is attached to every token's
// position for diagnostic rendering.
func Parse(filename, src string) (*Module, error) {
	mod := &Module{}
	err := Parser.ParseString(filename, src, mod)
	if err != nil {
		return nil, err
	}
	return mod, nil
}

// ResolvePath normalizes a CLI-supplied source path, expanding a leading
// `~/` to the user's home directory. A bare `~` or `~user` is left as is.
// Grounded on the teacher's parser/util.go.
func ResolvePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, ok := homeDir(); ok {
			return home + path[1:]
		}
	}
	return path
}
