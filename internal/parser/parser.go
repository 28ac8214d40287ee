// Package parser turns Java source into the read-only syntax trees the
// naming classifier consumes.
package parser

import (
	"errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// Parser parses Java source with the tree-sitter Java grammar. The zero
// value is not usable; call New.
type Parser struct {
	language *sitter.Language
}

func New() *Parser {
	return &Parser{
		language: sitter.NewLanguage(tree_sitter_java.Language()),
	}
}

// Parse returns the parse tree for content. The caller owns the tree and
// must Close it once no node taken from it is used anymore.
func (p *Parser) Parse(content []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.language)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New("parse failed")
	}
	return tree, nil
}

// Language exposes the grammar, mainly for tests that need raw queries.
func (p *Parser) Language() *sitter.Language {
	return p.language
}
