// Package javasrc extracts module declarations from Java sources with tree-sitter.
package javasrc

import (
	"context"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	nodeModuleDeclaration = "module_declaration"
	nodeIdentifier        = "identifier"
)

var _ ports.SourceModuleReader = (*Reader)(nil)

// Reader implements ports.SourceModuleReader. It is safe for concurrent use.
type Reader struct {
	lang    *sitter.Language
	parsers sync.Pool
}

// NewReader creates a reader for the Java grammar.
func NewReader() *Reader {
	r := &Reader{lang: java.GetLanguage()}
	r.parsers.New = func() any {
		p := sitter.NewParser()
		p.SetLanguage(r.lang)
		return p
	}
	return r
}

// ParseModuleName returns the name declared by a module-info.java source.
func (r *Reader) ParseModuleName(ctx context.Context, src []byte) (string, error) {
	p := r.parsers.Get().(*sitter.Parser)
	defer func() {
		p.Reset()
		r.parsers.Put(p)
	}()

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrSourceParseFailed.Error())
	}
	defer tree.Close()

	root := tree.RootNode()
	for i := range int(root.NamedChildCount()) {
		child := root.NamedChild(i)
		if child.Type() != nodeModuleDeclaration {
			continue
		}

		nameNode := child.ChildByFieldName("name")
		if nameNode == nil || nameNode.HasError() {
			break
		}

		if name := qualifiedName(nameNode, src); name != "" {
			return name, nil
		}
		break
	}

	return "", domain.ErrNoModuleDeclaration
}

// qualifiedName joins the identifiers below n with dots, dropping the
// whitespace and comments a scoped name may contain.
func qualifiedName(n *sitter.Node, src []byte) string {
	var parts []string

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == nodeIdentifier {
			parts = append(parts, n.Content(src))
			return
		}
		for i := range int(n.NamedChildCount()) {
			walk(n.NamedChild(i))
		}
	}
	walk(n)

	return strings.Join(parts, ".")
}
