// internal/highlight/language.go
package highlight

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"

	"github.com/mvetter/codearea/internal/logger"
)

//go:embed queries/*/*.scm
var embeddedQueries embed.FS

// Language bundles a tree-sitter grammar with its highlight query.
type Language struct {
	Name       string
	Lang       *sitter.Language
	Extensions []string
	QueryPath  string // directory under queries/

	queryOnce sync.Once
	query     *sitter.Query
	queryErr  error
}

// Query compiles (once) and returns the language's highlight query.
func (l *Language) Query() (*sitter.Query, error) {
	l.queryOnce.Do(func() {
		path := fmt.Sprintf("queries/%s/highlights.scm", l.QueryPath)
		src, err := embeddedQueries.ReadFile(path)
		if err != nil {
			l.queryErr = fmt.Errorf("no highlight query for %s: %w", l.Name, err)
			return
		}
		l.query, l.queryErr = sitter.NewQuery(src, l.Lang)
		if l.queryErr != nil {
			l.queryErr = fmt.Errorf("bad highlight query for %s: %w", l.Name, l.queryErr)
		}
	})
	return l.query, l.queryErr
}

var registry = []*Language{
	{
		Name:       "Go",
		Lang:       gosrc.GetLanguage(),
		Extensions: []string{".go"},
		QueryPath:  "go",
	},
	{
		Name:       "JavaScript",
		Lang:       jssrc.GetLanguage(),
		Extensions: []string{".js", ".mjs", ".cjs"},
		QueryPath:  "javascript",
	},
	{
		// JSON is close enough to a JavaScript expression for highlighting
		// purposes; it reuses the JavaScript grammar and query.
		Name:       "JSON",
		Lang:       jssrc.GetLanguage(),
		Extensions: []string{".json"},
		QueryPath:  "javascript",
	},
}

// ForPath returns the language registered for the file's extension, or nil
// when the file type is unknown (the widget then renders plain text).
func ForPath(path string) *Language {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil
	}
	for _, l := range registry {
		for _, e := range l.Extensions {
			if e == ext {
				return l
			}
		}
	}
	logger.Debugf("highlight: no language for extension %q", ext)
	return nil
}
