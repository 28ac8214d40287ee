// Package scan walks directories of Java source and classifies every name
// occurrence it finds.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/google/uuid"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"jname/internal/config"
	"jname/internal/naming"
	"jname/internal/parser"
	"jname/internal/shared/observability"
)

// Occurrence is one classified name in a file.
type Occurrence struct {
	Text                string
	Kind                string
	Line                int
	Column              int
	Role                string
	Category            string
	NeedsDisambiguation bool
	Err                 string
}

type FileReport struct {
	Path  string
	Names []Occurrence
	Err   string
}

type Report struct {
	RunID       string
	Paths       []string
	GeneratedAt time.Time
	Files       []FileReport

	Roles       map[string]int
	Categories  map[string]int
	Unsupported int
}

// Scanner drives the classifier over a set of scan roots.
type Scanner struct {
	parser       *parser.Parser
	resolver     naming.Resolver
	excludeDirs  []glob.Glob
	excludeFiles []glob.Glob
}

func New(cfg *config.Config) (*Scanner, error) {
	dirGlobs := make([]glob.Glob, 0, len(cfg.Exclude.Dirs))
	for _, p := range cfg.Exclude.Dirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	fileGlobs := make([]glob.Glob, 0, len(cfg.Exclude.Files))
	for _, p := range cfg.Exclude.Files {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		fileGlobs = append(fileGlobs, g)
	}

	return &Scanner{
		parser:       parser.New(),
		excludeDirs:  dirGlobs,
		excludeFiles: fileGlobs,
	}, nil
}

// SetResolver installs a phase-2 resolver used to finish classifying names
// whose category needs semantic disambiguation.
func (s *Scanner) SetResolver(r naming.Resolver) {
	s.resolver = r
}

// Run scans all roots and returns the aggregated report.
func (s *Scanner) Run(paths []string) (*Report, error) {
	files, err := s.ScanDirectories(paths)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:       uuid.NewString(),
		Paths:       paths,
		GeneratedAt: time.Now(),
		Roles:       make(map[string]int),
		Categories:  make(map[string]int),
	}

	for _, path := range files {
		fr, err := s.ProcessFile(path)
		if err != nil {
			slog.Warn("failed to process file", "path", path, "error", err)
			fr = FileReport{Path: path, Err: err.Error()}
		}
		report.Files = append(report.Files, fr)
		for _, occ := range fr.Names {
			if occ.Role != "" {
				report.Roles[occ.Role]++
			}
			if occ.Category != "" {
				report.Categories[occ.Category]++
			}
			if occ.Err != "" {
				report.Unsupported++
			}
		}
	}

	return report, nil
}

// ScanDirectories collects the .java files under the given roots, honoring
// the exclude globs.
func (s *Scanner) ScanDirectories(paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				for _, g := range s.excludeDirs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !strings.HasSuffix(path, ".java") {
				return nil
			}

			for _, g := range s.excludeFiles {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// ProcessFile parses one file and classifies every outermost name plus the
// qualifier chain of each compound name.
func (s *Scanner) ProcessFile(path string) (FileReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileReport{}, err
	}

	start := time.Now()
	tree, err := s.parser.Parse(content)
	if err != nil {
		return FileReport{}, err
	}
	defer tree.Close()
	observability.ParsingDuration.Observe(time.Since(start).Seconds())
	observability.FilesScanned.Inc()

	classifier := naming.New(content)
	classifier.Resolver = s.resolver

	fr := FileReport{Path: path}
	s.collect(classifier, tree.RootNode(), &fr)
	return fr, nil
}

func (s *Scanner) collect(c *naming.Classifier, node *sitter.Node, fr *FileReport) {
	if node == nil {
		return
	}

	// Fragments of a larger name are covered by the qualifier chain of the
	// outermost occurrence.
	if c.IsName(node) && !c.IsName(node.Parent()) {
		for n := node; n != nil; n = c.Qualifier(n) {
			fr.Names = append(fr.Names, s.classify(c, n))
		}
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		s.collect(c, node.NamedChild(i), fr)
	}
}

func (s *Scanner) classify(c *naming.Classifier, n *sitter.Node) Occurrence {
	pos := n.StartPosition()
	occ := Occurrence{
		Kind:   n.Kind(),
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
	}
	if text, err := c.Render(n); err == nil {
		occ.Text = text
	} else {
		occ.Text = c.Text(n)
	}

	role, err := c.ClassifyRole(n)
	if err != nil {
		occ.Err = err.Error()
		if errors.Is(err, naming.ErrUnsupportedConstruct) {
			observability.UnsupportedConstructs.Inc()
		}
		return occ
	}
	occ.Role = role.String()
	observability.NamesClassified.WithLabelValues(role.String()).Inc()

	if role != naming.RoleReference {
		return occ
	}

	category, err := c.SyntacticCategory(n)
	if err != nil {
		occ.Err = err.Error()
		if errors.Is(err, naming.ErrUnsupportedConstruct) {
			observability.UnsupportedConstructs.Inc()
		}
		return occ
	}

	if category.NeedsDisambiguation() && s.resolver != nil {
		if final, err := s.resolver.Reclassify(n, category); err == nil {
			category = final
		}
	}
	occ.Category = category.String()
	occ.NeedsDisambiguation = category.NeedsDisambiguation()
	observability.ReferenceCategories.WithLabelValues(category.String()).Inc()
	return occ
}
