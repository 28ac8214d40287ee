package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"jname/internal/config"
	"jname/internal/naming"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Foo.java", "class Foo {}\n")
	writeFile(t, dir, "notes.txt", "not java\n")
	writeFile(t, dir, "target/Gen.java", "class Gen {}\n")
	writeFile(t, dir, "FooTest.java", "class FooTest {}\n")

	cfg := config.Default()
	cfg.Exclude.Files = []string{"*Test.java"}
	scanner, err := New(cfg)
	require.NoError(t, err)

	files, err := scanner.ScanDirectories([]string{dir})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "Foo.java"), files[0])
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Foo.java", `package p.q;

import a.b.C;

class Foo extends Bar {
    int m() {
        return x;
    }
}
`)

	scanner, err := New(config.Default())
	require.NoError(t, err)

	fr, err := scanner.ProcessFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, fr.Path)

	byText := map[string]Occurrence{}
	for _, occ := range fr.Names {
		byText[occ.Text] = occ
	}

	// Outermost names plus their qualifier chains.
	pkg, ok := byText["p.q"]
	require.True(t, ok, "package name missing: %v", fr.Names)
	assert.Equal(t, "DECLARATION", pkg.Role)

	pkgQualifier, ok := byText["p"]
	require.True(t, ok, "package qualifier missing")
	assert.Equal(t, "DECLARATION", pkgQualifier.Role)

	imp, ok := byText["a.b.C"]
	require.True(t, ok, "import name missing")
	assert.Equal(t, "REFERENCE", imp.Role)
	assert.Equal(t, "TYPE_NAME", imp.Category)

	impQualifier, ok := byText["a.b"]
	require.True(t, ok, "import qualifier missing")
	assert.Equal(t, "PACKAGE_OR_TYPE_NAME", impQualifier.Category)
	assert.True(t, impQualifier.NeedsDisambiguation)

	super, ok := byText["Bar"]
	require.True(t, ok, "superclass name missing")
	assert.Equal(t, "REFERENCE", super.Role)
	assert.Equal(t, "TYPE_NAME", super.Category)

	local, ok := byText["x"]
	require.True(t, ok, "returned name missing")
	assert.Equal(t, "EXPRESSION_NAME", local.Category)
}

func TestProcessFileRecordsUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Anno.java", "@A(k = v) class T {}\n")

	scanner, err := New(config.Default())
	require.NoError(t, err)

	fr, err := scanner.ProcessFile(path)
	require.NoError(t, err)

	var key *Occurrence
	for i := range fr.Names {
		if fr.Names[i].Text == "k" {
			key = &fr.Names[i]
		}
	}
	require.NotNil(t, key, "element-value key missing: %v", fr.Names)
	assert.Empty(t, key.Role)
	assert.NotEmpty(t, key.Err)
}

type packageResolver struct{}

func (packageResolver) Reclassify(n *sitter.Node, ambiguous naming.NameCategory) (naming.NameCategory, error) {
	return naming.CategoryPackageName, nil
}

func TestRunWithResolver(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Foo.java", "import a.b.C;\n")

	scanner, err := New(config.Default())
	require.NoError(t, err)
	scanner.SetResolver(packageResolver{})

	report, err := scanner.Run([]string{dir})
	require.NoError(t, err)

	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Files, 1)

	byText := map[string]Occurrence{}
	for _, occ := range report.Files[0].Names {
		byText[occ.Text] = occ
	}

	qualifier, ok := byText["a.b"]
	require.True(t, ok)
	assert.Equal(t, "PACKAGE_NAME", qualifier.Category)
	assert.False(t, qualifier.NeedsDisambiguation)

	assert.Positive(t, report.Roles["REFERENCE"])
	assert.Positive(t, report.Categories["TYPE_NAME"])
}

func TestRunAggregatesCounts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A.java", "class A extends B {}\n")
	writeFile(t, dir, "C.java", "class C {}\n")

	scanner, err := New(config.Default())
	require.NoError(t, err)

	report, err := scanner.Run([]string{dir})
	require.NoError(t, err)

	require.Len(t, report.Files, 2)
	assert.Equal(t, 2, report.Roles["DECLARATION"])
	assert.Equal(t, 1, report.Roles["REFERENCE"])
	assert.Equal(t, 1, report.Categories["TYPE_NAME"])
}
