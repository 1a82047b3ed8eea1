package report

import (
	"path/filepath"
	"strings"

	"github.com/IvanShishkin/filelist/internal/config"
)

// SuiteOptions controls the generated JUnit suite source
type SuiteOptions struct {
	Package       string // package declaration of the suite
	Class         string // suite class name
	LineSeparator string
	PathSeparator string // separator used in the scanned paths
}

const (
	sourceSuffix   = ".java"
	compiledSuffix = ".class"
)

// DefaultSuiteOptions returns suite options for the host platform
func DefaultSuiteOptions() SuiteOptions {
	return SuiteOptions{
		Package:       config.DefaultSuitePackage,
		Class:         config.DefaultSuiteClass,
		LineSeparator: lineSeparator,
		PathSeparator: string(filepath.Separator),
	}
}

// SuiteMember converts a relative source path to a class literal,
// e.g. pkg/FooTest.java -> pkg.FooTest.class
func SuiteMember(path, pathSeparator string) string {
	member := strings.ReplaceAll(path, pathSeparator, ".")
	if strings.HasSuffix(member, sourceSuffix) {
		member = strings.TrimSuffix(member, sourceSuffix) + compiledSuffix
	}
	return member
}

// renderSuite renders a JUnit 4 suite class referencing every path.
// Field values are ignored; only the path list matters.
func renderSuite(paths []string, opts SuiteOptions) []byte {
	nl := opts.LineSeparator
	var b strings.Builder

	b.WriteString("package " + opts.Package + ";" + nl)
	b.WriteString(nl)
	b.WriteString("import org.junit.runner.RunWith;" + nl)
	b.WriteString("import org.junit.runners.Suite.SuiteClasses;" + nl)
	b.WriteString(nl)
	b.WriteString("@RunWith(org.junit.runners.Suite.class)" + nl)
	b.WriteString("@SuiteClasses( {" + nl)
	for i, p := range paths {
		b.WriteString("\t")
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(SuiteMember(p, opts.PathSeparator))
		b.WriteString(nl)
	}
	b.WriteString("} )" + nl)
	b.WriteString("public class " + opts.Class + " { }" + nl)

	return []byte(b.String())
}
