// Package report renders scan results for terminals and tab-separated
// output.
package report

import (
	"fmt"
	"sort"
	"strings"

	"jname/internal/scan"
)

// GenerateTSV renders one row per classified name occurrence.
func GenerateTSV(r *scan.Report) (string, error) {
	var buf strings.Builder

	buf.WriteString("File\tLine\tColumn\tName\tKind\tRole\tCategory\tNeedsDisambiguation\tError\n")
	for _, file := range r.Files {
		for _, occ := range file.Names {
			buf.WriteString(fmt.Sprintf("%s\t%d\t%d\t%s\t%s\t%s\t%s\t%t\t%s\n",
				file.Path,
				occ.Line,
				occ.Column,
				occ.Text,
				occ.Kind,
				occ.Role,
				occ.Category,
				occ.NeedsDisambiguation,
				occ.Err))
		}
	}

	return buf.String(), nil
}

// GenerateText renders a human-readable summary with per-file detail.
func GenerateText(r *scan.Report) (string, error) {
	var buf strings.Builder

	fmt.Fprintf(&buf, "run %s over %s\n", r.RunID, strings.Join(r.Paths, ", "))
	for _, file := range r.Files {
		if file.Err != "" {
			fmt.Fprintf(&buf, "\n%s: %s\n", file.Path, file.Err)
			continue
		}
		fmt.Fprintf(&buf, "\n%s (%d names)\n", file.Path, len(file.Names))
		for _, occ := range file.Names {
			if occ.Err != "" {
				fmt.Fprintf(&buf, "  %4d:%-3d %-30s %s\n", occ.Line, occ.Column, occ.Text, occ.Err)
				continue
			}
			detail := occ.Role
			if occ.Category != "" {
				detail += " " + occ.Category
				if occ.NeedsDisambiguation {
					detail += " (needs disambiguation)"
				}
			}
			fmt.Fprintf(&buf, "  %4d:%-3d %-30s %s\n", occ.Line, occ.Column, occ.Text, detail)
		}
	}

	buf.WriteString("\nroles:\n")
	for _, line := range sortedCounts(r.Roles) {
		buf.WriteString("  " + line + "\n")
	}
	buf.WriteString("categories:\n")
	for _, line := range sortedCounts(r.Categories) {
		buf.WriteString("  " + line + "\n")
	}
	if r.Unsupported > 0 {
		fmt.Fprintf(&buf, "unclassified occurrences: %d\n", r.Unsupported)
	}

	return buf.String(), nil
}

func sortedCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%-22s %d", k, counts[k]))
	}
	return lines
}
