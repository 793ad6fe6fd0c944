// Package criterion extracts timing estimates from the output tree
// written by a Criterion benchmark run: one directory per operation, one
// subdirectory per parameter set, and the statistics of the latest
// measurement in <leaf>/new/estimates.json.
package criterion

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReportDir is the aggregate summary directory Criterion writes next to
// the per-parameter result directories. It carries no per-parameter data
// and is skipped during traversal.
const ReportDir = "report"

// Leaf is one (operation, parameter set) result directory in the tree.
type Leaf struct {
	Operation string // top-level directory name, e.g. "token_request"
	Params    string // parameter directory name, e.g. "N4_t3_n8"
	Dir       string // path to the leaf directory
}

// ID returns the benchmark identifier for the leaf in the form used by
// the harness, e.g. "token_request/N4_t3_n8".
func (l Leaf) ID() string {
	return l.Operation + "/" + l.Params
}

// Walk enumerates the per-parameter leaf directories under root. Stray
// files at either level are silently skipped, as is the reserved
// "report" directory. A missing root is a configuration error, not an
// empty tree.
func Walk(root string) ([]Leaf, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("results root %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("results root %s is not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read results root %s: %w", root, err)
	}

	var leaves []Leaf

	for _, op := range entries {
		if !op.IsDir() {
			continue
		}

		opDir := filepath.Join(root, op.Name())

		params, err := os.ReadDir(opDir)
		if err != nil {
			// An operation directory that vanished or became
			// unreadable mid-walk loses only its own leaves.
			continue
		}

		for _, p := range params {
			if !p.IsDir() || p.Name() == ReportDir {
				continue
			}

			leaves = append(leaves, Leaf{
				Operation: op.Name(),
				Params:    p.Name(),
				Dir:       filepath.Join(opDir, p.Name()),
			})
		}
	}

	return leaves, nil
}
