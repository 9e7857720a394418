package workspace

import (
	"bufio"
	"fmt"
	"os"
)

// IsIndex reports whether the file at path is an index: every line must
// match the entry grammar. The predicate is structural, so an empty file is
// vacuously an index. One non-matching line makes the whole file a leaf.
func IsIndex(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("workspace classify %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if _, ok := ParseEntry(scanner.Text()); !ok {
			return false, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("workspace classify %s: %w", path, err)
	}
	return true, nil
}
