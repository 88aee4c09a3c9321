package git

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"reactlint/internal/crawler"
)

type ChangedFile struct {
	Path         string
	ChangedLines []int
}

// ContainsLine reports whether line is part of this file's diff.
func (f *ChangedFile) ContainsLine(line int) bool {
	for _, l := range f.ChangedLines {
		if l == line {
			return true
		}
	}
	return false
}

// GetChangedFiles runs git diff against baseRef in dir and returns the
// changed JS/JSX files with their touched line numbers.
func GetChangedFiles(dir, baseRef string) ([]ChangedFile, error) {
	cmd := exec.Command("git", "diff", "-U0", baseRef)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w", err)
	}

	all, err := parseDiff(output)
	if err != nil {
		return nil, err
	}

	// Only source files the linter can parse are worth reporting.
	var changes []ChangedFile
	for _, f := range all {
		if crawler.IsSourceFile(f.Path) {
			changes = append(changes, f)
		}
	}
	return changes, nil
}

func parseDiff(output []byte) ([]ChangedFile, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	var changes []ChangedFile
	var currentFile *ChangedFile

	// Regex for chunk header: @@ -oldStart,oldLen +newStart,newLen @@
	// We only care about newStart and newLen (the + part)
	chunkHeader := regexp.MustCompile(`^@@ \-\d+(?:,\d+)? \+(\d+)(?:,(\d+))? @@`)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "diff --git") {
			// Start of a new file
			parts := strings.Fields(line)
			if len(parts) >= 4 {
				// a/path/to/file b/path/to/file
				// We want the b/ path (new version)
				bPath := parts[3]
				path := strings.TrimPrefix(bPath, "b/")

				// Save previous file if exists
				if currentFile != nil {
					changes = append(changes, *currentFile)
				}
				currentFile = &ChangedFile{Path: path, ChangedLines: []int{}}
			}
			continue
		}

		if currentFile == nil {
			continue
		}

		if strings.HasPrefix(line, "@@") {
			matches := chunkHeader.FindStringSubmatch(line)
			if len(matches) > 1 {
				startLine, _ := strconv.Atoi(matches[1])
				count := 1 // Default length is 1 if omitted
				if len(matches) > 2 && matches[2] != "" {
					count, _ = strconv.Atoi(matches[2])
				}

				// count 0 means pure deletion; no lines exist at this
				// position in the new file, so nothing to record.
				for i := 0; i < count; i++ {
					currentFile.ChangedLines = append(currentFile.ChangedLines, startLine+i)
				}
			}
		}
	}

	if currentFile != nil {
		changes = append(changes, *currentFile)
	}

	return changes, nil
}
