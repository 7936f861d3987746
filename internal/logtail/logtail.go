package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Severity classifies a log line for display.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Read returns at most maxLines non-blank lines from the end of the file at
// path. A non-positive maxLines returns every line. A missing file yields no
// lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			if line := scanner.Text(); strings.TrimSpace(line) != "" {
				all = append(all, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Classify reports whether a line records a failure.
func Classify(line string) Severity {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "failed") || strings.Contains(lower, "error") {
		return SeverityError
	}
	return SeverityInfo
}
