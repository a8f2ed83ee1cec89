package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
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

// Entry is one structured log line.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []string // "key=value", sorted by key
}

// Parse decodes a JSON log line. Lines that are not JSON objects come back
// as a message-only entry.
func Parse(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Message: line}
	}
	entry := Entry{
		Time:    takeString(raw, "ts"),
		Level:   strings.ToUpper(takeString(raw, "level")),
		Message: takeString(raw, "msg"),
	}
	delete(raw, "caller")
	delete(raw, "stacktrace")

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		entry.Fields = append(entry.Fields, fmt.Sprintf("%s=%v", k, raw[k]))
	}
	return entry
}

// Format renders an entry on a single line.
func (e Entry) Format() string {
	parts := make([]string, 0, 3+len(e.Fields))
	for _, p := range []string{e.Time, e.Level, e.Message} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, e.Fields...)
	return strings.Join(parts, " ")
}

func takeString(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	delete(raw, key)
	s, _ := v.(string)
	return s
}
