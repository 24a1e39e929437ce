package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// AnnotationRecord is one parsed annotation-file row: a named span over
// [Start, End] on a given display layer, with a hex RGBA color.
type AnnotationRecord struct {
	Name  string
	Start int
	End   int
	Layer string
	Color string
}

// ParseAnnotationFile implements spec.md §4.3's annotation-file reader:
// TAB-separated `name, start, end, layer, color` rows, `#`-prefixed
// comment lines skipped.
func ParseAnnotationFile(r io.Reader) ([]AnnotationRecord, ImportStats, error) {
	var stats ImportStats
	var records []AnnotationRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		stats.LinesRead++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			stats.recordBad(lineNo, line, "annotation line must have 5 TAB-separated fields")
			continue
		}
		start, errStart := strconv.Atoi(strings.TrimSpace(fields[1]))
		end, errEnd := strconv.Atoi(strings.TrimSpace(fields[2]))
		if errStart != nil || errEnd != nil {
			stats.recordBad(lineNo, line, "start/end are not integers")
			continue
		}
		records = append(records, AnnotationRecord{
			Name:  strings.TrimSpace(fields[0]),
			Start: start,
			End:   end,
			Layer: strings.TrimSpace(fields[3]),
			Color: strings.TrimSpace(fields[4]),
		})
		stats.NodesCreated++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	return records, stats, nil
}

// WriteAnnotationFile writes records as TAB-separated annotation-file
// rows in the order given.
func WriteAnnotationFile(records []AnnotationRecord, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		row := []string{rec.Name, strconv.Itoa(rec.Start), strconv.Itoa(rec.End), rec.Layer, rec.Color}
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
