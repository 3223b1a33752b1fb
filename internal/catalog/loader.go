// Package catalog reads the comma-separated food list into a models.Catalog.
//
// Each line is one record: name, sweet-or-savory, diet type, cuisine, one or
// more ingredients, and an image reference as the last field.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"recipe-suggester/internal/logger"
	"recipe-suggester/internal/models"
)

// MinFields is the smallest record: four attributes, one ingredient, one image ref
const MinFields = 6

var (
	ErrMalformedRecord = errors.New("malformed catalog record")
	ErrEmptyCatalog    = errors.New("catalog contains no foods")
)

// Stats describes what a load kept and what it dropped
type Stats struct {
	Lines      int
	Loaded     int
	Blank      int
	Malformed  int
	Duplicates int
}

type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loader{logger: log}
}

// ParseLine turns one record into a Food. Trailing empty fields are dropped
// before the field count is checked.
func ParseLine(line string) (models.Food, error) {
	parts := strings.Split(line, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) < MinFields {
		return models.Food{}, fmt.Errorf("%w: %d fields, need at least %d", ErrMalformedRecord, len(parts), MinFields)
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	last := len(parts) - 1
	return models.NewFood(parts[0], parts[1], parts[2], parts[3], parts[4:last], parts[last]), nil
}

// addLine parses one line and reports whether it should join the catalog
func (l *Loader) addLine(line string, lineNo int, seen map[string]int, stats *Stats) (models.Food, bool) {
	if strings.TrimSpace(line) == "" {
		stats.Blank++
		return models.Food{}, false
	}

	food, err := ParseLine(line)
	if err != nil {
		stats.Malformed++
		l.logger.Debug("Catalog", "skipping malformed record", map[string]interface{}{
			"line":   lineNo,
			"reason": err.Error(),
		})
		return models.Food{}, false
	}

	if first, dup := seen[food.Key()]; dup {
		stats.Duplicates++
		l.logger.Warning("Catalog", "duplicate food name dropped", map[string]interface{}{
			"name":       food.Name,
			"line":       lineNo,
			"first_line": first,
		})
		return models.Food{}, false
	}

	seen[food.Key()] = lineNo
	return food, true
}

// Load reads every record from r, skipping blank, malformed and duplicate lines.
// Lines have no length limit.
func (l *Loader) Load(r io.Reader) (models.Catalog, Stats, error) {
	var (
		stats   Stats
		catalog models.Catalog
		seen    = make(map[string]int)
	)

	reader := bufio.NewReader(r)

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, stats, fmt.Errorf("read catalog: %w", readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}

		stats.Lines++
		line = strings.TrimRight(line, "\r\n")

		if food, ok := l.addLine(line, stats.Lines, seen, &stats); ok {
			catalog = append(catalog, food)
		}

		if readErr == io.EOF {
			break
		}
	}

	stats.Loaded = len(catalog)
	if stats.Loaded == 0 {
		return nil, stats, ErrEmptyCatalog
	}

	l.logger.Info("Catalog", "catalog loaded", map[string]interface{}{
		"foods":      stats.Loaded,
		"lines":      stats.Lines,
		"malformed":  stats.Malformed,
		"duplicates": stats.Duplicates,
	})

	return catalog, stats, nil
}

func (l *Loader) LoadFile(path string) (models.Catalog, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	catalog, stats, err := l.Load(f)
	if err != nil {
		return nil, stats, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, stats, nil
}
