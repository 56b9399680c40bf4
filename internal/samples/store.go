// Package samples holds named observation samples in memory and moves
// them to and from disk. Slices are copied on the way in and on the way
// out, so callers and the statistics layer never share backing arrays.
package samples

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store provides thread-safe storage for named samples.
type Store struct {
	mu      sync.RWMutex
	samples map[string][]float64
}

// NewStore creates a new empty Store.
func NewStore() *Store {
	return &Store{
		samples: make(map[string][]float64),
	}
}

// Put replaces the sample stored under name with a copy of values.
func (s *Store) Put(name string, values []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]float64, len(values))
	copy(cp, values)
	s.samples[name] = cp
}

// Get returns a copy of the sample stored under name.
func (s *Store) Get(name string) ([]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, ok := s.samples[name]
	if !ok {
		return nil, false
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	return cp, true
}

// Count returns the number of observations stored under name.
func (s *Store) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.samples[name])
}

// Names returns the stored sample names in lexical order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.samples))
	for name := range s.samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a sample file from dir and stores it under name.
func (s *Store) Load(dir, name string) error {
	path := filepath.Join(dir, fmt.Sprintf("%s.sample", name))
	values, err := ReadFile(path)
	if err != nil {
		return err
	}
	s.Put(name, values)
	log.Info().Str("sample", name).Int("count", len(values)).Msg("Loaded sample from file")
	return nil
}

// Save persists the sample stored under name to a file in dir.
func (s *Store) Save(dir, name string) error {
	values, ok := s.Get(name)
	if !ok {
		return fmt.Errorf("no sample named %q", name)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.sample", name))
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp sample file: %w", err)
	}

	writer := bufio.NewWriter(file)
	for _, v := range values {
		fmt.Fprintln(writer, strconv.FormatFloat(v, 'g', -1, 64))
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write sample file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close sample file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to finalize sample file: %w", err)
	}

	log.Debug().Str("sample", name).Int("count", len(values)).Msg("Saved sample to file")
	return nil
}

// ReadFile parses a sample file: one observation per line, with blank
// lines and '#' comments skipped. Lines that do not parse as a float
// are logged and skipped rather than failing the whole file.
func ReadFile(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample file: %w", err)
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			log.Warn().Str("path", path).Int("line", lineNo).Msg("Skipping unparsable observation")
			continue
		}
		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading sample file: %w", err)
	}

	return values, nil
}
