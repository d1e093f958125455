// Command smoketest runs a corpus of free-form date phrases (one per line,
// in .txt files under a directory) through every registered recognizer and
// reports per-recognizer hit counts plus the lines nothing recognized.
// Useful for eyeballing coverage changes after touching a lexicon or a
// bundle order.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/syrtcevvi/go-date-parsers/parser"

	_ "github.com/syrtcevvi/go-date-parsers/i18n/en"
	_ "github.com/syrtcevvi/go-date-parsers/i18n/ru"
	_ "github.com/syrtcevvi/go-date-parsers/numeric"
	_ "github.com/syrtcevvi/go-date-parsers/quick"
)

const (
	maxWorkers   = 4
	expectedArgs = 2
	refLayout    = "2006-01-02"
	maxMissShown = 20
)

type Stats struct {
	mu         sync.Mutex
	filesRead  int
	lines      int
	recognized int
	hits       map[string]int
	misses     []string
}

type fileState struct {
	path       string
	lines      int
	recognized int
	hits       map[string]int
	misses     []string
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	// Fixed reference date keeps runs comparable day to day.
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if env := os.Getenv("SMOKETEST_REF"); env != "" {
		parsed, err := time.Parse(refLayout, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad SMOKETEST_REF: %v\n", err)
			os.Exit(1)
		}
		ref = parsed
	}

	dirPath := os.Args[1]
	stats := &Stats{hits: make(map[string]int)}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files, reference date %s\n",
		len(filePaths), ref.Format(refLayout))
	start := time.Now()

	names := parser.Names()
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, names, ref, stats)
		}(path)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats, names)
}

func processFile(path string, names []string, ref time.Time, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	state := &fileState{path: path, hits: make(map[string]int)}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		state.lines++

		matched := false
		for _, name := range names {
			if _, err := parser.Parse(name, line, ref); err == nil {
				state.hits[name]++
				matched = true
			}
		}
		if matched {
			state.recognized++
		} else {
			state.misses = append(state.misses, line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s (%d lines, %d recognized)\n",
		filepath.Base(path), state.lines, state.recognized)

	mergeFileState(state, stats)
}

func mergeFileState(state *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesRead++
	stats.lines += state.lines
	stats.recognized += state.recognized
	for name, n := range state.hits {
		stats.hits[name] += n
	}
	stats.misses = append(stats.misses, state.misses...)
}

func printStats(stats *Stats, names []string) {
	fmt.Printf("Files:      %d\n", stats.filesRead)
	fmt.Printf("Lines:      %d\n", stats.lines)
	fmt.Printf("Recognized: %d", stats.recognized)
	if stats.lines > 0 {
		fmt.Printf(" (%.1f%%)", 100*float64(stats.recognized)/float64(stats.lines))
	}
	fmt.Println()

	fmt.Println("\nHits per recognizer:")
	for _, name := range names {
		fmt.Printf("  %-28s %d\n", name, stats.hits[name])
	}

	if len(stats.misses) == 0 {
		return
	}
	sort.Strings(stats.misses)
	fmt.Printf("\nUnrecognized lines (%d):\n", len(stats.misses))
	for i, line := range stats.misses {
		if i == maxMissShown {
			fmt.Printf("  ... and %d more\n", len(stats.misses)-maxMissShown)
			break
		}
		fmt.Printf("  %q\n", line)
	}
}
