package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Summarizes the day's log files: request volume per status class plus the
// most frequent error lines. Run from the repository root.

type LogStats struct {
	TotalRequests int
	StatusClasses map[string]int
	SlowRequests  int
	ErrorPatterns map[string]int
}

var requestLine = regexp.MustCompile(`Request: (\S+) (\S+) from \S+ - Status: (\d+) - Duration: (\S+)`)

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		StatusClasses: make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}

	analyzeInfoLog(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)
	analyzeErrorLog(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)

	fmt.Printf("Log summary for %s\n", today)
	fmt.Printf("  Total requests: %d\n", stats.TotalRequests)
	for _, class := range []string{"2xx", "3xx", "4xx", "5xx"} {
		if count := stats.StatusClasses[class]; count > 0 {
			fmt.Printf("  %s responses: %d\n", class, count)
		}
	}
	fmt.Printf("  Slow requests (>1s): %d\n", stats.SlowRequests)

	if len(stats.ErrorPatterns) > 0 {
		fmt.Println("  Top errors:")
		type patternCount struct {
			Pattern string
			Count   int
		}
		var patterns []patternCount
		for pattern, count := range stats.ErrorPatterns {
			patterns = append(patterns, patternCount{pattern, count})
		}
		sort.Slice(patterns, func(i, j int) bool { return patterns[i].Count > patterns[j].Count })
		for i, p := range patterns {
			if i >= 10 {
				break
			}
			fmt.Printf("    %4d  %s\n", p.Count, p.Pattern)
		}
	}
}

func analyzeInfoLog(path string, stats *LogStats) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		match := requestLine.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		stats.TotalRequests++
		if status, err := strconv.Atoi(match[3]); err == nil {
			stats.StatusClasses[fmt.Sprintf("%dxx", status/100)]++
		}
		if duration, err := time.ParseDuration(match[4]); err == nil && duration > time.Second {
			stats.SlowRequests++
		}
	}
}

func analyzeErrorLog(path string, stats *LogStats) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	// Collapse formatted values so identical error sites group together.
	numbers := regexp.MustCompile(`\d+`)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 120 {
			line = line[:120]
		}
		stats.ErrorPatterns[numbers.ReplaceAllString(line, "N")]++
	}
}
