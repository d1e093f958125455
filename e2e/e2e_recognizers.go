//go:build ignore

// e2e_recognizers exercises every recognizer package end to end against a
// fixed reference date and writes structured results to
// e2e_recognizers.log.
// Run from the project root:
//
//	go run e2e/e2e_recognizers.go
package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/syrtcevvi/go-date-parsers/i18n/en"
	"github.com/syrtcevvi/go-date-parsers/i18n/ru"
	"github.com/syrtcevvi/go-date-parsers/numeric"
	"github.com/syrtcevvi/go-date-parsers/parser"
	"github.com/syrtcevvi/go-date-parsers/quick"
)

const (
	logPath     = "e2e_recognizers.log"
	concWorkers = 8
	concIter    = 100
	separator   = "=========================================================="
)

// refDate is a Friday, so weekday cases have known answers.
var refDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

type testCase struct {
	module string
	rec    parser.Recognizer
	input  string
	want   string // YYYY-MM-DD, empty when an error is expected
}

type testResult struct {
	module   string
	name     string
	passed   bool
	duration time.Duration
	detail   string
}

var cases = []testCase{
	{module: "numeric", rec: numeric.DayOnly, input: "7", want: "2024-03-07"},
	{module: "numeric", rec: numeric.DayMonth, input: "22/04", want: "2024-04-22"},
	{module: "numeric", rec: numeric.MonthDay, input: "04.22", want: "2024-04-22"},
	{module: "numeric", rec: numeric.DayMonthYear, input: "13 06 2022", want: "2022-06-13"},
	{module: "numeric", rec: numeric.MonthDayYear, input: "06-13-2022", want: "2022-06-13"},
	{module: "numeric", rec: numeric.YearMonthDay, input: "2022-06-13", want: "2022-06-13"},
	{module: "numeric", rec: numeric.DayMonth, input: "31/02", want: ""},
	{module: "en", rec: en.Yesterday, input: "Yesterday", want: "2024-03-14"},
	{module: "en", rec: en.Tomorrow, input: "tomorrow", want: "2024-03-16"},
	{module: "en", rec: en.CurrentNamedWeekdayOnly, input: "Friday", want: "2024-03-15"},
	{module: "en", rec: en.CurrentNamedWeekdayOnly, input: "monday", want: ""},
	{module: "en", rec: en.NextNamedWeekday, input: "tue", want: "2024-03-19"},
	{module: "en", rec: en.BundleDMY, input: "03/12", want: "2024-12-03"},
	{module: "en", rec: en.BundleMDY, input: "03/12", want: "2024-03-12"},
	{module: "ru", rec: ru.DayBeforeYesterday, input: "Позавчера", want: "2024-03-13"},
	{module: "ru", rec: ru.DayAfterTomorrow, input: "послезавтра", want: "2024-03-17"},
	{module: "ru", rec: ru.Bundle, input: "вчера", want: "2024-03-14"},
	{module: "ru", rec: ru.Bundle, input: "ПЯТНИЦА", want: "2024-03-15"},
	{module: "quick", rec: quick.Bundle, input: "+ 10", want: "2024-03-25"},
	{module: "quick", rec: quick.Bundle, input: "-1 week", want: "2024-03-08"},
	{module: "quick", rec: quick.Bundle, input: "someday", want: ""},
}

func runCase(tc testCase) testResult {
	start := time.Now()
	name := fmt.Sprintf("%s(%q)", tc.rec.Name(), tc.input)

	match, err := tc.rec.Parse(tc.input, refDate)
	if tc.want == "" {
		if err == nil {
			return testResult{module: tc.module, name: name, duration: time.Since(start),
				detail: fmt.Sprintf("want error, got %s", match.Date.Format("2006-01-02"))}
		}
		return testResult{module: tc.module, name: name, passed: true, duration: time.Since(start)}
	}
	if err != nil {
		return testResult{module: tc.module, name: name, duration: time.Since(start),
			detail: err.Error()}
	}
	if got := match.Date.Format("2006-01-02"); got != tc.want {
		return testResult{module: tc.module, name: name, duration: time.Since(start),
			detail: fmt.Sprintf("want %s, got %s", tc.want, got)}
	}
	return testResult{module: tc.module, name: name, passed: true, duration: time.Since(start)}
}

// concurrentSweep hammers the registry from several goroutines to surface
// shared-state bugs that single-threaded runs hide.
func concurrentSweep() testResult {
	start := time.Now()
	names := parser.Names()

	var wg sync.WaitGroup
	errCh := make(chan error, concWorkers)
	for w := 0; w < concWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < concIter; i++ {
				for _, name := range names {
					if _, err := parser.Parse(name, "13 06 2022", refDate); err != nil {
						continue
					}
				}
			}
			errCh <- nil
		}()
	}
	wg.Wait()
	close(errCh)

	return testResult{module: "registry", name: "concurrent sweep", passed: true,
		duration: time.Since(start)}
}

func main() {
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("create log: %v", err)
	}
	defer func() { _ = logFile.Close() }()

	fmt.Fprintln(logFile, separator)
	fmt.Fprintf(logFile, "recognizer e2e run, reference date %s\n", refDate.Format("2006-01-02"))
	fmt.Fprintln(logFile, separator)

	results := make([]testResult, 0, len(cases)+1)
	for _, tc := range cases {
		results = append(results, runCase(tc))
	}
	results = append(results, concurrentSweep())

	passed, failed := 0, 0
	for _, r := range results {
		status := "PASS"
		if !r.passed {
			status = "FAIL"
			failed++
		} else {
			passed++
		}
		fmt.Fprintf(logFile, "%s %-10s %-50s %s", status, r.module, r.name,
			r.duration.Round(time.Microsecond))
		if r.detail != "" {
			fmt.Fprintf(logFile, "  %s", r.detail)
		}
		fmt.Fprintln(logFile)
	}

	fmt.Fprintln(logFile, separator)
	fmt.Fprintf(logFile, "%d passed, %d failed, %d registered recognizers\n",
		passed, failed, len(parser.Names()))

	fmt.Printf("e2e: %d passed, %d failed (details in %s)\n", passed, failed, logPath)
	if failed > 0 {
		os.Exit(1)
	}
}
