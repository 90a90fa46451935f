package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	huffman "github.com/Abdulrahman4733/Huffman-Encoding"
	"github.com/Abdulrahman4733/Huffman-Encoding/report"
)

var (
	flagName  = flag.String("name", "", "group member name (prompted for when empty)")
	flagText  = flag.String("text", baseText, "base text to encode")
	flagChart = flag.String("chart", "", "write an SVG codeword length chart to this file")
)

const (
	baseText = "AERIOUS"
	rule     = "------------------------------------------------------------"
)

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func assertNoError(err error) {
	if err != nil {
		quitF("%v\n", err)
	}
}

// firstTwoVowels returns the first two vowels of name, uppercased. It errors
// when name contains fewer than two of A, E, I, O, U in either case.
func firstTwoVowels(name string) (string, error) {
	vowels := make([]rune, 0, 2)
	for _, r := range name {
		switch unicode.ToUpper(r) {
		case 'A', 'E', 'I', 'O', 'U':
			vowels = append(vowels, unicode.ToUpper(r))
			if len(vowels) == 2 {
				return string(vowels), nil
			}
		}
	}
	return "", fmt.Errorf("name %q contains %d vowels, need at least 2", name, len(vowels))
}

const namePrompt = "Enter ONE group member's name (used to find first 2 vowels): "

func readName(r io.Reader, w io.Writer) string {
	fmt.Fprint(w, namePrompt)
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		assertNoError(sc.Err())
		quitF("no name given\n")
	}
	return strings.TrimSpace(sc.Text())
}

func main() {
	flag.Parse()

	fmt.Println("=== Huffman Encoding Program ===")
	fmt.Printf("Base text: %s\n", *flagText)

	name := *flagName
	if name == "" {
		name = readName(os.Stdin, os.Stdout)
	}
	vowels, err := firstTwoVowels(name)
	assertNoError(err)

	text := *flagText + vowels
	fmt.Printf("First two vowels from name: %s\n", vowels)
	fmt.Printf("Final text used for Huffman: %s\n\n", text)

	freqs := huffman.CountSymbols(text)
	root, err := huffman.BuildTree(freqs)
	assertNoError(err)
	codes := huffman.GenerateCodes(root)

	assertNoError(report.WriteTable(os.Stdout, freqs, codes))

	metrics, err := huffman.ComputeMetrics(freqs, codes)
	assertNoError(err)
	encoded, err := huffman.Encode(text, codes)
	assertNoError(err)

	fmt.Printf("\nCALCULATIONS\n%s\n", rule)
	fmt.Printf("%-30s = %d\n", "Total symbols (N)", freqs.Total())
	fmt.Printf("%-30s = %.6f\n", "Entropy H (bits/symbol)", metrics.Entropy)
	fmt.Printf("%-30s = %.6f\n", "Avg code length (bits/symbol)", metrics.AvgCodeLength)
	fmt.Printf("%-30s = %.2f%%\n", "Efficiency H/L", metrics.Efficiency)
	fmt.Printf("%-30s = %d\n", "Encoded length (bits)", encoded.Len())
	fmt.Printf("%-30s = %s\n", "Encoded output", encoded)
	fmt.Println(rule)

	base, err := huffman.Encode(*flagText, codes)
	assertNoError(err)
	fmt.Printf("\nVerification: %q with the same table = %s (%d bits)\n", *flagText, base, base.Len())

	if *flagChart != "" {
		f, err := os.Create(*flagChart)
		assertNoError(err)
		err = report.WriteLengthChart(f, freqs, codes)
		closeErr := f.Close()
		assertNoError(err)
		assertNoError(closeErr)
	}
}
