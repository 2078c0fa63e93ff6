// Command campusnews-export converts a CSV file written by campusnews
// into a formatted Excel workbook.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"

	"github.com/mzerrouki/campusnews/sink"
)

func main() {
	inPath := flag.String("in", "activities.csv", "CSV file to convert")
	outPath := flag.String("out", "activities.xlsx", "Excel file to write")
	separator := flag.String("separator", ";", "CSV field separator")
	flag.Parse()

	file, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *inPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = sink.SeparatorOrDefault(*separator)
	rows, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *inPath, err)
	}
	if len(rows) == 0 {
		log.Fatalf("No rows in %s", *inPath)
	}

	excelSink, err := sink.NewExcelSink(*outPath)
	if err != nil {
		log.Fatalf("Failed to create workbook: %v", err)
	}

	// Skip the CSV header row; the workbook writes its own.
	for _, row := range rows[1:] {
		if err := excelSink.WriteRow(row); err != nil {
			log.Fatalf("Failed to write row: %v", err)
		}
	}

	if err := excelSink.Close(); err != nil {
		log.Fatalf("Failed to save workbook: %v", err)
	}

	log.Printf("Wrote %d record(s) to %s", len(rows)-1, *outPath)
}
