package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

func ReadCSVFile[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadCSVFile: failed to open %s: %w", path, err)
	}

	defer file.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("ReadCSVFile: failed to unmarshal %s: %w", path, err)
	}

	return rows, nil
}

func WriteCSV[T any](rows []T, w io.Writer) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

func WriteCSVFile[T any](rows []T, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteCSVFile: error creating CSV file: %w", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("WriteCSVFile: error marshalling file: %w", err)
	}

	log.Infof("Exported %d rows to %s", len(rows), path)

	return nil
}
