package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kjstillabower/air-quality-assistant/internal/models"
)

// maxFields splits district, state, api, status; the remainder of the
// line is the date field and is not comma-split.
const maxFields = 5

// Parse reads the tabular reading format: one record per line, five
// comma-separated fields (district, state, api, status, date). Empty
// lines and '#' comments are skipped. A non-numeric api field is
// clamped to 0; missing trailing fields stay at their zero values.
func Parse(r io.Reader) (*Store, error) {
	var readings []models.Reading
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		readings = append(readings, parseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return New(readings), fmt.Errorf("read readings: %w", err)
	}
	return New(readings), nil
}

func parseLine(line string) models.Reading {
	var r models.Reading
	fields := strings.SplitN(line, ",", maxFields)
	for i, f := range fields {
		switch i {
		case 0:
			r.District = f
		case 1:
			r.State = f
		case 2:
			n, err := strconv.Atoi(f)
			if err != nil {
				n = 0
			}
			r.API = n
		case 3:
			r.Status = models.Status(f)
		case 4:
			r.Date = f
		}
	}
	return r
}

// LoadFile reads the readings table from path. On open failure it
// returns an empty store together with the error so the caller can log
// a warning and keep running with degraded "no data" responses.
func LoadFile(path string, logger *zap.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(nil), fmt.Errorf("open readings file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return s, err
	}
	logger.Info("loaded air quality records", zap.String("file", path), zap.Int("records", s.Len()))
	return s, nil
}
