package rates

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

// ECB eurofxref.csv: a "Date, USD, JPY, ..." header and one row of values.
const snapshotDateLayout = "2 January 2006"

//go:embed data/eurofxref.csv
var embeddedSnapshot []byte

// Embedded returns the snapshot compiled into the binary.
func Embedded() (*Table, error) {
	return Parse(bytes.NewReader(embeddedSnapshot))
}

// Load reads the snapshot at path, or the embedded one when path is empty or absent.
func Load(path string) (*Table, error) {
	if path == "" {
		return Embedded()
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		logger.Warn("rate snapshot not found, using embedded rates", zap.String("path", path))
		return Embedded()
	}
	if err != nil {
		return nil, errors.Wrap(err, "open rate snapshot")
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse rate snapshot %s", path)
	}
	return t, nil
}

func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	if len(lines) < 2 {
		return nil, errors.New("snapshot needs a header and a data row")
	}
	header, values := lines[0], lines[1]
	if len(header) == 0 || len(values) == 0 {
		return nil, errors.New("empty snapshot")
	}

	date, err := time.Parse(snapshotDateLayout, strings.TrimSpace(values[0]))
	if err != nil {
		return nil, errors.Wrap(err, "parse snapshot date")
	}

	rates := make(map[string]float64, len(header))
	for i := 1; i < len(header) && i < len(values); i++ {
		code := currency.Normalize(header[i])
		raw := strings.TrimSpace(values[i])
		if code == "" || raw == "" || raw == "N/A" {
			continue
		}
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "rate of %s", code)
		}
		if rate <= 0 {
			return nil, errors.Errorf("rate of %s must be positive", code)
		}
		rates[code] = rate
	}
	return NewTable(date, rates), nil
}

// Write emits t in the ECB layout. EUR is implied and left out.
func Write(w io.Writer, t *Table) error {
	codes := t.relativesOf(currency.EUR)

	header := make([]string, 0, len(codes)+1)
	values := make([]string, 0, len(codes)+1)
	header = append(header, "Date")
	values = append(values, t.Date().Format(snapshotDateLayout))
	for _, code := range codes {
		header = append(header, code)
		values = append(values, strconv.FormatFloat(t.rates[code], 'f', -1, 64))
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll([][]string{header, values}); err != nil {
		return errors.Wrap(err, "write csv")
	}
	return nil
}

// Save replaces the snapshot at path without ever leaving a half-written file.
func Save(path string, t *Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".rates-*.csv")
	if err != nil {
		return errors.Wrap(err, "create temp snapshot")
	}
	defer os.Remove(tmp.Name())

	if err = Write(tmp, t); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp snapshot")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "replace snapshot")
}
