package data

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rustyeddy/stockcharts/market"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

var (
	ErrEmptyFile     = errors.New("empty file")
	ErrMissingColumn = errors.New("missing column")
)

// Columns holds the column names a price file must carry.
var Columns = []string{"date", "open", "high", "low", "close", "volume"}

// Load reads a daily price file. Files ending in .gz, .xz or .lzma are
// decompressed on the fly.
func Load(path string) ([]market.PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := decompress(f, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	recs, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return recs, nil
}

func decompress(r io.Reader, path string) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return gzip.NewReader(r)
	case ".xz":
		return xz.NewReader(r)
	case ".lzma":
		return lzma.NewReader(r)
	}
	return r, nil
}

// Read parses CSV with a header row. Columns are matched by name, case
// insensitive. Any other named column, such as "Adj Close", is carried
// as an extra numeric indicator in header order.
func Read(r io.Reader) ([]market.PriceRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []market.PriceRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

type column struct {
	name string
	pos  int
}

type layout struct {
	idx    map[string]int
	extras []column
}

func columnIndex(header []string) (layout, error) {
	l := layout{idx: make(map[string]int, len(header))}
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		key := strings.ToLower(name)
		if key == "" {
			continue
		}
		if _, ok := l.idx[key]; ok {
			continue
		}
		l.idx[key] = i
		if !isStandard(key) {
			l.extras = append(l.extras, column{name: name, pos: i})
		}
	}
	for _, c := range Columns {
		if _, ok := l.idx[c]; !ok {
			return layout{}, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return l, nil
}

func isStandard(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

func parseRow(row []string, l layout) (market.PriceRecord, error) {
	field := func(pos int, name string) (string, error) {
		if pos >= len(row) {
			return "", fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		return strings.TrimSpace(row[pos]), nil
	}

	date, err := field(l.idx["date"], "date")
	if err != nil {
		return market.PriceRecord{}, err
	}
	rec := market.PriceRecord{Date: date}

	prices := []struct {
		name string
		dst  *float64
	}{
		{"open", &rec.Open},
		{"high", &rec.High},
		{"low", &rec.Low},
		{"close", &rec.Close},
	}
	for _, p := range prices {
		s, err := field(l.idx[p.name], p.name)
		if err != nil {
			return market.PriceRecord{}, err
		}
		if *p.dst, err = parsePrice(s); err != nil {
			return market.PriceRecord{}, fmt.Errorf("column %s: bad price %q", p.name, s)
		}
	}

	s, err := field(l.idx["volume"], "volume")
	if err != nil {
		return market.PriceRecord{}, err
	}
	if rec.Volume, err = parseVolume(s); err != nil {
		return market.PriceRecord{}, fmt.Errorf("column volume: %w", err)
	}

	for _, c := range l.extras {
		s, err := field(c.pos, c.name)
		if err != nil {
			return market.PriceRecord{}, err
		}
		v, err := parsePrice(s)
		if err != nil {
			return market.PriceRecord{}, fmt.Errorf("column %s: bad value %q", c.name, s)
		}
		rec.Extra = append(rec.Extra, market.Indicator{Name: c.name, Value: v})
	}
	return rec, nil
}

// decimal matches plain base-10 numbers with an optional exponent.
var decimal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

func parsePrice(s string) (float64, error) {
	if !decimal.MatchString(s) {
		return 0, fmt.Errorf("not a decimal number: %q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return f, nil
}

// parseVolume accepts integers and floats without a fractional part
// ("1234.0"), which is what spreadsheet exports tend to produce.
func parseVolume(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := parsePrice(s)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("bad volume %q", s)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("volume %q out of range", s)
	}
	return int64(f), nil
}
