// File: records.go
// Role: Line-oriented record codec for the four data files. Fields are
// comma-separated and trimmed; blank lines and lines starting with '#' or "//"
// are ignored; malformed lines are skipped with a warning and counted.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Closure keywords. The Spanish forms are what the data files have always used.
const (
	keywordStation   = "ESTACION"
	keywordRoute     = "RUTA"
	keywordStationEN = "STATION"
	keywordRouteEN   = "ROUTE"
)

// scanRecords feeds every significant line of r, split into trimmed fields,
// to parse. parse returns false for a malformed line.
func scanRecords(r io.Reader, kind string, o options, parse func(fields []string) bool) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if !parse(fields) {
			st.Skipped++
			o.log.Warn("skipping malformed record", "kind", kind, "line", st.Lines, "text", line)
			continue
		}
		st.Accepted++
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("loader: reading %s: %w", kind, err)
	}

	return st, nil
}

func parseInts(fields ...string) ([]int, bool) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseFloat(f string) (float64, bool) {
	v, err := strconv.ParseFloat(f, 64)
	return v, err == nil
}

// ReadStations parses "id, name, x, y" lines.
func ReadStations(r io.Reader, opts ...Option) ([]Station, Stats, error) {
	var out []Station
	st, err := scanRecords(r, "stations", newOptions(opts), func(f []string) bool {
		if len(f) != 4 {
			return false
		}
		ids, ok := parseInts(f[0])
		if !ok {
			return false
		}
		x, okX := parseFloat(f[2])
		y, okY := parseFloat(f[3])
		if !okX || !okY {
			return false
		}
		out = append(out, Station{ID: ids[0], Name: f[1], X: x, Y: y})
		return true
	})

	return out, st, err
}

// ReadRoutes parses "origin, destination, weight" lines.
func ReadRoutes(r io.Reader, opts ...Option) ([]Route, Stats, error) {
	var out []Route
	st, err := scanRecords(r, "routes", newOptions(opts), func(f []string) bool {
		if len(f) != 3 {
			return false
		}
		ids, ok := parseInts(f[0], f[1])
		if !ok {
			return false
		}
		w, ok := parseFloat(f[2])
		if !ok {
			return false
		}
		out = append(out, Route{From: ids[0], To: ids[1], Weight: w})
		return true
	})

	return out, st, err
}

// ReadClosures parses "ESTACION, id" and "RUTA, origin, destination" lines
// (keywords are case-insensitive, English STATION/ROUTE accepted too) and the
// bare legacy forms "id" and "origin, destination".
func ReadClosures(r io.Reader, opts ...Option) ([]Closure, Stats, error) {
	var out []Closure
	st, err := scanRecords(r, "closures", newOptions(opts), func(f []string) bool {
		switch strings.ToUpper(f[0]) {
		case keywordStation, keywordStationEN:
			f = f[1:]
			if len(f) != 1 {
				return false
			}
		case keywordRoute, keywordRouteEN:
			f = f[1:]
			if len(f) != 2 {
				return false
			}
		}
		ids, ok := parseInts(f...)
		if !ok {
			return false
		}
		switch len(ids) {
		case 1:
			out = append(out, Closure{Kind: ClosureStation, Station: ids[0]})
		case 2:
			out = append(out, Closure{Kind: ClosureRoute, From: ids[0], To: ids[1]})
		default:
			return false
		}
		return true
	})

	return out, st, err
}

// ReadAccidents parses "origin, destination, incrementPercent" lines.
func ReadAccidents(r io.Reader, opts ...Option) ([]Accident, Stats, error) {
	var out []Accident
	st, err := scanRecords(r, "accidents", newOptions(opts), func(f []string) bool {
		if len(f) != 3 {
			return false
		}
		ids, ok := parseInts(f[0], f[1])
		if !ok {
			return false
		}
		p, ok := parseFloat(f[2])
		if !ok {
			return false
		}
		out = append(out, Accident{From: ids[0], To: ids[1], Percent: p})
		return true
	})

	return out, st, err
}

// writeHeader emits the comment block every data file starts with.
func writeHeader(bw *bufio.Writer, o options, title, format string) {
	fmt.Fprintf(bw, "# %s - UrbanPath\n", title)
	fmt.Fprintf(bw, "# Format: %s\n", format)
	fmt.Fprintf(bw, "# Generated: %s\n\n", o.now().Format("2006-01-02 15:04:05"))
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WriteStations writes stations in the order given.
func WriteStations(w io.Writer, stations []Station, opts ...Option) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, newOptions(opts), "Stations", "id, name, x, y")
	for _, s := range stations {
		fmt.Fprintf(bw, "%d, %s, %s, %s\n", s.ID, s.Name, formatFloat(s.X), formatFloat(s.Y))
	}
	return bw.Flush()
}

// WriteRoutes writes routes in the order given. Capture already lists each
// undirected pair once.
func WriteRoutes(w io.Writer, routes []Route, opts ...Option) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, newOptions(opts), "Routes", "origin, destination, weight")
	for _, r := range routes {
		fmt.Fprintf(bw, "%d, %d, %s\n", r.From, r.To, formatFloat(r.Weight))
	}
	return bw.Flush()
}

// WriteClosures writes keyword-prefixed closure lines.
func WriteClosures(w io.Writer, closures []Closure, opts ...Option) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, newOptions(opts), "Closures", "ESTACION, id | RUTA, origin, destination")
	for _, c := range closures {
		switch c.Kind {
		case ClosureStation:
			fmt.Fprintf(bw, "%s, %d\n", keywordStation, c.Station)
		case ClosureRoute:
			fmt.Fprintf(bw, "%s, %d, %d\n", keywordRoute, c.From, c.To)
		}
	}
	return bw.Flush()
}

// WriteAccidents writes accident lines.
func WriteAccidents(w io.Writer, accidents []Accident, opts ...Option) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, newOptions(opts), "Accidents", "origin, destination, incrementPercent")
	for _, a := range accidents {
		fmt.Fprintf(bw, "%d, %d, %s\n", a.From, a.To, formatFloat(a.Percent))
	}
	return bw.Flush()
}
