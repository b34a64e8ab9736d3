package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Files names the four record files inside a data directory.
type Files struct {
	Stations  string
	Routes    string
	Closures  string
	Accidents string
}

// DefaultFiles returns the file names the network has always been stored under.
func DefaultFiles() Files {
	return Files{
		Stations:  "estaciones.txt",
		Routes:    "rutas.txt",
		Closures:  "cierres.txt",
		Accidents: "accidentes.txt",
	}
}

// LoadDir reads the record files in dir into a Network. The stations and
// routes files are required; missing closures or accidents files are not
// errors. The returned Stats covers all four files.
func LoadDir(dir string, files Files, opts ...Option) (*Network, Stats, error) {
	var (
		n     Network
		total Stats
	)

	read := func(name string, required bool, fn func(f *os.File) (Stats, error)) error {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				newOptions(opts).log.Info("optional record file missing", "path", path)
				return nil
			}
			return fmt.Errorf("loader: opening %s: %w", path, err)
		}
		defer f.Close()

		st, err := fn(f)
		total.Add(st)
		return err
	}

	steps := []struct {
		name     string
		required bool
		fn       func(f *os.File) (Stats, error)
	}{
		{files.Stations, true, func(f *os.File) (st Stats, err error) {
			n.Stations, st, err = ReadStations(f, opts...)
			return
		}},
		{files.Routes, true, func(f *os.File) (st Stats, err error) {
			n.Routes, st, err = ReadRoutes(f, opts...)
			return
		}},
		{files.Closures, false, func(f *os.File) (st Stats, err error) {
			n.Closures, st, err = ReadClosures(f, opts...)
			return
		}},
		{files.Accidents, false, func(f *os.File) (st Stats, err error) {
			n.Accidents, st, err = ReadAccidents(f, opts...)
			return
		}},
	}
	for _, s := range steps {
		if err := read(s.name, s.required, s.fn); err != nil {
			return nil, total, err
		}
	}

	return &n, total, nil
}

// SaveDir writes n into dir as the four record files, creating dir as needed.
// Each file is written to a temporary name and renamed into place.
func SaveDir(dir string, files Files, n *Network, opts ...Option) error {
	if n == nil {
		return ErrNilNetwork
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("loader: creating %s: %w", dir, err)
	}

	write := func(name string, fn func(f *os.File) error) error {
		path := filepath.Join(dir, name)
		tmp := path + ".tmp"
		f, err := os.Create(tmp)
		if err != nil {
			return fmt.Errorf("loader: creating %s: %w", tmp, err)
		}
		if err := fn(f); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("loader: writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("loader: closing %s: %w", tmp, err)
		}
		if err := os.Rename(tmp, path); err != nil {
			return fmt.Errorf("loader: replacing %s: %w", path, err)
		}
		return nil
	}

	if err := write(files.Stations, func(f *os.File) error { return WriteStations(f, n.Stations, opts...) }); err != nil {
		return err
	}
	if err := write(files.Routes, func(f *os.File) error { return WriteRoutes(f, n.Routes, opts...) }); err != nil {
		return err
	}
	if err := write(files.Closures, func(f *os.File) error { return WriteClosures(f, n.Closures, opts...) }); err != nil {
		return err
	}
	return write(files.Accidents, func(f *os.File) error { return WriteAccidents(f, n.Accidents, opts...) })
}
