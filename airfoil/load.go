package airfoil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultMaxSamples bounds the declared count of a single stream.
const DefaultMaxSamples = 1 << 26

// Loader reads the eight vector files of a wing.
type Loader struct {
	Dir        string  // directory holding the files; empty means the working directory
	Scalar     float32 // every sample is multiplied by this
	MaxSamples int     // largest accepted count; zero means DefaultMaxSamples

	// Warn, if set, receives non-fatal problems as they're found.
	Warn func(error)
}

// Load reads every stream in Keys order. The first fatal problem stops
// loading and is returned as an *Error.
func (l *Loader) Load() (*Set, error) {
	s := &Set{}
	for _, k := range Keys() {
		v, err := l.loadVector(k.Name())
		if err != nil {
			return nil, err
		}
		*s.Vector(k) = *v
	}
	return s, nil
}

func (l *Loader) loadVector(name string) (*Vector, error) {
	f, err := os.Open(filepath.Join(l.Dir, name))
	if err != nil {
		return nil, &Error{Kind: FileOpen, Name: name, Err: err}
	}
	defer f.Close()
	return l.readVector(name, f)
}

func (l *Loader) readVector(name string, r io.Reader) (*Vector, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, &Error{Kind: HeaderParse, Name: name, Err: sc.Err()}
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n <= 0 {
		return nil, &Error{Kind: HeaderParse, Name: name, Err: err}
	}
	max := l.MaxSamples
	if max <= 0 {
		max = DefaultMaxSamples
	}
	if n > max {
		return nil, &Error{Kind: MemoryExhaustion, Name: name}
	}

	v := &Vector{Name: name, Count: n, Samples: make([]float32, 0, n)}
	for len(v.Samples) < n {
		if !sc.Scan() {
			l.warn(&Error{Kind: EarlyEOF, Name: name, Err: sc.Err()})
			break
		}
		f, err := strconv.ParseFloat(sc.Text(), 32)
		if err != nil {
			// A token that isn't a number ends the stream.
			l.warn(&Error{Kind: EarlyEOF, Name: name, Err: err})
			break
		}
		v.Samples = append(v.Samples, float32(f)*l.Scalar)
	}
	return v, nil
}

func (l *Loader) warn(err error) {
	if l.Warn != nil {
		l.Warn(err)
	}
}
