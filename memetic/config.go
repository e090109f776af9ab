package memetic

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ReadOptions decodes a YAML solver profile on top of DefaultOptions, so a
// profile only needs the fields it changes. Unknown fields are rejected.
//
//	population_size: 30
//	alpha: 20000
//	time_limit: 2m
func ReadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, errors.Wrap(err, "decoding solver options")
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads a YAML solver profile from path.
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, errors.Wrap(err, "opening solver options")
	}
	defer f.Close()

	return ReadOptions(f)
}
