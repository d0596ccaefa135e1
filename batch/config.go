// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cogentcore.org/ciecam/cie"
	"cogentcore.org/ciecam/ciecam02"
	"cogentcore.org/ciecam/deltae"
	"cogentcore.org/ciecam/spectra"
	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config has the settings shared by all records of a batch.
// It is typically read from a TOML or YAML file with [OpenConfig]:
//
//	Workers = 4
//	Illuminant = "D50"
//	Formula = "CAM02UCS"
//	Variant = "SmallDifference"
//
//	[View]
//	AdaptingLuminance = 31.83
//	Surround = "Dim"
type Config struct {

	// Workers is the maximum number of records evaluated at once.
	// Zero or less uses GOMAXPROCS.
	Workers int `default:"0"`

	// Illuminant is the adopted illuminant. Spectral records are
	// integrated under its spectral power distribution, and its
	// white point is the white unless White is given.
	Illuminant cie.Illuminants `default:"D65"`

	// White is an explicit white point on the scale of the records,
	// used instead of the Illuminant white point when its Y is positive.
	White cie.XYZ

	// Observer is the standard observer for spectral records.
	Observer spectra.Observers `default:"CIE1931"`

	// View are the viewing conditions of the appearance model.
	View ciecam02.Conditions

	// Formula is the color difference formula.
	Formula deltae.Formulas `default:"CIEDE2000"`

	// Variant of the color difference formula.
	Variant deltae.Variants `default:"Default"`
}

// Defaults sets the config to the default values given in the struct tags.
func (c *Config) Defaults() {
	c.Workers = 0
	c.Illuminant = cie.D65
	c.White = cie.XYZ{}
	c.Observer = spectra.CIE1931
	c.View.Defaults()
	c.Formula = deltae.CIEDE2000
	c.Variant = deltae.Default
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// configDoc is the document form of a [Config]. Enum values are kept
// as text and set with SetString, which rejects unknown names.
// Missing keys keep the defaults.
type configDoc struct {
	Workers    *int
	Illuminant *string
	White      *cie.XYZ
	Observer   *string
	View       *viewDoc
	Formula    *string
	Variant    *string
}

type viewDoc struct {
	AdaptingLuminance   *float64
	BackgroundLuminance *float64
	Surround            *string
	Discount            *float64
}

// apply sets the values present in the document on c.
func (d *configDoc) apply(c *Config) error {
	if d.Workers != nil {
		c.Workers = *d.Workers
	}
	if d.Illuminant != nil {
		if err := c.Illuminant.SetString(*d.Illuminant); err != nil {
			return err
		}
	}
	if d.White != nil {
		c.White = *d.White
	}
	if d.Observer != nil {
		if err := c.Observer.SetString(*d.Observer); err != nil {
			return err
		}
	}
	if v := d.View; v != nil {
		if v.AdaptingLuminance != nil {
			c.View.AdaptingLuminance = *v.AdaptingLuminance
		}
		if v.BackgroundLuminance != nil {
			c.View.BackgroundLuminance = *v.BackgroundLuminance
		}
		if v.Surround != nil {
			if err := c.View.Surround.SetString(*v.Surround); err != nil {
				return fmt.Errorf("%w: %w", ciecam02.ErrInvalidViewingConditions, err)
			}
		}
		if v.Discount != nil {
			c.View.Discount = *v.Discount
		}
	}
	if d.Formula != nil {
		if err := c.Formula.SetString(*d.Formula); err != nil {
			return fmt.Errorf("%w: %w", deltae.ErrUnsupportedFormulaVariant, err)
		}
	}
	if d.Variant != nil {
		if err := c.Variant.SetString(*d.Variant); err != nil {
			return fmt.Errorf("%w: %w", deltae.ErrUnsupportedFormulaVariant, err)
		}
	}
	return nil
}

// decoderFunc decodes a config document from r into d,
// returning an error for unknown keys.
type decoderFunc func(r io.Reader, d *configDoc) error

func decodeTOML(r io.Reader, d *configDoc) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(d)
}

// decodeYAML decodes YAML, in which keys are the lower case field names.
func decodeYAML(r io.Reader, d *configDoc) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(d)
	if err == io.EOF {
		return nil
	}
	return err
}

func encodeTOML(w io.Writer, c *Config) error {
	return toml.NewEncoder(w).Encode(c)
}

func encodeYAML(w io.Writer, c *Config) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// formatFuncs returns the decoder and encoder for the file extension,
// with TOML for anything other than .yaml and .yml.
func formatFuncs(filename string) (decoderFunc, func(io.Writer, *Config) error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return decodeYAML, encodeYAML
	}
	return decodeTOML, encodeTOML
}

func readConfig(r io.Reader, dec decoderFunc) (*Config, error) {
	d := &configDoc{}
	if err := dec(r, d); err != nil {
		return nil, fmt.Errorf("batch config: %w", err)
	}
	c := NewConfig()
	if err := d.apply(c); err != nil {
		return nil, fmt.Errorf("batch config: %w", err)
	}
	return c, nil
}

// ReadConfig returns the config decoded from TOML, starting from
// the default values. Unknown keys and enum names are an error.
func ReadConfig(r io.Reader) (*Config, error) {
	return readConfig(r, decodeTOML)
}

// ReadYAMLConfig is like [ReadConfig] for YAML.
func ReadYAMLConfig(r io.Reader) (*Config, error) {
	return readConfig(r, decodeYAML)
}

// OpenConfig returns the config read from the given file, logging
// any error. Files ending in .yaml or .yml are YAML, others TOML.
func OpenConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer f.Close()
	dec, _ := formatFuncs(filename)
	c, err := readConfig(f, dec)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("%s: %w", filename, err))
	}
	return c, nil
}

// Save writes the config to the given file, in YAML for a
// .yaml or .yml extension and TOML otherwise.
func (c *Config) Save(filename string) error {
	_, enc := formatFuncs(filename)
	var b bytes.Buffer
	if err := enc(&b, c); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// WhitePoint returns the white point of the config.
func (c *Config) WhitePoint() cie.XYZ {
	if c.White.Y > 0 {
		return c.White
	}
	return c.Illuminant.WhitePoint()
}

// NumWorkers returns the effective number of workers.
func (c *Config) NumWorkers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// Model returns the appearance model for the white point and view.
func (c *Config) Model() (*ciecam02.Model, error) {
	vw, err := c.View.Resolve()
	if err != nil {
		return nil, err
	}
	return ciecam02.NewModel(c.WhitePoint(), vw)
}
