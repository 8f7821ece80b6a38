// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the scene compiler,
// read from a TOML or YAML file.
package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/scene/assets"
	"cogentcore.org/scene/base/charsetx"
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/base/indent"
	"cogentcore.org/scene/codegen"
	"cogentcore.org/scene/scene"
)

// Config is the configuration of the scene compiler.
type Config struct {

	// Language overrides the compiler language of scenes when set.
	Language string `toml:"language" yaml:"language"`

	// Indent is the indentation character of compiled code.
	Indent indent.Character `toml:"indent" yaml:"indent"`

	// IndentWidth is the number of spaces per level when Indent is space.
	IndentWidth int `toml:"indentWidth" yaml:"indentWidth"`

	// Charset is the charset of new compiled files.
	Charset string `toml:"charset" yaml:"charset"`

	// Lenient skips entities of unknown type when reading scenes
	// instead of failing.
	Lenient bool `toml:"lenient" yaml:"lenient"`

	// CheckSyntax parses compiled JavaScript before writing it.
	CheckSyntax bool `toml:"checkSyntax" yaml:"checkSyntax"`

	// Packs are the asset pack files, relative to the project
	// directory, used to resolve texture keys.
	Packs []string `toml:"packs" yaml:"packs"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{Indent: indent.Tab, IndentWidth: 4, Charset: charsetx.UTF8}
}

// Files are the configuration files looked for by [Find], in order.
var Files = []string{"scenec.toml", "scenec.yaml", "scenec.yml", "~/.config/scenec/config.toml"}

// Decoder decodes a value from the reader it was created with.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc returns a new [Decoder] strictly reading from r.
type DecoderFunc func(r io.Reader) Decoder

// Decoders are the decoders of configuration files by extension.
var Decoders = map[string]DecoderFunc{
	".toml": func(r io.Reader) Decoder {
		d := toml.NewDecoder(r)
		d.DisallowUnknownFields()
		return d
	},
	".yaml": newYAMLDecoder,
	".yml":  newYAMLDecoder,
}

func newYAMLDecoder(r io.Reader) Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// Find returns the path of the first of [Files] that exists,
// or "" if there is none.
func Find() string {
	for _, f := range Files {
		p, err := homedir.Expand(f)
		if errors.Log(err) != nil {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Open reads the configuration file at the given path on top of the
// defaults. The format is chosen by the file extension.
func Open(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	df, ok := Decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("config: unsupported file type %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := Default()
	if err := df(bufio.NewReader(f)).Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Load opens the configuration file at the given path, or the one
// found by [Find] if path is empty. With no file it returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Find()
		if path == "" {
			slog.Debug("no config file found, using defaults")
			return Default(), nil
		}
	}
	slog.Debug("loading config", "path", path)
	return Open(path)
}

// ReadOptions returns the scene read options of the configuration.
func (c *Config) ReadOptions() scene.ReadOptions {
	return scene.ReadOptions{Lenient: c.Lenient}
}

// Compiler returns a compiler over fsys configured by c. Asset packs
// are read from fsys.
func (c *Config) Compiler(fsys hackpadfs.FS) (*codegen.Compiler, error) {
	cs, err := charsetx.Lookup(c.Charset)
	if err != nil {
		return nil, err
	}
	comp := &codegen.Compiler{
		FS:          fsys,
		Language:    c.Language,
		Indent:      c.Indent,
		IndentWidth: c.IndentWidth,
		Charset:     cs,
		CheckSyntax: c.CheckSyntax,
	}
	if len(c.Packs) > 0 {
		f, err := assets.OpenPackFinder(fsys, c.Packs...)
		if err != nil {
			return nil, err
		}
		comp.Finder = f
	}
	return comp, nil
}
