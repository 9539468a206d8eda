// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/ffslint/internal/driver"
)

// ErrUnsupportedFormat is returned for descriptor files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported descriptor format")

// LoadFile reads all documents of a descriptor file. The format is selected by
// the extension: .yaml and .yml for YAML, .json for JSON. Documents without a
// name are named after the file.
func LoadFile(path string) ([]Document, error) {
	var decode func(io.Reader) ([]Document, error)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		decode = DecodeYAML

	case ".json":
		decode = DecodeJSON

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open descriptor: %w", err)
	}
	defer f.Close()

	docs, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}

	for i := range docs {
		if docs[i].Name == "" {
			docs[i].Name = path
		}
	}

	return docs, nil
}

// DecodeYAML reads a stream of YAML documents. Unknown fields are rejected.
func DecodeYAML(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document

	for {
		var doc Document

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}

		if err != nil {
			return nil, fmt.Errorf("can't parse document %d: %w", len(docs)+1, err)
		}

		docs = append(docs, doc)
	}
}

// DecodeJSON reads a stream of JSON objects. Unknown fields are rejected.
func DecodeJSON(r io.Reader) ([]Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var docs []Document

	for {
		var doc Document

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}

		if err != nil {
			return nil, fmt.Errorf("can't parse document %d: %w", len(docs)+1, err)
		}

		docs = append(docs, doc)
	}
}

// Units resolves documents into analysis units.
func Units(docs []Document) []driver.Unit {
	units := make([]driver.Unit, len(docs))
	for i, d := range docs {
		units[i] = d.Unit()
	}

	return units
}
