// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
)

// LoadReferences loads reference addresses from a .csv, .yaml or .yml file
func LoadReferences(path string) ([]matcher.ReferenceAddress, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadReferencesCSV(path)
	case ".yaml", ".yml":
		return LoadReferencesYAML(path)
	}
	return nil, fmt.Errorf("unsupported reference file %q: want .csv, .yaml or .yml", path)
}

// LoadReferencesCSV reads reference addresses from a CSV file whose header row
// names the columns. Unknown columns are ignored.
func LoadReferencesCSV(csvFilePath string) ([]matcher.ReferenceAddress, error) {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read() // Read the header
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	// Spreadsheet exports often start with a byte order mark
	headers[0] = strings.TrimPrefix(headers[0], "\ufeff")

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["address_line1"]; !ok {
		return nil, fmt.Errorf("CSV header is missing the address_line1 column")
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var refs []matcher.ReferenceAddress
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV line %d: %w", line, err)
		}

		active := true
		if raw := field(record, "is_active"); raw != "" {
			active, err = strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid is_active on CSV line %d: %w", line, err)
			}
		}

		refs = append(refs, matcher.ReferenceAddress{
			ID:           field(record, "id"),
			AddressLine1: field(record, "address_line1"),
			AddressLine2: field(record, "address_line2"),
			City:         field(record, "city"),
			State:        field(record, "state"),
			Pincode:      field(record, "pincode"),
			Zone:         field(record, "zone"),
			IsActive:     active,
		})
	}

	return refs, nil
}
