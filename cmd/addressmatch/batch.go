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

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
	"github.com/TFMV/CredCoreMatch/pkg/utils"
)

type bulkReport struct {
	Results []matcher.BulkResult `json:"results"`
	Summary matcher.Summary      `json:"summary"`
}

// readAddressFile returns the non-blank lines of path
// Longest line accepted from an --input file
const maxAddressLine = 1024 * 1024

func readAddressFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	var addresses []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxAddressLine)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			addresses = append(addresses, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return addresses, nil
}

func (a *app) bulkCmd() *cobra.Command {
	var inputPath string
	var withSummary bool

	cmd := &cobra.Command{
		Use:   "bulk [address...]",
		Short: "Find the best reference address for each of many addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			addresses := append([]string{}, args...)
			if inputPath != "" {
				fromFile, err := readAddressFile(inputPath)
				if err != nil {
					return err
				}
				addresses = append(addresses, fromFile...)
			}
			if len(addresses) == 0 {
				return matcher.ErrAddressesRequired
			}

			refs, err := a.loadReferences(cmd.Context())
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := a.matcher.ValidateBulk(cmd.Context(), addresses, refs)
			if err != nil {
				return err
			}
			a.logger.Info("Validated %d addresses in %s", len(results), time.Since(start))

			if withSummary {
				return utils.WriteJSON(cmd.OutOrStdout(), "", bulkReport{
					Results: results,
					Summary: matcher.Summarize(results),
				})
			}
			return utils.WriteJSON(cmd.OutOrStdout(), "", results)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "file with one address per line")
	cmd.Flags().BoolVar(&withSummary, "summary", false, "include aggregate statistics")
	return cmd
}
