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
	"strings"

	"github.com/spf13/cobra"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
	"github.com/TFMV/CredCoreMatch/pkg/utils"
)

type similarityResult struct {
	AddressA   string  `json:"addressA"`
	AddressB   string  `json:"addressB"`
	Similarity float64 `json:"similarity"`
}

func (a *app) similarityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <address-a> <address-b>",
		Short: "Print the similarity of two addresses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := similarityResult{
				AddressA:   args[0],
				AddressB:   args[1],
				Similarity: a.matcher.Similarity(args[0], args[1]),
			}
			return utils.WriteJSON(cmd.OutOrStdout(), "", result)
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address>",
		Short: "Rank the reference addresses closest to one address",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var address string
			if len(args) == 1 {
				address = args[0]
			}
			// Reject before touching the reference source
			if strings.TrimSpace(address) == "" {
				return matcher.ErrAddressRequired
			}

			refs, err := a.loadReferences(cmd.Context())
			if err != nil {
				return err
			}

			validation, err := a.matcher.ValidateOne(address, refs)
			if err != nil {
				return err
			}

			if validation.BestMatch != nil {
				a.logger.Debug("Best match %s scored %.4f", validation.BestMatch.Reference.ID, validation.BestMatch.Similarity)
			}
			return utils.WriteJSON(cmd.OutOrStdout(), "", validation)
		},
	}
}
