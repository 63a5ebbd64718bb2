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

package matcher

import "strings"

// ReferenceAddress is a known-good address supplied by the caller. The matcher
// never mutates it and only reads its full-text form.
type ReferenceAddress struct {
	ID           string `json:"id"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Zone         string `json:"zone,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// FullText concatenates the non-empty address fields with single spaces.
// Zone is not part of the postal address and is left out.
func (r ReferenceAddress) FullText() string {
	parts := make([]string, 0, 5)
	for _, field := range []string{r.AddressLine1, r.AddressLine2, r.City, r.State, r.Pincode} {
		if field = strings.TrimSpace(field); field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, " ")
}

// ActiveReferences returns the active references in their original order.
func ActiveReferences(refs []ReferenceAddress) []ReferenceAddress {
	active := make([]ReferenceAddress, 0, len(refs))
	for _, ref := range refs {
		if ref.IsActive {
			active = append(active, ref)
		}
	}
	return active
}
