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

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
)

// Querier is the part of *pgxpool.Pool the reference loader needs
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func activeReferencesQuery(table string) string {
	return fmt.Sprintf(`SELECT "id", "addressLine1", "addressLine2", "city", "state", "pincode", "zone", "isActive"
		FROM %s
		WHERE "isActive" = true
		ORDER BY "id"`, pgx.Identifier{table}.Sanitize())
}

// LoadActiveReferences reads the active reference addresses from table.
// Rows come back ordered by id so ranking ties resolve the same way on every call.
func LoadActiveReferences(ctx context.Context, q Querier, table string) ([]matcher.ReferenceAddress, error) {
	rows, err := q.Query(ctx, activeReferencesQuery(table))
	if err != nil {
		return nil, fmt.Errorf("query reference addresses: %w", err)
	}
	defer rows.Close()

	var refs []matcher.ReferenceAddress
	for rows.Next() {
		var ref matcher.ReferenceAddress
		var addressLine2, zone pgtype.Text

		if err := rows.Scan(
			&ref.ID,
			&ref.AddressLine1,
			&addressLine2,
			&ref.City,
			&ref.State,
			&ref.Pincode,
			&zone,
			&ref.IsActive,
		); err != nil {
			return nil, fmt.Errorf("scan reference address: %w", err)
		}

		// Convert pgtype.Text to string
		ref.AddressLine2 = addressLine2.String
		ref.Zone = zone.String

		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reference addresses: %w", err)
	}

	return refs, nil
}
