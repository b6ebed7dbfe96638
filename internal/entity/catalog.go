package domain

import "errors"

var ErrNoItemSelected = errors.New("No item selected")

// CatalogItem is one entry of the fixed store catalog. Amounts are in
// minor currency units (cents) to avoid floating-point rounding.
type CatalogItem struct {
	ID          string
	Title       string
	AmountCents int64
}

// Hardcoded catalog: three books, no database behind them.
var catalog = map[string]CatalogItem{
	"1": {ID: "1", Title: "The Art of Doing Science and Engineering", AmountCents: 2300},
	"2": {ID: "2", Title: "The Making of Prince of Persia: Journals 1985-1993", AmountCents: 2500},
	"3": {ID: "3", Title: "Working in Public: The Making and Maintenance of Open Source", AmountCents: 2800},
}

// LookupItem resolves an item id against the catalog. Unknown or empty ids
// return ErrNoItemSelected; the caller renders that in-page rather than as
// an HTTP error.
func LookupItem(id string) (CatalogItem, error) {
	it, ok := catalog[id]
	if !ok {
		return CatalogItem{}, ErrNoItemSelected
	}
	return it, nil
}
