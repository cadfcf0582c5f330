package sheets

import "strconv"

// Product is a catalog item in its canonical form, as read from one
// row of a category tab. The same shape is served by the read path
// regardless of whether the data came from the store mirror or live
// from the spreadsheet.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	URL           string  `json:"url"`
	ImageURL1     string  `json:"imageUrl1"`
	ImageURL2     string  `json:"imageUrl2"`
	OriginalPrice float64 `json:"originalPrice"`
	Price         float64 `json:"price"`
	StockStatus   string  `json:"stockStatus"`
	Description   string  `json:"description,omitempty"`
}

// Column layout of every category tab. Headers sit in row 1, data
// rows start at row 2 (range A2:H).
const (
	colID = iota
	colName
	colURL
	colImageURL1
	colImageURL2
	colOriginalPrice
	colPrice
	colStockStatus
)

// productFromRow maps one spreadsheet row into a Product. The mapping
// is positional: if columns are reordered on the sheet side the
// numeric fields silently parse to 0, so any layout change there must
// be mirrored here. Malformed cells never drop a row; numerics
// default to 0 and strings to "".
func productFromRow(row []string) Product {
	p := Product{
		ID:            cell(row, colID),
		Name:          cell(row, colName),
		URL:           cell(row, colURL),
		ImageURL1:     cell(row, colImageURL1),
		ImageURL2:     cell(row, colImageURL2),
		OriginalPrice: numericCell(row, colOriginalPrice),
		Price:         numericCell(row, colPrice),
		StockStatus:   cell(row, colStockStatus),
	}
	// The sheet carries no description column; display falls back to
	// the product name.
	p.Description = p.Name
	return p
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

func numericCell(row []string, col int) float64 {
	v, err := strconv.ParseFloat(cell(row, col), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
