package layout

//go:generate go tool stringer -type=HandKind -output=handkind_string.go

// HandKind enumerates the physical key regions.
type HandKind int

const (
	LeftFinger HandKind = iota
	RightFinger
	LeftThumb
	RightThumb
)

// IndexMap maps a logical column (counted from the outer edge of the hand)
// to the physical column of a hand with the given number of columns.
type IndexMap func(columns, index int) int

// Identity keeps the column as is. Left hands count from the outer edge already.
func Identity(_, index int) int {
	return index
}

// Mirror flips the column so that the right hand counts from its outer edge.
func Mirror(columns, index int) int {
	return columns - 1 - index
}

// Hand describes the slice of the key grid that belongs to one key region.
type Hand struct {
	Kind HandKind
	// Columns is the number of columns of this hand.
	Columns int
	// RowSkip is the number of leading rows that belong to the other region.
	RowSkip int
	// RowCount is the number of rows this hand spans after RowSkip.
	RowCount int
	// Skip is the number of leading columns of a shared row that belong to the opposing hand.
	Skip int
	// OpposingSkip is the number of trailing columns that belong to the opposing hand.
	OpposingSkip int

	indexMap IndexMap
}

// Hands returns the fixed set of hands for the given dimensions.
func Hands(d Dimensions) []Hand {
	return []Hand{
		{
			Kind: LeftFinger, Columns: d.Columns, RowSkip: 0, RowCount: d.Rows,
			Skip: 0, OpposingSkip: d.Columns, indexMap: Identity,
		},
		{
			Kind: RightFinger, Columns: d.Columns, RowSkip: 0, RowCount: d.Rows,
			Skip: d.Columns, OpposingSkip: 0, indexMap: Mirror,
		},
		{
			Kind: LeftThumb, Columns: d.ThumbColumns, RowSkip: d.Rows, RowCount: d.ThumbRows,
			Skip: 0, OpposingSkip: d.ThumbColumns, indexMap: Identity,
		},
		{
			Kind: RightThumb, Columns: d.ThumbColumns, RowSkip: d.Rows, RowCount: d.ThumbRows,
			Skip: d.ThumbColumns, OpposingSkip: 0, indexMap: Mirror,
		},
	}
}

// FingerHands returns the left and right finger hands.
func FingerHands(d Dimensions) []Hand {
	return Hands(d)[:2]
}

// Name is used in generated identifiers.
func (h Hand) Name() string {
	return h.Kind.String()
}

// IsThumb reports whether the hand is a thumb cluster.
func (h Hand) IsThumb() bool {
	return h.Kind == LeftThumb || h.Kind == RightThumb
}

// IsRight reports whether the hand is on the right side.
func (h Hand) IsRight() bool {
	return h.Kind == RightFinger || h.Kind == RightThumb
}

// Translate maps a logical column to this hand's physical column.
func (h Hand) Translate(index int) int {
	return h.indexMap(h.Columns, index)
}

// Width is the length of a row shared by this hand and its opposing hand.
func (h Hand) Width() int {
	return h.Skip + h.Columns + h.OpposingSkip
}

// Applies reports whether a combo-definition group belongs to this hand.
func (h Hand) Applies(g ComboGroup) bool {
	return g.Thumb == h.IsThumb() && len(g.Rows) <= h.RowCount
}

// Rows returns the base rows of l that this hand spans.
func (h Hand) Rows(l Layer) [][]Key {
	end := min(h.RowSkip+h.RowCount, len(l.Base))
	if h.RowSkip >= end {
		return nil
	}

	return l.Base[h.RowSkip:end]
}

// Row returns the slice of a shared row that belongs to this hand.
func (h Hand) Row(row []Key) []Key {
	start := min(h.Skip, len(row))
	end := min(h.Skip+h.Columns, len(row))

	return row[start:end]
}

// Part slices every row to this hand and flattens the result.
func (h Hand) Part(rows [][]Key) []Key {
	part := make([]Key, 0, len(rows)*h.Columns)
	for _, row := range rows {
		part = append(part, h.Row(row)...)
	}

	return part
}
