package index

// #region result

// Result is one nearest-neighbor hit.
type Result struct {
	Position int
	Passage  string
	Distance float64
}

// #endregion result
