package catalog

// #region category

// Category is the handling route for an intent.
type Category string

const (
	CategoryAction    Category = "action"
	CategoryKnowledge Category = "knowledge"
	CategoryFallback  Category = "fallback"
)

// #endregion category
