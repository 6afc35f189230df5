package validate

// CategoryEnum classifies what a derived implementation needs from the
// wrapper to stay sound. A trait may carry several categories.
type CategoryEnum int

const (
	CategoryStructural   CategoryEnum = 1 << iota // delegates to the inner value; safe for any guard
	CategoryExact                                 // relies on total equality/ordering of the inner value (floats need a finite guarantee)
	CategoryParsing                               // constructs through the checked constructor; the guard still runs
	CategoryCoercing                              // constructs infallibly from a raw inner value, bypassing validators
	CategoryConstructing                          // constructs from the declared default literal
	CategoryClosure                               // composes wrapped values into a new one without re-running the guard

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)
