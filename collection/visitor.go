package collection

// Visitor is applied to every item of a collection by Accept.
type Visitor[T any] interface {
	Visit(item T)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc[T any] func(item T)

// Visit implements Visitor.
func (f VisitorFunc[T]) Visit(item T) {
	f(item)
}

// Accept invokes v.Visit for every item in current order. No snapshot is
// taken automatically; field mutations performed inside a visitor follow
// the same per-field tracking as direct edits.
func (c *Collection[T]) Accept(v Visitor[T]) {
	for _, item := range c.Items() {
		v.Visit(item)
	}
}

// AcceptFunc is shorthand for Accept with a function visitor.
func (c *Collection[T]) AcceptFunc(fn func(item T)) {
	c.Accept(VisitorFunc[T](fn))
}
