package filters

// Filter transforms a single attribute value. Filters receive whatever the
// model reader produced (or the previous filter returned) and may change the
// value's type, e.g. turning raw text into rendered HTML.
type Filter func(value any) (any, error)

// Chain is an ordered list of filters as declared on a reader. Application is
// right-to-left: the last filter in the chain receives the raw value first and
// the first filter produces the final result, mirroring nested calls
// f1(f2(...fn(value))).
type Chain []Filter

// Apply runs the chain against value. An empty chain returns the value
// unchanged. The first filter error aborts the chain.
func (c Chain) Apply(value any) (any, error) {
	out := value
	for i := len(c) - 1; i >= 0; i-- {
		filter := c[i]
		if filter == nil {
			continue
		}
		next, err := filter(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}
