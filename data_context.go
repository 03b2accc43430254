package statekit

// dataContext resolves the ambient data value handed to guards, resolvers and
// event handlers. An explicit per-call datum always wins; otherwise the
// configured context is used, invoking it first when it is a producer
// function.
type dataContext struct {
	value any
}

func (c *dataContext) set(v any) {
	c.value = v
}

// resolve returns the effective data value for one call.
func (c *dataContext) resolve(explicit any) any {
	if explicit != nil {
		return explicit
	}
	return c.current()
}

// current resolves the configured context on its own.
func (c *dataContext) current() any {
	if fn, ok := c.value.(func() any); ok {
		return fn()
	}
	return c.value
}
