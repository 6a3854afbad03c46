package main

// Word is a named, executable dictionary entry.
type Word interface {
	Value
	Name() string

	// Immediate words run as soon as they are read, even while compiling.
	Immediate() bool

	// Call runs the word; the returned Flow tells an enclosing quotation how
	// to continue.
	Call(e *Engine) (Flow, error)
}

// builtin is a primitive word implemented by an Engine method.
type builtin struct {
	name      string
	immediate bool
	fn        func(e *Engine) error
}

func (b builtin) Name() string    { return b.name }
func (b builtin) String() string  { return b.name }
func (b builtin) Immediate() bool { return b.immediate }

func (b builtin) Call(e *Engine) (Flow, error) {
	if err := b.fn(e); err != nil {
		return Completed, attribute(b.name, err)
	}
	return Completed, nil
}

// signal is a primitive word that may redirect the running quotation.
type signal struct {
	name string
	fn   func(e *Engine) (Flow, error)
}

func (s signal) Name() string    { return s.name }
func (s signal) String() string  { return s.name }
func (s signal) Immediate() bool { return false }

func (s signal) Call(e *Engine) (Flow, error) {
	flow, err := s.fn(e)
	if err != nil {
		return Completed, attribute(s.name, err)
	}
	return flow, nil
}

// Definition is a word defined by DEF ... END.
type Definition struct {
	name string
	body Quotation
}

func (d *Definition) Name() string    { return d.name }
func (d *Definition) String() string  { return d.name }
func (d *Definition) Immediate() bool { return false }

// Body returns the compiled quotation.
func (d *Definition) Body() Quotation { return d.body }

func (d *Definition) Call(e *Engine) (Flow, error) {
	e.logf(">", "call %v %v", d.name, d.body)
	return Completed, e.exec(d.body)
}

// Variable is a single mutable cell created by VAR. Running the word pushes
// the variable itself, for use with STORE and FETCH.
type Variable struct {
	name  string
	value Value
}

func (v *Variable) Name() string    { return v.name }
func (v *Variable) String() string  { return v.name }
func (v *Variable) Immediate() bool { return false }

// Value returns the stored value, or nil if nothing has been stored yet.
func (v *Variable) Value() Value { return v.value }

func (v *Variable) Call(e *Engine) (Flow, error) {
	e.push(v)
	return Completed, nil
}

// Constant is a value captured by CONST; running it pushes the value.
type Constant struct {
	name  string
	value Value
}

func (c *Constant) Name() string    { return c.name }
func (c *Constant) String() string  { return c.name }
func (c *Constant) Immediate() bool { return false }

// Value returns the captured value.
func (c *Constant) Value() Value { return c.value }

func (c *Constant) Call(e *Engine) (Flow, error) {
	e.push(c.value)
	return Completed, nil
}
