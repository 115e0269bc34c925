// construct.go — concrete condition types & constructors for xgx-condition.
//
// Scope:
//   - Provide the two concrete records: plain conditions and error
//     conditions (which add trace + parent).
//   - Implement the Condition/ErrorCondition interfaces with NON-MUTATING
//     fluent methods (copy-on-write everywhere).
//   - Validate reserved construction fields eagerly: a wrong-shaped trace
//     or parent fails with type_mismatch at construction, never later
//     during display.
//
// Interop:
//   - errors.Is/As work through errorCond.Unwrap (parent chain, or the
//     wrapped foreign cause for adapted errors).
//   - From/Wrap adapt arbitrary Go errors into the condition model.
package xgxcond

// Reserved construction keys. They are pulled out of the kv list rather
// than stored as plain fields, mirroring how producers supply them at the
// raise site.
const (
	keyBody         = "body"
	keyFooter       = "footer"
	keyCall         = "call"
	keyUseCLIFormat = "use_cli_format"
	keyTrace        = "trace"
	keyParent       = "parent"
)

// -----------------------------------------------------------------------------
// Concrete types
// -----------------------------------------------------------------------------

// cond is the base immutable condition record.
type cond struct {
	class  Classification
	msg    string
	call   *Call
	cli    bool
	body   BodyOverride
	footer []string
	extra  fields
}

func (c *cond) Class() Classification { return c.class.clone() }
func (c *cond) Message() string       { return c.msg }
func (c *cond) Call() *Call           { return c.call }
func (c *cond) UseCLIFormat() bool    { return c.cli }
func (c *cond) Body() BodyOverride    { return c.body }

func (c *cond) Footer() []string {
	if len(c.footer) == 0 {
		return nil
	}
	out := make([]string, len(c.footer))
	copy(out, c.footer)
	return out
}

func (c *cond) Fields() map[string]any { return fieldsToMap(c.extra) }

func (c *cond) With(key string, val any) Condition {
	n := c.clone()
	n.extra = fieldsCloneAppend(n.extra, Field{Key: key, Val: val})
	return n
}

func (c *cond) WithFooter(lines ...string) Condition {
	n := c.clone()
	n.footer = copyLines(lines)
	return n
}

func (c *cond) WithBody(v any) Condition {
	n := c.clone()
	n.body = classifyBody(v)
	return n
}

func (c *cond) WithCall(call *Call) Condition {
	n := c.clone()
	n.call = call
	return n
}

func (c *cond) WithCLIFormat(on bool) Condition {
	n := c.clone()
	n.cli = on
	return n
}

func (c *cond) clone() *cond {
	n := *c
	n.class = c.class.clone()
	n.footer = copyLines(c.footer)
	if len(c.extra) > 0 {
		copied := make(fields, len(c.extra))
		copy(copied, c.extra)
		n.extra = copied
	} else {
		n.extra = emptyFields
	}
	return &n
}

// errorCond adds the error-only slots: a captured backtrace, a causal
// parent, and (for adapted foreign errors) the original cause.
type errorCond struct {
	cond
	trace  *Trace
	parent Condition
	cause  error
}

// Error renders through the default registry; on a broken body override it
// falls back to the raw message so error reporting itself cannot fail.
func (e *errorCond) Error() string {
	msg, err := RenderMessage(e)
	if err != nil || msg == "" {
		return e.msg
	}
	return msg
}

func (e *errorCond) Trace() *Trace     { return e.trace }
func (e *errorCond) Parent() Condition { return e.parent }

// Unwrap exposes the causal chain to stdlib traversal: the parent when it is
// an error value, else the wrapped foreign cause.
func (e *errorCond) Unwrap() error {
	if pe, ok := e.parent.(error); ok {
		return pe
	}
	return e.cause
}

// The fluent methods are re-declared so the dynamic type (and with it trace,
// parent, and cause) survives augmentation.

func (e *errorCond) With(key string, val any) Condition {
	n := e.clone()
	n.extra = fieldsCloneAppend(n.extra, Field{Key: key, Val: val})
	return n
}

func (e *errorCond) WithFooter(lines ...string) Condition {
	n := e.clone()
	n.footer = copyLines(lines)
	return n
}

func (e *errorCond) WithBody(v any) Condition {
	n := e.clone()
	n.body = classifyBody(v)
	return n
}

func (e *errorCond) WithCall(call *Call) Condition {
	n := e.clone()
	n.call = call
	return n
}

func (e *errorCond) WithCLIFormat(on bool) Condition {
	n := e.clone()
	n.cli = on
	return n
}

func (e *errorCond) clone() *errorCond {
	n := *e
	n.cond = *e.cond.clone()
	// trace, parent, and cause are immutable; shallow copy is fine.
	return &n
}

func copyLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

// New constructs an immutable condition. The kv list supplies extra fields;
// the reserved keys "body", "footer", "call", and "use_cli_format" populate
// the display slots instead of the field list. Reserved error-only keys
// ("trace", "parent") are rejected here with type_mismatch.
func New(class Classification, msg string, kv ...any) (Condition, error) {
	base, err := newCond(class, msg, kv, false)
	if err != nil {
		return nil, err
	}
	return base, nil
}

// NewWarning constructs a plain native warning condition.
func NewWarning(msg string, kv ...any) (Condition, error) {
	return New(WarningClass(), msg, kv...)
}

// NewMessage constructs a plain native message condition.
func NewMessage(msg string, kv ...any) (Condition, error) {
	return New(MessageClass(), msg, kv...)
}

// NewError constructs an immutable error condition. In addition to the keys
// New understands, the kv list may carry "trace" (nil or *Trace) and
// "parent" (nil or Condition); any other shape fails with type_mismatch.
// The classification must include the "error" base kind.
func NewError(class Classification, msg string, kv ...any) (ErrorCondition, error) {
	if class.Kind() != KindError {
		return nil, invalidArgumentf("classification %v of an error condition must include the error base kind", []string(class))
	}
	base, err := newCond(class, msg, kv, true)
	if err != nil {
		return nil, err
	}
	ec := &errorCond{cond: *base}
	ec.trace, ec.parent, err = takeErrorSlots(kv)
	if err != nil {
		return nil, err
	}
	return ec, nil
}

func newCond(class Classification, msg string, kv []any, allowErrorKeys bool) (*cond, error) {
	if err := class.Validate(); err != nil {
		return nil, err
	}
	c := &cond{
		class: class.clone(),
		msg:   msg,
		extra: emptyFields,
	}
	rest := make(fields, 0, len(kv)/2)
	for _, f := range fieldsFromKV(kv...) {
		switch f.Key {
		case keyBody:
			c.body = classifyBody(f.Val)
		case keyFooter:
			switch v := f.Val.(type) {
			case nil:
			case string:
				c.footer = []string{v}
			case []string:
				c.footer = copyLines(v)
			default:
				return nil, typeMismatchf("%q must be a string or a string sequence, got %T", keyFooter, f.Val)
			}
		case keyCall:
			switch v := f.Val.(type) {
			case nil:
			case *Call:
				c.call = v
			default:
				return nil, typeMismatchf("%q must be nil or a *Call, got %T", keyCall, f.Val)
			}
		case keyUseCLIFormat:
			b, ok := f.Val.(bool)
			if !ok {
				return nil, typeMismatchf("%q must be a bool, got %T", keyUseCLIFormat, f.Val)
			}
			c.cli = b
		case keyTrace, keyParent:
			if !allowErrorKeys {
				return nil, typeMismatchf("%q is only valid on error conditions", f.Key)
			}
			// consumed by takeErrorSlots
		default:
			rest = append(rest, f)
		}
	}
	if len(rest) > 0 {
		c.extra = rest
	}
	return c, nil
}

func takeErrorSlots(kv []any) (*Trace, Condition, error) {
	var trace *Trace
	var parent Condition
	for _, f := range fieldsFromKV(kv...) {
		switch f.Key {
		case keyTrace:
			switch v := f.Val.(type) {
			case nil:
			case *Trace:
				trace = v
			default:
				return nil, nil, typeMismatchf("%q must be nil or a *Trace, got %T", keyTrace, f.Val)
			}
		case keyParent:
			switch v := f.Val.(type) {
			case nil:
			case Condition:
				parent = v
			default:
				return nil, nil, typeMismatchf("%q must be nil or a Condition, got %T", keyParent, f.Val)
			}
		}
	}
	return trace, parent, nil
}

// -----------------------------------------------------------------------------
// Adapters — foreign errors into the condition model
// -----------------------------------------------------------------------------

// From adapts any error into an ErrorCondition without adding policy.
//   - nil → nil
//   - ErrorCondition → returned as-is
//   - other error → error-classified condition WITHOUT the marker label;
//     chain display then shows its Error() text directly.
func From(err error) ErrorCondition {
	if err == nil {
		return nil
	}
	if ec, ok := err.(ErrorCondition); ok {
		return ec
	}
	return &errorCond{
		cond: cond{
			class: foreignClass(),
			msg:   err.Error(),
			extra: emptyFields,
		},
		cause: err,
	}
}

// Wrap raises a new native error condition caused by err: err is adapted via
// From and attached as the parent, so chain display shows
// "Caused by error: ..." beneath the new message.
func Wrap(err error, class Classification, msg string, kv ...any) (ErrorCondition, error) {
	ec, cerr := NewError(class, msg, kv...)
	if cerr != nil {
		return nil, cerr
	}
	parent := From(err)
	if parent == nil {
		return ec, nil
	}
	n := ec.(*errorCond).clone()
	n.parent = parent
	return n, nil
}

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the types)
// -----------------------------------------------------------------------------
var (
	_ Condition      = (*cond)(nil)
	_ Condition      = (*errorCond)(nil)
	_ ErrorCondition = (*errorCond)(nil)
	_ error          = (*errorCond)(nil)
)
