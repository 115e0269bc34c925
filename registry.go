// registry.go — the message line protocol: polymorphic header/body/footer
// dispatch by classification label.
//
// Design:
//   - An explicit label → Handlers table replaces hidden method dispatch:
//     lookup walks the condition's classification most-specific-first and
//     falls back to fixed defaults. The table is a plain value, so tests
//     build their own registries without touching global state.
//   - The body override is a tagged variant classified ONCE at construction
//     ({fixed lines, bullets, computed}); invalid shapes are remembered and
//     reported with invalid_argument when the body is resolved, so a broken
//     producer surfaces at display time instead of crashing the raise site.
package xgxcond

// LineFunc computes one message part for a condition. A nil LineFunc in a
// Handlers entry means "inherit": dispatch keeps walking less specific
// labels and ultimately uses the default.
type LineFunc func(Condition) ([]string, error)

// BodyFunc is the canonical computed-body shape. WithBody also accepts a few
// looser function shapes for raise-site convenience; see classifyBody.
type BodyFunc func(Condition) ([]string, error)

// Handlers carries the per-label overrides for the three message parts.
type Handlers struct {
	Header LineFunc
	Body   LineFunc
	Footer LineFunc
}

// Registry maps classification labels to message-part handlers.
// The zero value is unusable; use NewRegistry.
type Registry struct {
	byLabel map[string]Handlers
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byLabel: make(map[string]Handlers)}
}

// DefaultRegistry is the registry consulted by RenderMessage and by each
// error condition's Error method. It starts empty: every condition renders
// through the defaults until producers register their labels.
var DefaultRegistry = NewRegistry()

// Register binds handlers to a classification label, replacing any previous
// binding for that label.
func (r *Registry) Register(label string, h Handlers) {
	r.byLabel[label] = h
}

// Header resolves the header lines for cnd: most-specific registered
// handler first, default = the condition's message as the sole line. An
// empty default message yields NO lines rather than one empty line: chain
// display filters messageless conditions out entirely, and an empty header
// line would resurface them as a blank block.
func (r *Registry) Header(cnd Condition) ([]string, error) {
	for _, label := range cnd.Class() {
		if h, ok := r.byLabel[label]; ok && h.Header != nil {
			return h.Header(cnd)
		}
	}
	if msg := cnd.Message(); msg != "" {
		return []string{msg}, nil
	}
	return nil, nil
}

// Body resolves the body lines for cnd. A per-instance override wins over
// dispatch; otherwise the most specific registered handler; default = no
// lines.
func (r *Registry) Body(cnd Condition) ([]string, error) {
	if ov := cnd.Body(); !ov.IsZero() {
		return ov.resolve(cnd)
	}
	for _, label := range cnd.Class() {
		if h, ok := r.byLabel[label]; ok && h.Body != nil {
			return h.Body(cnd)
		}
	}
	return nil, nil
}

// bodyAsBullets resolves the body with roles preserved: a bullet-valued
// override passes through normalized instead of flattened, so a rich
// Formatter sees the semantic roles. Line-valued sources (registered
// handlers, string/computed overrides) become unnamed bullets.
func (r *Registry) bodyAsBullets(cnd Condition) ([]Bullet, error) {
	if ov := cnd.Body(); !ov.IsZero() {
		return ov.resolveBullets(cnd)
	}
	for _, label := range cnd.Class() {
		if h, ok := r.byLabel[label]; ok && h.Body != nil {
			lines, err := h.Body(cnd)
			if err != nil {
				return nil, err
			}
			return Lines(lines...), nil
		}
	}
	return nil, nil
}

// Footer resolves the footer lines for cnd: most-specific registered handler
// first, default = the condition's stored footer.
func (r *Registry) Footer(cnd Condition) ([]string, error) {
	for _, label := range cnd.Class() {
		if h, ok := r.byLabel[label]; ok && h.Footer != nil {
			return h.Footer(cnd)
		}
	}
	return cnd.Footer(), nil
}

// -----------------------------------------------------------------------------
// Body override variant
// -----------------------------------------------------------------------------

type bodyKind uint8

const (
	bodyNone bodyKind = iota
	bodyLines
	bodyBullets
	bodyComputed
	bodyInvalid
)

// BodyOverride is the tagged variant behind Condition.Body: either fixed
// lines, fixed bullets, a computed function, or an invalid shape kept for
// lazy rejection. The zero value means "not set".
type BodyOverride struct {
	kind    bodyKind
	lines   []string
	bullets []Bullet
	fn      BodyFunc
	raw     any
}

// IsZero reports whether no override was set.
func (b BodyOverride) IsZero() bool { return b.kind == bodyNone }

// resolve produces the body lines, invoking a computed override with the
// condition. Errors from the override propagate unmasked; an invalid shape
// fails with invalid_argument.
func (b BodyOverride) resolve(cnd Condition) ([]string, error) {
	switch b.kind {
	case bodyNone:
		return nil, nil
	case bodyLines:
		return copyLines(b.lines), nil
	case bodyBullets:
		return FormatBullets(b.bullets)
	case bodyComputed:
		return b.fn(cnd)
	default:
		return nil, invalidArgumentf("body must be a string or a function, or a string sequence, got %T", b.raw)
	}
}

// resolveBullets is resolve with roles kept: bullet overrides are validated
// and promotion-normalized but NOT flattened to prefixed strings; every other
// shape resolves to lines and comes back as unnamed bullets.
func (b BodyOverride) resolveBullets(cnd Condition) ([]Bullet, error) {
	if b.kind == bodyBullets {
		return normalizeBullets(b.bullets)
	}
	lines, err := b.resolve(cnd)
	if err != nil {
		return nil, err
	}
	return Lines(lines...), nil
}

// classifyBody tags a raw override value. Accepted shapes:
//   - nil                              → not set
//   - string                          → one fixed line
//   - []string                        → fixed lines, verbatim
//   - []Bullet                        → fixed bullets, formatted at resolve
//   - BodyFunc / func(Condition) ([]string, error)
//   - func(Condition) []string, func() []string, func() string
//
// Anything else is kept and rejected at resolve time.
func classifyBody(v any) BodyOverride {
	switch fn := v.(type) {
	case nil:
		return BodyOverride{}
	case string:
		return BodyOverride{kind: bodyLines, lines: []string{fn}}
	case []string:
		return BodyOverride{kind: bodyLines, lines: copyLines(fn)}
	case []Bullet:
		bs := make([]Bullet, len(fn))
		copy(bs, fn)
		return BodyOverride{kind: bodyBullets, bullets: bs}
	case BodyFunc:
		return BodyOverride{kind: bodyComputed, fn: fn}
	case func(Condition) ([]string, error):
		return BodyOverride{kind: bodyComputed, fn: fn}
	case func(Condition) []string:
		return BodyOverride{kind: bodyComputed, fn: func(c Condition) ([]string, error) { return fn(c), nil }}
	case func() []string:
		return BodyOverride{kind: bodyComputed, fn: func(Condition) ([]string, error) { return fn(), nil }}
	case func() string:
		return BodyOverride{kind: bodyComputed, fn: func(Condition) ([]string, error) { return []string{fn()}, nil }}
	default:
		return BodyOverride{kind: bodyInvalid, raw: v}
	}
}
