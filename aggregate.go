// aggregate.go — folding several conditions into one bulleted condition.
//
// Semantics mirror the usual multi-error join:
//   - nils are filtered out
//   - all nil → nil
//   - one non-nil → that condition, identity preserved
//   - 2+ → a new condition whose body lists every child as a role-tagged
//     bullet (errors as "x", warnings as "!", messages as "i")
//
// The result is error-classified when any child is, else message-classified.
package xgxcond

// Aggregate combines conditions under one headline message. See the file
// comment for the nil and identity rules.
func Aggregate(msg string, conds ...Condition) Condition {
	nz := make([]Condition, 0, len(conds))
	for _, c := range conds {
		if c != nil {
			nz = append(nz, c)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	}

	bullets := make([]Bullet, 0, len(nz))
	anyError := false
	for _, c := range nz {
		kind := c.Class().Kind()
		role := RoleInfo
		switch kind {
		case KindError:
			role = RoleCross
			anyError = true
		case KindWarning:
			role = RoleAlert
		}
		text, err := RenderMessage(c)
		if err != nil || text == "" {
			text = c.Message()
		}
		bullets = append(bullets, Bullet{Role: role, Text: text})
	}

	if anyError {
		ec, err := NewError(ErrorClass("aggregate_error"), msg, keyBody, bullets)
		if err != nil {
			// Inputs are well-formed by construction here.
			panic(err)
		}
		return ec
	}
	c, err := New(MessageClass("aggregate_message"), msg, keyBody, bullets)
	if err != nil {
		panic(err)
	}
	return c
}
