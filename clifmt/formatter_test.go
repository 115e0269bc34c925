package clifmt

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/xgx-condition"
)

func plain() *Formatter {
	return &Formatter{Color: false, Width: 0}
}

func TestFormat_Glyphs(t *testing.T) {
	out, err := plain().Format([]xgxcond.Bullet{
		{Role: xgxcond.RoleNone, Text: "Problems found:"},
		{Role: xgxcond.RoleBullet, Text: "plain item"},
		{Role: xgxcond.RoleCross, Text: "broken"},
		{Role: xgxcond.RoleTick, Text: "fine"},
		{Role: xgxcond.RoleInfo, Text: "note"},
		{Role: xgxcond.RoleAlert, Text: "careful"},
		{Role: xgxcond.RoleArrow, Text: "next"},
	}, xgxcond.KindError, 0)
	require.NoError(t, err)

	want := "Problems found:\n" +
		"• plain item\n" +
		"✖ broken\n" +
		"✔ fine\n" +
		"ℹ note\n" +
		"! careful\n" +
		"→ next"
	assert.Equal(t, want, out)
}

func TestFormat_BreakContinuesUnprefixed(t *testing.T) {
	out, err := plain().Format([]xgxcond.Bullet{
		{Role: xgxcond.RoleCross, Text: "broken"},
		{Role: xgxcond.RoleBreak, Text: "details on the next line"},
	}, xgxcond.KindError, 0)
	require.NoError(t, err)
	assert.Equal(t, "✖ broken\ndetails on the next line", out)
}

func TestFormat_UnknownRole(t *testing.T) {
	_, err := plain().Format([]xgxcond.Bullet{
		{Role: xgxcond.Role("u"), Text: "bar"},
	}, xgxcond.KindError, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unrecognized bullet role "u"`)
}

func TestFormat_Headline(t *testing.T) {
	// color.NoColor is process-global and usually true under test (no tty);
	// force it on so the styling paths are exercised.
	old := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = old })

	f := &Formatter{Color: true}
	out, err := f.Format([]xgxcond.Bullet{
		{Role: xgxcond.RoleNone, Text: "boom"},
	}, xgxcond.KindError, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[", "headline should carry ANSI styling")
	assert.Contains(t, out, "boom")

	t.Run("color off passes text through", func(t *testing.T) {
		out, err := plain().Format([]xgxcond.Bullet{
			{Role: xgxcond.RoleNone, Text: "boom"},
		}, xgxcond.KindError, 0)
		require.NoError(t, err)
		assert.Equal(t, "boom", out)
	})

	t.Run("only the first unnamed line is the headline", func(t *testing.T) {
		out, err := plain().Format([]xgxcond.Bullet{
			{Role: xgxcond.RoleNone, Text: "first\nsecond"},
		}, xgxcond.KindMessage, 0)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond", out)
	})
}

func TestFormat_Wrapping(t *testing.T) {
	f := &Formatter{Width: 20}
	out, err := f.Format([]xgxcond.Bullet{
		{Role: xgxcond.RoleBullet, Text: "one two three four five six"},
	}, xgxcond.KindMessage, 0)
	require.NoError(t, err)
	assert.Equal(t, "• one two three four\n  five six", out)

	t.Run("indent shrinks the budget", func(t *testing.T) {
		narrow := &Formatter{Width: 20}
		out, err := narrow.Format([]xgxcond.Bullet{
			{Role: xgxcond.RoleBullet, Text: "one two three four five six"},
		}, xgxcond.KindMessage, 6)
		require.NoError(t, err)
		assert.Equal(t, "• one two\n  three four\n  five six", out)
	})

	t.Run("zero width never wraps", func(t *testing.T) {
		out, err := plain().Format([]xgxcond.Bullet{
			{Role: xgxcond.RoleBullet, Text: "a very long line that would certainly wrap under any budget"},
		}, xgxcond.KindMessage, 0)
		require.NoError(t, err)
		assert.NotContains(t, out, "\n")
	})
}

func TestFormat_Unescape(t *testing.T) {
	out, err := plain().Format([]xgxcond.Bullet{
		{Role: xgxcond.RoleBullet, Text: "value is {{x}} here"},
	}, xgxcond.KindMessage, 0)
	require.NoError(t, err)
	assert.Equal(t, "• value is {x} here", out)
}

func TestNew(t *testing.T) {
	f := New()
	assert.True(t, f.Color)
	assert.Equal(t, xgxcond.DefaultWidth, f.Width)
}
