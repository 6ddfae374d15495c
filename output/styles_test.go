package output

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestStylesDegradeToPlainText(t *testing.T) {
	// A buffer is not a terminal, so every helper must pass text
	// through unchanged.
	styles := NewStyles(&bytes.Buffer{})

	assert.Equal(t, "ok", styles.Success("ok"))
	assert.Equal(t, "boom", styles.Error("boom"))
	assert.Equal(t, "12.50", styles.Income("12.50"))
	assert.Equal(t, "-4", styles.Expense("-4"))
	assert.Equal(t, "MUST", styles.Keyword("MUST"))
	assert.Equal(t, "03-05", styles.Dim("03-05"))
	assert.Equal(t, "Over budget", styles.Warning("Over budget"))
}

func TestCategoryFallsBackOnUnknownColor(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{})

	assert.Equal(t, "Food", styles.Category("Food", "chartreuse"))
	assert.Equal(t, "Food", styles.Category("Food", "red"))
}
