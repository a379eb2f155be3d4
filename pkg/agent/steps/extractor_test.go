package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStepMarkers(t *testing.T) {
	text := "Step 1: Isolate the variable\nStep 2: Divide both sides by 2"
	result := Extract(text)

	assert.Equal(t, []string{"Isolate the variable", "Divide both sides by 2"}, result)
}

func TestExtractNumberedList(t *testing.T) {
	text := "1. Expand the brackets\n2. Collect like terms\n3. Solve for x"
	result := Extract(text)

	assert.Equal(t, []string{"Expand the brackets", "Collect like terms", "Solve for x"}, result)
}

func TestExtractCaseInsensitiveMarkers(t *testing.T) {
	text := "step 1: First move\nSTEP 2: Second move"
	result := Extract(text)

	assert.Equal(t, []string{"First move", "Second move"}, result)
}

func TestExtractParagraphFallback(t *testing.T) {
	text := "Start by drawing the triangle\n\nThen apply the Pythagorean theorem"
	result := Extract(text)

	assert.Equal(t, []string{"Start by drawing the triangle", "Then apply the Pythagorean theorem"}, result)
}

func TestExtractLineFallback(t *testing.T) {
	text := "Add the exponents\nSimplify the base"
	result := Extract(text)

	assert.Equal(t, []string{"Add the exponents", "Simplify the base"}, result)
}

func TestExtractWholeTextFallback(t *testing.T) {
	text := "The answer is simply four"
	result := Extract(text)

	assert.Equal(t, []string{"The answer is simply four"}, result)
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   \n  "))
}
