package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInputAcceptsMathQuestions(t *testing.T) {
	g := NewGateway(nil)

	cases := []string{
		"Solve 2x + 3 = 7",
		"what is the derivative of sin x",
		"Explain the Pythagorean theorem",
		"probability of rolling two sixes",
	}

	for _, input := range cases {
		assert.True(t, g.ValidateInput(context.Background(), input), input)
	}
}

func TestValidateInputRejectsEmptyAndOffTopic(t *testing.T) {
	g := NewGateway(nil)

	cases := []string{
		"",
		"    ",
		"tell me about your favourite movie",
	}

	for _, input := range cases {
		assert.False(t, g.ValidateInput(context.Background(), input), input)
	}
}

func TestValidateInputRejectsProhibitedContent(t *testing.T) {
	g := NewGateway(nil)

	// prohibited content is rejected even when math symbols are present
	assert.False(t, g.ValidateInput(context.Background(), "solve for my password = 123"))
	assert.False(t, g.ValidateInput(context.Background(), "calculate my credit card number"))
}

func TestValidateOutput(t *testing.T) {
	g := NewGateway(nil)

	assert.True(t, g.ValidateOutput([]string{"Add 2 to both sides", "x = 2"}))
	assert.False(t, g.ValidateOutput([]string{"step one", "here is a password dump"}))
}
