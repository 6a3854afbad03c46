package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_control(t *testing.T) {
	engineTestCases{
		engineTest("run").
			withInput("[ 1 2 + ] run").
			expectStack(Number(3)),
		engineTest("run needs a list").
			withInput("1 run").
			expectError(ErrTypeMismatch),
		engineTest("run underflow").
			withInput("run").
			expectError(ErrStackUnderflow),

		engineTest("times").
			withInput("0 [ 1 + ] 3 times").
			expectStack(Number(3)),
		engineTest("times truncates its count").
			withInput("0 [ 1 + ] 2.7 times").
			expectStack(Number(2)),
		engineTest("times never runs for a negative count").
			withInput("0 [ 1 + ] -1 times").
			expectStack(Number(0)),
		engineTest("times ignores break").
			withInput("0 [ 1 + true ?break ] 3 times").
			expectStack(Number(3)),

		engineTest("iftrue").
			withInput("true [ 1 ] iftrue false [ 2 ] iftrue").
			expectStack(Number(1)),
		engineTest("iffalse").
			withInput("true [ 1 ] iffalse false [ 2 ] iffalse").
			expectStack(Number(2)),
		engineTest("iftrue needs a boolean").
			withInput("1 [ 2 ] iftrue").
			expectError(ErrTypeMismatch),

		engineTest("while condition must leave a result").
			withInput("[ ] [ ] while").
			expectError(ErrStackUnderflow),
		engineTest("while condition must be boolean").
			withInput("[ 1 ] [ ] while").
			expectError(ErrTypeMismatch),

		engineTest("loop until break").
			withInput("VAR e 0 e ! [ e @ 3 >= ?break e inc ] loop e @").
			expectStack(Number(3)),
		engineTest("continue restarts the quotation").
			withInput("VAR f 0 f ! [ f inc f @ 3 < ?continue 100 true ?break 200 ] loop f @").
			expectStack(Number(100), Number(3)),
		engineTest("break ends only the innermost quotation").
			withInput("[ 1 [ true ?break 2 ] run 3 ] run").
			expectStack(Number(1), Number(3)),
		engineTest("false signals do nothing").
			withInput("[ 1 false ?break 2 false ?continue 3 ] run").
			expectStack(Number(1), Number(2), Number(3)),
		engineTest("signals at top level").
			withInput("true ?continue 1 true ?break 2").
			expectStack(Number(1), Number(2)),
		engineTest("signal needs a boolean").
			withInput("1 ?break").
			expectError(ErrTypeMismatch),
		engineTest("break within a definition within a loop").
			withInput(": done? dup 3 >= ?break ;").
			withInput("0 [ 1 + done? ] loop").
			expectStack(Number(3)),
		engineTest("break leaves the enclosing loop state alone").
			withInput("VAR n 0 n !").
			withInput("[ [ true ?break ] loop n inc n @ 2 >= ?break ] loop n @").
			expectStack(Number(2)).
			expectThat(func(t *testing.T, e *Engine) {
				assert.False(t, e.breaking, "expected break state to be restored")
			}),
	}.run(t)
}

func TestFlow_String(t *testing.T) {
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "restart", Restart.String())
	assert.Equal(t, "terminate", Terminate.String())
	assert.Equal(t, "invalid flow", Flow(99).String())
}
