package main

import "time"

// @generated from engine_test.go

//go:generate go run scripts/gen_expects.go -- engine_test.go expects_test.go

func withEngineOptions(opts ...EngineOption) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withOptions(opts...)
	}
}

func withEngineStack(values ...Value) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withStack(values...)
	}
}

func withEngineInput(input string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withInput(input)
	}
}

func withEngineTimeout(timeout time.Duration) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withTimeout(timeout)
	}
}

func expectEngineError(err error) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectError(err)
	}
}

func expectEngineStack(values ...Value) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectStack(values...)
	}
}

func expectEngineStackString(s string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectStackString(s)
	}
}

func expectEngineDefinition(name string, body string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectDefinition(name, body)
	}
}

func expectEngineUndefined(name string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectUndefined(name)
	}
}

func expectEngineCompiling(compiling bool) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectCompiling(compiling)
	}
}

func expectEngineThat(check engineCheck) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectThat(check)
	}
}

func expectEngineOutput(output string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectOutput(output)
	}
}

func expectEngineDump(dump string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectDump(dump)
	}
}
