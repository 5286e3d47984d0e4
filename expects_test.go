package minforth

// @generated from forth_test.go

//go:generate go run scripts/gen_expects.go -- forth_test.go expects_test.go

func withForthOptions(opts ...Option) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withOptions(opts...)
	}
}

func withForthProgram(lines ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withProgram(lines...)
	}
}

func withForthLines(lines ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withLines(lines...)
	}
}

func withForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withStack(values...)
	}
}

func expectForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectStack(values...)
	}
}

func expectForthError(err error) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectError(err)
	}
}

func expectForthErrorValue(err error) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectErrorValue(err)
	}
}

func expectForthErrorMessage(mess string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectErrorMessage(mess)
	}
}

func expectForthErrorLine(line int, text string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectErrorLine(line, text)
	}
}

func expectForthDefinitions(names ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectDefinitions(names...)
	}
}

func expectForthDump(dump string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectDump(dump)
	}
}

func expectForthTrace(lines ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectTrace(lines...)
	}
}
