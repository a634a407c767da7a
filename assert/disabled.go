//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// Assertions are disabled in this build; this is a no-op.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// Assertions are disabled in this build; this is a no-op.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// Nil asserts that the given value is nil.
// Assertions are disabled in this build; this is a no-op.
func Nil(value any, args ...any) {
	// Intentionally left blank
}

// NotNil asserts that the given value is not nil.
// Assertions are disabled in this build; this is a no-op.
func NotNil(value any, args ...any) {
	// Intentionally left blank
}
