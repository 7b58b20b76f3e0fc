package common

import (
	"fmt"
	"os"
	"strings"
)

const EnvVerify = "RAWPNT_VERIFY"

type VerificationType string

const (
	EnvVerifyValueAll    VerificationType = "all"
	EnvVerifyValueAssert VerificationType = "assert"
)

func getEnvVerify() string {
	return strings.ToLower(os.Getenv(EnvVerify))
}

func IsVerificationEnabled(verification VerificationType) bool {
	env := getEnvVerify()
	return env == string(EnvVerifyValueAll) || env == strings.ToLower(string(verification))
}

// EnableVerifications sets `RAWPNT_VERIFY` and returns a function that
// restores the previous value.
func EnableVerifications(verification VerificationType) func() {
	previousEnv, had := os.LookupEnv(EnvVerify)
	_ = os.Setenv(EnvVerify, string(verification))
	return restore(previousEnv, had)
}

// EnableAllVerifications enables every verification and returns a function
// that restores the previous value.
func EnableAllVerifications() func() {
	return EnableVerifications(EnvVerifyValueAll)
}

// DisableVerifications unsets `RAWPNT_VERIFY` and returns a function that
// restores the previous value.
func DisableVerifications() func() {
	previousEnv, had := os.LookupEnv(EnvVerify)
	_ = os.Unsetenv(EnvVerify)
	return restore(previousEnv, had)
}

func restore(previousEnv string, had bool) func() {
	return func() {
		if had {
			_ = os.Setenv(EnvVerify, previousEnv)
			return
		}
		_ = os.Unsetenv(EnvVerify)
	}
}

// Verify runs f only when assertions are enabled. Constructors that take
// an unchecked precondition use it; arithmetic never does.
func Verify(f func()) {
	if IsVerificationEnabled(EnvVerifyValueAssert) {
		f()
	}
}

// Assert will panic with a given formatted message if the given condition is false.
func Assert(condition bool, msg string, v ...any) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+msg, v...))
	}
}
