//go:build nodebug

package logger

// Enabled is false when built with the nodebug tag. Code guarded by
// "if logger.Enabled" is then removed by the compiler.
const Enabled = false
