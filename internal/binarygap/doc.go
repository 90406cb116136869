// Package binarygap computes the binary gap of a positive integer.
//
// A binary gap is a maximal run of zero bits bounded by a one bit on both
// sides in the base-2 representation of a number, most significant bit first
// and without leading zeros. The gap of a number is the length of its longest
// such run, or 0 when it has none.
//
//	9    = 1001        -> 2
//	529  = 1000010001  -> 4
//	20   = 10100       -> 1 (the trailing zero is not enclosed)
//	32   = 100000      -> 0
//
// # Entry points
//
// Compute, ComputeUint and ComputeBig cover native signed, native unsigned and
// arbitrary precision inputs. They share one scan and agree on every value.
// Parse turns command-line text into a validated integer. Analyze returns the
// gap together with the binary string and the position of the longest gap.
//
// # Errors
//
// Every entry point rejects non-positive input with an error wrapping
// ErrInvalidArgument. Parse uses the same error for text that is not a base-10
// integer.
//
// All functions are pure and safe for concurrent use.
package binarygap
