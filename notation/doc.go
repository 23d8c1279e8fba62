// SPDX-License-Identifier: MIT

// Package notation reads machine descriptions, one per line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The bracketed field is the light pattern ('#' lit, '.' dark, index 0 on the
// left), each parenthesised group is a button listing the indices it affects,
// and the braced field holds the joltage counter targets. Fields are separated
// by whitespace. The pattern comes first and the joltage block last. Every
// button index must fall inside both the pattern width and the joltage list.
//
// Malformed input yields an error wrapping ErrSyntax (or an effect sentinel
// for range problems) that names the offending 1-based line.
package notation
