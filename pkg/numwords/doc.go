// Package numwords converts non-negative integers and simple decimals to
// their English word form and back.
//
// Integers are spelled in base-1000 chunks ("two hundred thirty four
// thousand"); decimals append "point" followed by one word per fraction
// digit ("one point five").
//
// The decoder accumulates a running total and trusts that magnitude words
// arrive in descending order, as in ordinary English numerals. Malformed
// phrases such as "thousand thousand" or "five million two billion" decode
// to a number rather than an error; only unknown words and uint64 overflow
// are rejected.
//
// All functions are safe for concurrent use.
package numwords
