// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math/big"

// Functions for prime number calculations. Node table and cache sizes are
// kept prime so the hash functions spread well.

func hasFactor(src int, n int) bool {
	return (src != n) && (src%n == 0)
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) || hasFactor(src, 11) || hasFactor(src, 13)
}

// primeGte returns the first prime greater than or equal to src.
func primeGte(src int) int {
	if src < 2 {
		return 2
	}
	if src%2 == 0 {
		src++
	}
	for {
		if !hasEasyFactors(src) {
			// ProbablyPrime is 100% accurate for inputs less than 2^64.
			if big.NewInt(int64(src)).ProbablyPrime(0) {
				return src
			}
		}
		src = src + 2
	}
}

// primeLte returns the last prime less than or equal to src.
func primeLte(src int) int {
	if src < 3 {
		return 2
	}
	if src%2 == 0 {
		src--
	}
	for {
		if !hasEasyFactors(src) {
			if big.NewInt(int64(src)).ProbablyPrime(0) {
				return src
			}
		}
		src = src - 2
	}
}
