// SPDX-License-Identifier: MIT

package core

import "strings"

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// joinSig concatenates c with commas into a single signature.
func joinSig(c []string) string {
	return strings.Join(c, ",")
}

// minimalRotation implements Booth's algorithm: it returns the
// lexicographically minimal rotation of s as a new slice, in O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the minimal rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}
