// Package ranges converts between sorted integer lists and the compact
// range notation used for page selections and port lists:
//
//	[0 1 2 5 7 8 9]  ⇄  "0-2,5,7-9"
//
// A maximal run of three or more consecutive integers collapses to
// "start-end"; shorter runs are listed one by one. Negative numbers are
// allowed on both sides, so [-3 -2 -1] renders as "-3--1".
package ranges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxParsed bounds the number of integers Parse will materialise.
const MaxParsed = 1 << 20

// Sentinel errors returned by Parse.
var (
	// ErrSyntax indicates an item that is neither an integer nor an
	// ascending "a-b" range.
	ErrSyntax = errors.New("ranges: invalid syntax")

	// ErrTooLarge indicates the expanded list would exceed MaxParsed.
	ErrTooLarge = errors.New("ranges: expansion too large")
)

// minRun is the shortest run written as "start-end".
const minRun = 3

// Extract renders nums in range notation. Input is expected sorted and
// free of duplicates; anything else is rendered run by run as given.
// Runs ending at the last element are closed exactly like inner runs.
//
// Complexity: O(len(nums)).
func Extract(nums []int) string {
	var b strings.Builder
	for i := 0; i < len(nums); {
		j := i
		// nums[j] < nums[j+1] first keeps nums[j+1]-1 from wrapping.
		for j+1 < len(nums) && nums[j] < nums[j+1] && nums[j+1]-1 == nums[j] {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		if j-i+1 >= minRun {
			b.WriteString(strconv.Itoa(nums[i]))
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(nums[j]))
		} else {
			for k := i; k <= j; k++ {
				if k > i {
					b.WriteByte(',')
				}
				b.WriteString(strconv.Itoa(nums[k]))
			}
		}
		i = j + 1
	}

	return b.String()
}

// Parse is the inverse of Extract. Items are comma-separated and may carry
// surrounding blanks; each is an integer or an inclusive "a-b" range with
// a <= b. The empty string yields an empty, non-nil slice.
//
// Errors: ErrSyntax, ErrTooLarge.
func Parse(s string) ([]int, error) {
	out := []int{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}

	for _, raw := range strings.Split(s, ",") {
		item := strings.TrimSpace(raw)
		lo, hi, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		// uint arithmetic gives the exact span for any lo <= hi.
		if uint(hi)-uint(lo) >= uint(MaxParsed-len(out)) {
			return nil, fmt.Errorf("%w: %q", ErrTooLarge, item)
		}
		for v := lo; ; v++ {
			out = append(out, v)
			if v == hi {
				break
			}
		}
	}

	return out, nil
}

// parseItem splits "a", "a-b" or "-a--b" into its bounds.
func parseItem(item string) (lo, hi int, err error) {
	if item == "" {
		return 0, 0, fmt.Errorf("%w: empty item", ErrSyntax)
	}

	// Skip a leading sign so "-3" is not read as a range.
	dash := strings.IndexByte(item[1:], '-')
	if dash < 0 {
		v, err := strconv.Atoi(item)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrSyntax, item)
		}

		return v, v, nil
	}
	dash++

	lo, errLo := strconv.Atoi(item[:dash])
	hi, errHi := strconv.Atoi(item[dash+1:])
	if errLo != nil || errHi != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrSyntax, item)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: descending range %q", ErrSyntax, item)
	}

	return lo, hi, nil
}
