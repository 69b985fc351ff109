package state

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Assignment is one parsed OUTPUT:SPEC token. Output is the raw output name
// or "make model serial" identifier as the user gave it; Workspaces is
// sorted and de-duplicated.
type Assignment struct {
	Output     string
	Workspaces []int32
}

// ParseAssignment parses an "output:spec" token where spec is a single
// number, a comma-separated list of numbers, or an inclusive range "a-b"
// with endpoints in either order. The colon separating output from spec is
// the last one in the token, so identifiers containing colons stay intact.
func ParseAssignment(token string) (Assignment, error) {
	sep := strings.LastIndex(token, ":")
	if sep < 0 {
		return Assignment{}, fmt.Errorf("%q: must contain a colon separating output from workspaces", token)
	}
	output, spec := token[:sep], token[sep+1:]
	if output == "" {
		return Assignment{}, fmt.Errorf("%q: empty output name", token)
	}

	var workspaces []int32
	for _, part := range strings.Split(spec, ",") {
		if left, right, ok := strings.Cut(part, "-"); ok {
			lo, err := parseNum(left)
			if err != nil {
				return Assignment{}, fmt.Errorf("%q: %w", token, err)
			}
			hi, err := parseNum(right)
			if err != nil {
				return Assignment{}, fmt.Errorf("%q: %w", token, err)
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			for num := lo; num <= hi; num++ {
				workspaces = append(workspaces, num)
			}
		} else {
			num, err := parseNum(part)
			if err != nil {
				return Assignment{}, fmt.Errorf("%q: %w", token, err)
			}
			workspaces = append(workspaces, num)
		}
	}

	sort.Slice(workspaces, func(i, j int) bool { return workspaces[i] < workspaces[j] })
	workspaces = dedup(workspaces)

	return Assignment{Output: output, Workspaces: workspaces}, nil
}

// ParseAssignments parses tokens left to right. A later token for the same
// output fully replaces the earlier one; the returned order is the order of
// last appearance.
func ParseAssignments(tokens []string) ([]Assignment, error) {
	byOutput := make(map[string]int)
	var assignments []Assignment
	for _, token := range tokens {
		assignment, err := ParseAssignment(token)
		if err != nil {
			return nil, err
		}
		if i, ok := byOutput[assignment.Output]; ok {
			assignments = append(assignments[:i], assignments[i+1:]...)
			for output, j := range byOutput {
				if j > i {
					byOutput[output] = j - 1
				}
			}
		}
		byOutput[assignment.Output] = len(assignments)
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

func parseNum(s string) (int32, error) {
	num, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid workspace number %q", s)
	}
	return int32(num), nil
}

func dedup(nums []int32) []int32 {
	if len(nums) == 0 {
		return nums
	}
	out := nums[:1]
	for _, n := range nums[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}
