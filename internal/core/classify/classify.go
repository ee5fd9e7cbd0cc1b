// Package classify provides predicates over agenda classification codes.
//
// A code is the short "attach" string of an agenda item. Letter-led codes mark
// executive officer reports, whole-digit codes mark special orders, and
// digit-led codes with an uppercase suffix are sub-items hanging off a
// backbone item. All predicates are total: empty or irregular codes report false.
package classify

import "regexp"

var digitFamilyRe = regexp.MustCompile(`^[0-9]+[A-Z]*$`)

// StartsWithDigit reports whether the first byte of code is an ASCII digit.
func StartsWithDigit(code string) bool {
	return code != "" && isDigit(code[0])
}

// StartsWithLetter reports whether the first byte of code is an uppercase ASCII letter.
func StartsWithLetter(code string) bool {
	return code != "" && code[0] >= 'A' && code[0] <= 'Z'
}

// IsWholeDigits reports whether code is non-empty and made only of digits.
func IsWholeDigits(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isDigit(code[i]) {
			return false
		}
	}
	return true
}

// IsDigitFamily reports whether code is one or more digits followed by zero or
// more uppercase letters, e.g. "7", "7A" or "12BC".
func IsDigitFamily(code string) bool {
	return digitFamilyRe.MatchString(code)
}

// IsBackbone reports whether code anchors the main agenda sequence.
func IsBackbone(code string) bool {
	return StartsWithLetter(code) || IsWholeDigits(code)
}

// IsSubItem reports whether code is a suffixed special order such as "2A".
func IsSubItem(code string) bool {
	return IsDigitFamily(code) && !IsWholeDigits(code)
}

// Class is a coarse label for a code, used in listings.
type Class string

const (
	ClassExecutive    Class = "executive"
	ClassSpecialOrder Class = "special-order"
	ClassSubItem      Class = "sub-item"
	ClassOther        Class = "other"
)

// Of returns the Class of code.
func Of(code string) Class {
	switch {
	case StartsWithLetter(code):
		return ClassExecutive
	case IsWholeDigits(code):
		return ClassSpecialOrder
	case IsSubItem(code):
		return ClassSubItem
	default:
		return ClassOther
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
