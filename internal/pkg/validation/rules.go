package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Course code pattern - uppercase letters followed by digits, e.g. CS101
	CourseCodePattern = `^[A-Z]{2,8}[0-9]{2,4}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 200
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// IsValidCourseCode checks whether a course code is uppercase alphanumeric in
// the catalog's code format.
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}
