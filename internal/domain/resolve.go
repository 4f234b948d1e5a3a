package domain

import (
	"fmt"
	"strings"
)

// ResolveCourse maps a user-supplied name to one catalog entry. An exact
// normalized match wins over a substring match; within a pass the earliest
// entry in catalog order wins.
func ResolveCourse(query string, catalog Catalog) (ResolvedCourse, error) {
	wanted := NormalizeName(query)

	for _, entry := range catalog {
		if NormalizeName(entry.Name) == wanted {
			return ResolvedCourse{DisplayName: entry.Name, BaseURL: entry.BaseURL}, nil
		}
	}

	for _, entry := range catalog {
		if strings.Contains(NormalizeName(entry.Name), wanted) {
			return ResolvedCourse{DisplayName: entry.Name, BaseURL: entry.BaseURL}, nil
		}
	}

	return ResolvedCourse{}, fmt.Errorf("%w: %q", ErrCourseNotFound, query)
}
