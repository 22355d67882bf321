package buildfile

import "strings"

// Category classifies a dependency reference and decides where in a
// declaration file it is inserted. Categories with a section marker keep
// dependency lists grouped; CategoryOther always appends at the list tail.
type Category string

const (
	CategoryCore    Category = "core"
	CategoryData    Category = "data"
	CategoryCommon  Category = "common"
	CategoryFeature Category = "feature"
	CategoryOther   Category = "other"
)

// sectionOrder is the stable ordering of marker sections inside a
// dependency list: core, data and common sections precede features.
var sectionOrder = []Category{CategoryCore, CategoryData, CategoryCommon, CategoryFeature}

// Marker returns the section marker comment for the category, or "" for
// CategoryOther.
func (c Category) Marker() string {
	switch c {
	case CategoryCore:
		return "# Core modules"
	case CategoryData:
		return "# Data modules"
	case CategoryCommon:
		return "# Common modules"
	case CategoryFeature:
		return "# Feature modules"
	}
	return ""
}

// markerCategory maps a trimmed comment line back to its category.
func markerCategory(line string) (Category, bool) {
	for _, c := range sectionOrder {
		if line == c.Marker() {
			return c, true
		}
	}
	return "", false
}

// CategoryForPath infers the insertion category from a workspace-relative
// module path such as "Features/Login" or "//Data/Net". The first path
// segment decides, so a bare parent-level package like "Core" classifies
// the same as "Core/Logging".
func CategoryForPath(path string) Category {
	path = strings.TrimPrefix(path, "//")
	root, _, _ := strings.Cut(path, "/")
	switch root {
	case "Core":
		return CategoryCore
	case "Data":
		return CategoryData
	case "Common":
		return CategoryCommon
	case "Features":
		return CategoryFeature
	}
	return CategoryOther
}
