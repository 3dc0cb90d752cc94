// Package query validates listing query parameters for the projects
// collection and translates them into store-neutral filter and sort values.
package query

// Field names a Project field as it appears in the API.
type Field string

const (
	FieldID                 Field = "id"
	FieldTitle              Field = "title"
	FieldOverview           Field = "overview"
	FieldDescription        Field = "description"
	FieldCreationDate       Field = "creationDate"
	FieldType               Field = "type"
	FieldTechTags           Field = "techTags"
	FieldBackendGithubLink  Field = "backendGithubLink"
	FieldFrontendGithubLink Field = "frontendGithubLink"
	FieldBackendHostedLink  Field = "backendHostedLink"
	FieldFrontendHostedLink Field = "frontendHostedLink"
	FieldMainImage          Field = "mainImage"
	FieldScreenshots        Field = "screenshots"
)

// Control parameters shape the result instead of filtering it.
const (
	ParamSortBy = "sortby"
	ParamOrder  = "order"
)

// Project types
const (
	TypeSolo  = "Solo"
	TypePair  = "Pair"
	TypeGroup = "Group"
)

// AllFieldNames lists the 13 fields every exposed project carries.
var AllFieldNames = []Field{
	FieldID,
	FieldTitle,
	FieldOverview,
	FieldDescription,
	FieldCreationDate,
	FieldType,
	FieldTechTags,
	FieldBackendGithubLink,
	FieldFrontendGithubLink,
	FieldBackendHostedLink,
	FieldFrontendHostedLink,
	FieldMainImage,
	FieldScreenshots,
}

// FilterableParams are the parameter names allowed in a listing query.
var FilterableParams = map[string]bool{
	string(FieldType):     true,
	string(FieldTechTags): true,
	ParamSortBy:           true,
	ParamOrder:            true,
}

// SortableFields are the fields a listing may be ordered by.
var SortableFields = map[Field]bool{
	FieldTitle:        true,
	FieldType:         true,
	FieldCreationDate: true,
}

// EnumValues holds the legal values of the enum-like fields.
var EnumValues = map[Field][]string{
	FieldType: {TypeSolo, TypePair, TypeGroup},
	FieldTechTags: {
		"Javascript",
		"PSQL",
		"Node.js",
		"Express",
		"Axios",
		"React",
		"Jest",
		"HTML",
		"CSS",
		"MongoDB",
		"Mongoose",
		"React Native",
		"Expo",
		"Firebase",
		"Mocha",
		"Chai",
	},
}

// columns maps API field names to storage column names.
var columns = map[Field]string{
	FieldID:                 "id",
	FieldTitle:              "title",
	FieldOverview:           "overview",
	FieldDescription:        "description",
	FieldCreationDate:       "creation_date",
	FieldType:               "type",
	FieldTechTags:           "tech_tags",
	FieldBackendGithubLink:  "backend_github_link",
	FieldFrontendGithubLink: "frontend_github_link",
	FieldBackendHostedLink:  "backend_hosted_link",
	FieldFrontendHostedLink: "frontend_hosted_link",
	FieldMainImage:          "main_image",
	FieldScreenshots:        "screenshots",
}

var fieldSet = func() map[string]bool {
	set := make(map[string]bool, len(AllFieldNames))
	for _, f := range AllFieldNames {
		set[string(f)] = true
	}
	return set
}()

// IsField reports whether name is one of the 13 project fields.
func IsField(name string) bool {
	return fieldSet[name]
}

// IsControlParam reports whether name is sortby or order.
func IsControlParam(name string) bool {
	return name == ParamSortBy || name == ParamOrder
}

// IsEnumValue reports whether value is legal for the enum-like field f.
func IsEnumValue(f Field, value string) bool {
	for _, v := range EnumValues[f] {
		if v == value {
			return true
		}
	}
	return false
}

// ColumnFor returns the storage column backing f, and false for names
// outside the catalog.
func ColumnFor(f Field) (string, bool) {
	col, ok := columns[f]
	return col, ok
}
