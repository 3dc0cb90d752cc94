package query

// Operator is the comparison a Filter applies.
type Operator string

const (
	// OpEquals matches records whose field equals Values[0].
	OpEquals Operator = "eq"
	// OpContainsAll matches records whose list field holds every value.
	OpContainsAll Operator = "all"
)

// Filter is a single store constraint.
type Filter struct {
	Field    Field
	Operator Operator
	Values   []string
}

// Sort captures ordering preferences for a listing.
type Sort struct {
	Field     Field
	Direction SortDirection
}

// Descending reports whether the sort runs from high to low.
func (s Sort) Descending() bool {
	return s.Direction == SortDirectionDesc
}

// StoreQuery is what a record store needs to answer a listing. Filters are
// combined conjunctively.
type StoreQuery struct {
	Filters []Filter
	Sort    Sort
}

// Translate maps a validated descriptor to store primitives. It assumes d
// came from Validate.
func Translate(d Descriptor) StoreQuery {
	q := StoreQuery{
		Sort: Sort{Field: d.SortField, Direction: d.SortDirection},
	}
	if d.Type != "" {
		q.Filters = append(q.Filters, Filter{
			Field:    FieldType,
			Operator: OpEquals,
			Values:   []string{d.Type},
		})
	}
	if len(d.TechTags) > 0 {
		q.Filters = append(q.Filters, Filter{
			Field:    FieldTechTags,
			Operator: OpContainsAll,
			Values:   append([]string(nil), d.TechTags...),
		})
	}
	return q
}
