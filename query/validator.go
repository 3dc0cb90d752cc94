package query

// SortDirection represents ordering direction for sortable fields.
type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

// Defaults applied when sortby or order is absent.
const (
	DefaultSortField     = FieldCreationDate
	DefaultSortDirection = SortDirectionDesc
)

// Descriptor is the validated form of a listing query. An empty Type or a
// nil TechTags means no constraint on that field.
type Descriptor struct {
	Type          string
	TechTags      []string
	SortField     Field
	SortDirection SortDirection
}

// step inspects params and returns d extended with what it validated.
type step func(params Params, d Descriptor) (Descriptor, error)

// pipeline runs in this exact order; the first failure is the one reported.
var pipeline = []step{
	checkUnknownFields,
	checkProhibitedFilters,
	checkSortBy,
	checkOrder,
	checkType,
	checkTechTags,
}

// Validate checks params and returns the query descriptor, or a
// *ValidationError for the first rule the query breaks. A parameter with an
// empty value is present: "sortby=" is rejected rather than defaulted.
func Validate(params Params) (Descriptor, error) {
	d := Descriptor{
		SortField:     DefaultSortField,
		SortDirection: DefaultSortDirection,
	}
	for _, s := range pipeline {
		next, err := s(params, d)
		if err != nil {
			return Descriptor{}, err
		}
		d = next
	}
	return d, nil
}

func checkUnknownFields(params Params, d Descriptor) (Descriptor, error) {
	for _, name := range params.Names() {
		if !IsControlParam(name) && !IsField(name) {
			return d, unknownField(name)
		}
	}
	return d, nil
}

func checkProhibitedFilters(params Params, d Descriptor) (Descriptor, error) {
	for _, name := range params.Names() {
		if !FilterableParams[name] {
			return d, prohibitedFilter(name)
		}
	}
	return d, nil
}

func checkSortBy(params Params, d Descriptor) (Descriptor, error) {
	values, ok := params.Lookup(ParamSortBy)
	if !ok {
		return d, nil
	}
	if len(values) != 1 || !SortableFields[Field(values[0])] {
		return d, errInvalidSortby
	}
	d.SortField = Field(values[0])
	return d, nil
}

func checkOrder(params Params, d Descriptor) (Descriptor, error) {
	values, ok := params.Lookup(ParamOrder)
	if !ok {
		return d, nil
	}
	if len(values) != 1 {
		return d, errInvalidOrder
	}
	switch dir := SortDirection(values[0]); dir {
	case SortDirectionAsc, SortDirectionDesc:
		d.SortDirection = dir
		return d, nil
	default:
		return d, errInvalidOrder
	}
}

func checkType(params Params, d Descriptor) (Descriptor, error) {
	values, ok := params.Lookup(string(FieldType))
	if !ok {
		return d, nil
	}
	if len(values) != 1 || !IsEnumValue(FieldType, values[0]) {
		return d, errInvalidType
	}
	d.Type = values[0]
	return d, nil
}

func checkTechTags(params Params, d Descriptor) (Descriptor, error) {
	values, ok := params.Lookup(string(FieldTechTags))
	if !ok {
		return d, nil
	}
	tags := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, tag := range values {
		if !IsEnumValue(FieldTechTags, tag) {
			return d, errInvalidTechTag
		}
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	d.TechTags = tags
	return d, nil
}
