// Package lookup builds the selection lists used by creation and edit
// forms. Every list starts with a sentinel "please select" option whose
// value is 0; the value 0 never resolves to a real entity and is rejected
// downstream as a missing reference.
package lookup

import (
	"sort"
	"strconv"

	"leasing-service/internal/repository"
)

// Option is one entry of a selection list.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const (
	lesseePlaceholder       = "(Select a lessee...)"
	propertyTypePlaceholder = "(Select a property type...)"
)

// Service produces lookup lists from the repositories.
type Service struct {
	lessees *repository.LesseeRepository
	types   *repository.PropertyTypeRepository
}

func NewService(lessees *repository.LesseeRepository, types *repository.PropertyTypeRepository) *Service {
	return &Service{lessees: lessees, types: types}
}

// LesseeOptions returns all lessees labeled "<FullName> (<Document>)",
// sorted ascending by label, with the sentinel option prepended. Ties keep
// insertion order.
func (s *Service) LesseeOptions() ([]Option, error) {
	lessees, err := s.lessees.ListWithUser()
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(lessees)+1)
	for _, lessee := range lessees {
		options = append(options, Option{
			Label: lessee.User.FullNameWithDocument(),
			Value: strconv.FormatUint(uint64(lessee.ID), 10),
		})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})

	return prepend(options, lesseePlaceholder), nil
}

// PropertyTypeOptions returns all property types labeled by name, sorted
// ascending, with the sentinel option prepended.
func (s *Service) PropertyTypeOptions() ([]Option, error) {
	types, err := s.types.List()
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(types)+1)
	for _, propertyType := range types {
		options = append(options, Option{
			Label: propertyType.Name,
			Value: strconv.FormatUint(uint64(propertyType.ID), 10),
		})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})

	return prepend(options, propertyTypePlaceholder), nil
}

func prepend(options []Option, placeholder string) []Option {
	return append([]Option{{Label: placeholder, Value: "0"}}, options...)
}
