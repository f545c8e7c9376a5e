package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField is returned when required copy is empty.
	ErrMissingField = errors.New("required field is empty")

	// ErrNoPresenter is returned for a workshop with neither a leader nor
	// leaders.
	ErrNoPresenter = errors.New("workshop has no leader or leaders")

	// ErrAmbiguousPresenter is returned for a workshop with both a leader
	// and leaders.
	ErrAmbiguousPresenter = errors.New("workshop has both a leader and leaders")

	// ErrDuplicateWorkshop is returned when two workshops share an ID.
	ErrDuplicateWorkshop = errors.New("duplicate workshop ID")
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", field, ErrMissingField)
	}
	return nil
}

func requiredAll(field string, values []string) error {
	if len(values) < 1 {
		return fmt.Errorf("%s: %w", field, ErrMissingField)
	}
	var errs []error
	for i, value := range values {
		errs = append(errs, required(fmt.Sprintf("%s[%d]", field, i), value))
	}
	return errors.Join(errs...)
}

// Validate checks that every field of the section copy is filled in.
func (s SectionCopy) Validate() error {
	return errors.Join(
		required("eyebrow", s.Eyebrow),
		required("heading", s.Heading),
		required("subheading", s.Subheading),
		requiredAll("body", s.BodyParagraphs),
		required("closing", s.ClosingStatement),
		required("image", s.Image),
		required("imageAlt", s.ImageAlt),
	)
}

// Validate checks the entry's copy and that it has exactly one presenter
// shape.
func (w WorkshopEntry) Validate() error {
	errs := []error{
		required("id", w.ID),
		required("title", w.Title),
		required("description", w.Description),
		required("image", w.Image),
		required("icon", w.Icon),
	}
	switch {
	case w.Leader != nil && len(w.Leaders) > 0:
		errs = append(errs, ErrAmbiguousPresenter)
	case w.Leader != nil:
		errs = append(errs,
			required("leader.name", w.Leader.Name),
			required("leader.title", w.Leader.Title),
		)
		for i, highlight := range w.Leader.Highlights {
			errs = append(errs, required(fmt.Sprintf("leader.highlights[%d]", i), highlight))
		}
	case len(w.Leaders) > 0:
		for i, person := range w.Leaders {
			errs = append(errs,
				required(fmt.Sprintf("leaders[%d].name", i), person.Name),
				required(fmt.Sprintf("leaders[%d].title", i), person.Title),
			)
		}
	default:
		errs = append(errs, ErrNoPresenter)
	}
	if err := errors.Join(errs...); err != nil {
		name := w.ID
		if name == "" {
			name = w.Title
		}
		return fmt.Errorf("workshop %q: %w", name, err)
	}
	return nil
}

// Validate checks the section header and every entry.
func (w WorkshopsCopy) Validate() error {
	errs := []error{
		required("eyebrow", w.Eyebrow),
		required("heading", w.Heading),
	}
	seen := map[string]struct{}{}
	for _, entry := range w.Entries {
		errs = append(errs, entry.Validate())
		if entry.ID == "" {
			continue
		}
		if _, ok := seen[entry.ID]; ok {
			errs = append(errs, fmt.Errorf("%q: %w", entry.ID, ErrDuplicateWorkshop))
		}
		seen[entry.ID] = struct{}{}
	}
	return errors.Join(errs...)
}

// Validate checks the whole bundle.
func (b Bundle) Validate() error {
	var errs []error
	if err := required("event.name", b.Event.Name); err != nil {
		errs = append(errs, err)
	}
	if err := b.About.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("about: %w", err))
	}
	if err := b.Workshops.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("workshops: %w", err))
	}
	return errors.Join(errs...)
}
