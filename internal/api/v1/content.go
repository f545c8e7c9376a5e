// Package v1 is the read-only JSON content API. It serves the same copy the
// site renders.
package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"impractical.co/elysion/content"
)

type GetEventInput struct{}

type GetEventOutput struct {
	Body content.Event
}

type GetAboutInput struct{}

type GetAboutOutput struct {
	Body content.SectionCopy
}

type ListWorkshopsInput struct{}

type ListWorkshopsOutput struct {
	Body content.WorkshopsCopy
}

type GetWorkshopInput struct {
	ID string `path:"id" minLength:"1" maxLength:"64" doc:"Workshop ID, e.g. photography"`
}

type GetWorkshopOutput struct {
	Body content.WorkshopEntry
}

// RegisterContentRoutes registers the content operations on api. bundle must
// already be validated.
func RegisterContentRoutes(api huma.API, bundle content.Bundle) {
	huma.Register(api, huma.Operation{
		OperationID: "get-event",
		Method:      http.MethodGet,
		Path:        "/event",
		Summary:     "Get the event's name and tagline",
		Tags:        []string{"Content"},
	}, func(_ context.Context, _ *GetEventInput) (*GetEventOutput, error) {
		return &GetEventOutput{Body: bundle.Event}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-about",
		Method:      http.MethodGet,
		Path:        "/about",
		Summary:     "Get the About section copy",
		Tags:        []string{"Content"},
	}, func(_ context.Context, _ *GetAboutInput) (*GetAboutOutput, error) {
		return &GetAboutOutput{Body: bundle.About}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-workshops",
		Method:      http.MethodGet,
		Path:        "/workshops",
		Summary:     "List the workshops in display order",
		Tags:        []string{"Workshops"},
	}, func(_ context.Context, _ *ListWorkshopsInput) (*ListWorkshopsOutput, error) {
		return &ListWorkshopsOutput{Body: bundle.Workshops}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-workshop",
		Method:      http.MethodGet,
		Path:        "/workshops/{id}",
		Summary:     "Get a workshop by ID",
		Tags:        []string{"Workshops"},
	}, func(_ context.Context, input *GetWorkshopInput) (*GetWorkshopOutput, error) {
		entry, ok := bundle.Workshops.Workshop(input.ID)
		if !ok {
			return nil, huma.Error404NotFound("workshop not found")
		}
		return &GetWorkshopOutput{Body: entry}, nil
	})
}
