package render

// ResourceRelationship controls the relationship between two resources. It's
// used to control the order in which CSS and JavaScript resources are rendered
// to the page.
type ResourceRelationship string

const (
	// ResourceRelationshipAfter indicates that the resource should be
	// rendered after the resource it's being compared to.
	ResourceRelationshipAfter ResourceRelationship = "after"

	// ResourceRelationshipBefore indicates that the resource should be
	// rendered before the resource it's being compared to.
	ResourceRelationshipBefore ResourceRelationship = "before"

	// ResourceRelationshipNeutral indicates that the resource has no
	// restrictions about where it's rendered in relation to the resource
	// it's being compared to.
	ResourceRelationshipNeutral ResourceRelationship = "neutral"
)
