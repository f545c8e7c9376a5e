// Package reveal implements the reveal-once viewport animation used by every
// animated element on the site.
//
// Each element owns a State that starts Hidden and moves to Revealed the
// first time the element intersects the viewport. The transition happens at
// most once: leaving the viewport afterwards changes nothing. A Motion
// describes how the two phases look, and Motion.Directive maps a Phase to the
// concrete presentation.
//
// The package has no rendering surface of its own. A Tracker drives States
// from an Observer (intersection notifications) and a Layout (bounding
// boxes), so the behaviour can be exercised with fakes. In the browser the
// same contract is carried out by ClientScript, configured through the
// attributes Attrs writes onto each element.
package reveal
