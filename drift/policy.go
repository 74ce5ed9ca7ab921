package drift

import "context"

// Outcome tags the result of a single fetch
type Outcome int

const (
	// OutcomeOK means the fetch succeeded
	OutcomeOK Outcome = iota
	// OutcomeDegraded means the fetch failed and was replaced by an empty result
	OutcomeDegraded
	// OutcomeFailed means the fetch failed and aborts the run
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Policy decides once how fetch errors are handled across the run.
//
// By default listing errors (projects, environments of a project) degrade to an
// empty result while environment detail errors abort the run. StrictListing
// makes listing errors abort the run as well. A listing that fails after the
// run was cancelled always aborts.
type Policy struct {
	StrictListing bool
}

// ListingOutcome classifies a project or environment listing error made under ctx
func (p Policy) ListingOutcome(ctx context.Context, err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if p.StrictListing || ctx.Err() != nil {
		return OutcomeFailed
	}
	return OutcomeDegraded
}

// DetailOutcome classifies an environment detail error
func (p Policy) DetailOutcome(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	return OutcomeFailed
}
