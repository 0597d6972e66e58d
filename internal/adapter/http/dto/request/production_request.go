package request

type ProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

// CreateJourneyRequest may omit steps to get the default production route.
type CreateJourneyRequest struct {
	Steps []string `json:"steps"`
}

type JourneyResourcesRequest struct {
	Workstations []string `json:"workstations"`
	Operators    []string `json:"operators"`
}
