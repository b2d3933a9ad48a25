package endpoints

// Endpoints collects every service endpoint exposed over transports.
type Endpoints struct {
	PlannerEndpoint PlannerEndpoint
}
