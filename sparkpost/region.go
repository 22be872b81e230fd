package sparkpost

import "fmt"

// Region selects which SparkPost API deployment receives transmissions.
type Region int

const (
	RegionStandard Region = iota
	RegionEU
)

const (
	standardBaseURL = "https://api.sparkpost.com"
	euBaseURL       = "https://api.eu.sparkpost.com"
)

// BaseURL returns the API base URL for the region.
func (r Region) BaseURL() string {
	if r == RegionEU {
		return euBaseURL
	}
	return standardBaseURL
}

func (r Region) String() string {
	if r == RegionEU {
		return "eu"
	}
	return "standard"
}

// UnmarshalText maps the USE_EU flag: only the literal "true" selects the EU
// region, every other value falls back to the standard one.
func (r *Region) UnmarshalText(text []byte) error {
	if string(text) == "true" {
		*r = RegionEU
	} else {
		*r = RegionStandard
	}
	return nil
}

// DeliveryPolicy decides what SendEmail returns when the remote call fails.
// Failures are logged under both policies.
type DeliveryPolicy int

const (
	// FireAndForget reports success once the request has been dispatched.
	FireAndForget DeliveryPolicy = iota
	// Propagate returns a DELIVERY_FAILED error to the caller.
	Propagate
)

func (p DeliveryPolicy) String() string {
	if p == Propagate {
		return "propagate"
	}
	return "fire-and-forget"
}

func (p *DeliveryPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "fire-and-forget":
		*p = FireAndForget
	case "propagate":
		*p = Propagate
	default:
		return fmt.Errorf("unknown delivery policy %q, expected fire-and-forget or propagate", text)
	}
	return nil
}
