package netbanx

import (
	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// Fixed gateway endpoints per environment. The legacy generation lives on
// the webservices hosts, the REST generation on the api hosts.
const (
	legacyTestBase = "https://webservices.test.optimalpayments.com/"
	legacyLiveBase = "https://webservices.optimalpayments.com/"
	restTestBase   = "https://api.test.netbanx.com"
	restLiveBase   = "https://api.netbanx.com"

	legacyServicePath = "creditcardWS/CreditCardService/v1"
)

// endpoints resolves the per-environment base URLs. An unrecognized
// environment is a configuration fault, caught before any network call.
func endpoints(env gateway.Environment) (legacyURL, restURL string, err error) {
	switch env {
	case gateway.EnvironmentTest:
		return legacyTestBase + legacyServicePath, restTestBase, nil
	case gateway.EnvironmentLive:
		return legacyLiveBase + legacyServicePath, restLiveBase, nil
	}
	return "", "", gateway.NewConfigurationError("environment", string(env))
}
