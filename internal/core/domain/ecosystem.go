package domain

import "strings"

// Ecosystem identifies one of the supported package managers.
type Ecosystem string

// Supported ecosystems.
const (
	EcosystemNPM    Ecosystem = "npm"
	EcosystemPip    Ecosystem = "pip"
	EcosystemNuGet  Ecosystem = "nuget"
	EcosystemAPK    Ecosystem = "apk"
	EcosystemDocker Ecosystem = "docker"
)

// Ecosystems returns every supported ecosystem in a stable order.
func Ecosystems() []Ecosystem {
	return []Ecosystem{
		EcosystemNPM,
		EcosystemPip,
		EcosystemNuGet,
		EcosystemAPK,
		EcosystemDocker,
	}
}

// String returns the ecosystem identifier.
func (e Ecosystem) String() string {
	return string(e)
}

// ParseEcosystem maps a user supplied type onto an Ecosystem, ignoring case.
func ParseEcosystem(s string) (Ecosystem, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, eco := range Ecosystems() {
		if string(eco) == normalized {
			return eco, nil
		}
	}
	return "", NewUnsupportedEcosystemError(s)
}
