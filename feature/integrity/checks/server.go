package checks

import "chroma-launcher/core/chroma"

// ServerReport describes a running Chroma server.
type ServerReport struct {
	URL       string `json:"url"`
	Reachable bool   `json:"reachable"`
	Heartbeat int64  `json:"heartbeat,omitempty"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CheckServer queries heartbeat and version. A missing version is not an error.
func CheckServer(client *chroma.Client, url string) ServerReport {
	report := ServerReport{URL: url}
	ns, err := client.Heartbeat()
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Reachable = true
	report.Heartbeat = ns
	if v, err := client.Version(); err == nil {
		report.Version = v
	}
	return report
}
