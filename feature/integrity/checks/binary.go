package checks

import "chroma-launcher/core/chroma"

// BinaryReport describes the server executable lookup.
type BinaryReport struct {
	Binary string `json:"binary"`
	Path   string `json:"path,omitempty"`
	Found  bool   `json:"found"`
	Error  string `json:"error,omitempty"`
}

// CheckBinary resolves binary with locate.
func CheckBinary(locate func(string) (*chroma.Application, error), binary string) BinaryReport {
	report := BinaryReport{Binary: binary}
	app, err := locate(binary)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Found = true
	report.Path = app.Path()
	return report
}
