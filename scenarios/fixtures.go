package scenarios

import (
	"bytes"
	"embed"
	"sort"
)

//go:embed testdata/*.yaml
var fixtureFS embed.FS

var fixtureFiles = map[string]string{
	"single-route":             "testdata/a_single_route.yaml",
	"transfer":                 "testdata/b_transfer.yaml",
	"missed-connection":        "testdata/c_missed_connection.yaml",
	"footpath-transfer":        "testdata/d_footpath_transfer.yaml",
	"footpath-transfer-missed": "testdata/d2_footpath_transfer_missed.yaml",
	"transfer-vs-time":         "testdata/e_transfer_vs_time.yaml",
	"trivial-same-stop":        "testdata/f_trivial_same_stop.yaml",
}

// Names lists the built-in fixture names Named accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(fixtureFiles))
	for name := range fixtureFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named loads a built-in fixture by name (see Names for the full list).
func Named(name string) (*Scenario, error) {
	path, ok := fixtureFiles[name]
	if !ok {
		return nil, ErrUnknownFixture
	}
	data, err := fixtureFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(data))
}
