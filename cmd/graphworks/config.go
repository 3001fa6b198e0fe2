package main

import (
	"bytes"
	"io"

	"github.com/alecthomas/kong"
	"sigs.k8s.io/yaml"
)

// yamlLoader is a kong.ConfigurationLoader for YAML files. The document is
// converted to JSON and resolved by kong.JSON, so keys match flag names in
// either kebab or snake case:
//
//	log_level: debug
//	max_vertices: 5
//	workers: 4
//	metrics_file: /var/lib/node_exporter/graphworks.prom
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, err
	}

	return kong.JSON(bytes.NewReader(js))
}
