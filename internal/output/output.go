package output

import (
	"encoding/json"

	"sigs.k8s.io/yaml"
)

func PrettyPrintJSON(v interface{}) (string, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData) + "\n", nil
}

func PrettyPrintYAML(v interface{}) (string, error) {
	yamlData, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(yamlData), nil
}
